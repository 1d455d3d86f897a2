package queries

// GetStringQuery represents a query to fetch a single analyzed string
// by its original value.
type GetStringQuery struct {
	Value string
}

// Validate validates the GetStringQuery
func (q GetStringQuery) Validate() error {
	return nil
}
