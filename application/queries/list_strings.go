package queries

import (
	"stringanalyzer/domain/core/entities"
	"stringanalyzer/domain/filtering"
)

// ListStringsQuery fetches stored strings, optionally narrowed by a
// structured filter.
type ListStringsQuery struct {
	Filter filtering.FilterSpec
}

// Validate validates the ListStringsQuery
func (q ListStringsQuery) Validate() error {
	if q.Filter.MinLength != nil && *q.Filter.MinLength < 0 {
		return errNegativeLength
	}
	if q.Filter.MaxLength != nil && *q.Filter.MaxLength < 0 {
		return errNegativeLength
	}
	if q.Filter.WordCount != nil && *q.Filter.WordCount < 0 {
		return errNegativeWordCount
	}
	return nil
}

// ListStringsResult carries matching records plus an echo of the filters
// that were applied.
type ListStringsResult struct {
	Data           []*entities.StringRecord `json:"data"`
	Count          int                      `json:"count"`
	FiltersApplied filtering.FilterSpec     `json:"filters_applied"`
}
