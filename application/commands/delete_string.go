package commands

// DeleteStringCommand requests removal of a stored string by its value.
type DeleteStringCommand struct {
	Value string `json:"value"`
}

// Validate validates the command
func (cmd DeleteStringCommand) Validate() error {
	return nil
}
