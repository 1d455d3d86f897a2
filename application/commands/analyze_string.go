package commands

// AnalyzeStringCommand requests analysis and storage of a string value.
// The empty string is a legal value, so presence is checked at the HTTP
// boundary where a missing field can still be told apart from "".
type AnalyzeStringCommand struct {
	Value string `json:"value"`
}

// Validate validates the command
func (cmd AnalyzeStringCommand) Validate() error {
	return nil
}
