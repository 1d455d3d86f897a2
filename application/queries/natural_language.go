package queries

import (
	"errors"

	"stringanalyzer/domain/core/entities"
	"stringanalyzer/domain/filtering"
)

var (
	errNegativeLength    = errors.New("length bound must not be negative")
	errNegativeWordCount = errors.New("word count must not be negative")
)

// NaturalLanguageQuery fetches stored strings matching a free-form query
// such as "all single word palindromic strings".
type NaturalLanguageQuery struct {
	Query string
}

// Validate validates the NaturalLanguageQuery
func (q NaturalLanguageQuery) Validate() error {
	return nil
}

// InterpretedQuery echoes how the free-form text was understood.
type InterpretedQuery struct {
	Original      string               `json:"original"`
	ParsedFilters filtering.FilterSpec `json:"parsed_filters"`
}

// NaturalLanguageResult carries matching records plus the interpretation
// of the original query text.
type NaturalLanguageResult struct {
	Data             []*entities.StringRecord `json:"data"`
	Count            int                      `json:"count"`
	InterpretedQuery InterpretedQuery         `json:"interpreted_query"`
}
