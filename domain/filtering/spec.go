// Package filtering implements the structured filter evaluator and the
// natural-language query interpreter that feeds it.
package filtering

import (
	"strings"

	"stringanalyzer/domain/core/entities"
)

// FilterSpec is a set of independently optional predicates over a record's
// computed properties. A nil field imposes no constraint; every present
// field must be satisfied (logical AND). A spec with all fields absent
// matches every record.
type FilterSpec struct {
	IsPalindrome      *bool   `json:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty"`
}

// IsEmpty reports whether no predicate is set.
func (s FilterSpec) IsEmpty() bool {
	return s.IsPalindrome == nil &&
		s.MinLength == nil &&
		s.MaxLength == nil &&
		s.WordCount == nil &&
		s.ContainsCharacter == nil
}

// Matches reports whether rec satisfies every present predicate.
func (s FilterSpec) Matches(rec *entities.StringRecord) bool {
	p := rec.Properties
	if s.IsPalindrome != nil && p.IsPalindrome != *s.IsPalindrome {
		return false
	}
	if s.MinLength != nil && p.Length < *s.MinLength {
		return false
	}
	if s.MaxLength != nil && p.Length > *s.MaxLength {
		return false
	}
	if s.WordCount != nil && p.WordCount != *s.WordCount {
		return false
	}
	if s.ContainsCharacter != nil && !strings.Contains(rec.Value, *s.ContainsCharacter) {
		return false
	}
	return true
}

// Apply returns the subsequence of records matching the spec, preserving
// the input's relative order. An empty spec is the identity transform.
func (s FilterSpec) Apply(records []*entities.StringRecord) []*entities.StringRecord {
	if s.IsEmpty() {
		return records
	}
	matched := make([]*entities.StringRecord, 0, len(records))
	for _, rec := range records {
		if s.Matches(rec) {
			matched = append(matched, rec)
		}
	}
	return matched
}
