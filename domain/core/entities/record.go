package entities

import (
	"time"

	"stringanalyzer/domain/core/valueobjects"
)

// StringRecord is an analyzed string persisted by the service.
//
// Identity is the SHA-256 hash of the raw value, so the same value always
// maps to the same record (upsert semantics, never duplication). Value and
// Properties are immutable once created; CreatedAt is set once and
// preserved across idempotent re-submission of the same value.
type StringRecord struct {
	ID         string                        `json:"id"`
	Value      string                        `json:"value"`
	Properties valueobjects.StringProperties `json:"properties"`
	CreatedAt  time.Time                     `json:"created_at"`
}

// NewStringRecord analyzes value and returns a record stamped with the
// current UTC time.
func NewStringRecord(value string) *StringRecord {
	return &StringRecord{
		ID:         valueobjects.HashValue(value),
		Value:      value,
		Properties: valueobjects.ComputeProperties(value),
		CreatedAt:  time.Now().UTC(),
	}
}
