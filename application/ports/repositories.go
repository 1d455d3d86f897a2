package ports

import (
	"context"

	"stringanalyzer/domain/core/entities"
)

// RecordRepository defines the persistence port for analyzed strings.
// Implementations key records by the SHA-256 hash of the value, so Save
// is an upsert and the same value never produces two records.
type RecordRepository interface {
	// Save persists a record (create or update)
	Save(ctx context.Context, record *entities.StringRecord) error

	// FindByValue retrieves a record by its original string value
	FindByValue(ctx context.Context, value string) (*entities.StringRecord, error)

	// FindByID retrieves a record by its SHA-256 identifier
	FindByID(ctx context.Context, id string) (*entities.StringRecord, error)

	// List returns all records ordered by creation time
	List(ctx context.Context) ([]*entities.StringRecord, error)

	// Delete removes a record by value, returning a not-found error
	// when no record exists
	Delete(ctx context.Context, value string) error

	// Count reports the number of stored records
	Count(ctx context.Context) (int, error)

	// Ping verifies the backing store is reachable
	Ping(ctx context.Context) error

	// Close releases any resources held by the store
	Close() error
}
