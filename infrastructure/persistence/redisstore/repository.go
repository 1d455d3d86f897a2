package redisstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"stringanalyzer/domain/core/entities"
	"stringanalyzer/domain/core/valueobjects"
	apperrors "stringanalyzer/pkg/errors"
)

const backendName = "redis"

// OperationRecorder counts persistence operations for metrics.
type OperationRecorder interface {
	RecordStoreOperation(backend, operation string, err error)
}

// Repository stores records in Redis. Record bodies live in a hash keyed
// by SHA-256 ID, and a sorted set scored by creation time preserves
// listing order across restarts.
type Repository struct {
	client   *redis.Client
	prefix   string
	recorder OperationRecorder
}

// NewRepository creates a Redis-backed repository.
func NewRepository(client *redis.Client, prefix string, recorder OperationRecorder) *Repository {
	return &Repository{
		client:   client,
		prefix:   prefix,
		recorder: recorder,
	}
}

func (r *Repository) recordsKey() string {
	return r.prefix + ":records"
}

func (r *Repository) timelineKey() string {
	return r.prefix + ":timeline"
}

// Save persists a record, replacing any existing record with the same ID.
func (r *Repository) Save(ctx context.Context, record *entities.StringRecord) (err error) {
	defer r.record("save", &err)

	data, err := json.Marshal(record)
	if err != nil {
		return apperrors.NewStorageError("save", err)
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, r.recordsKey(), record.ID, data)
	pipe.ZAdd(ctx, r.timelineKey(), redis.Z{
		Score:  float64(record.CreatedAt.UnixNano()),
		Member: record.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.NewStorageError("save", err)
	}

	return nil
}

// FindByValue retrieves a record by its original string value.
func (r *Repository) FindByValue(ctx context.Context, value string) (*entities.StringRecord, error) {
	return r.FindByID(ctx, valueobjects.HashValue(value))
}

// FindByID retrieves a record by its SHA-256 identifier.
func (r *Repository) FindByID(ctx context.Context, id string) (rec *entities.StringRecord, err error) {
	defer r.record("find", &err)

	data, err := r.client.HGet(ctx, r.recordsKey(), id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.NewNotFoundError("string")
	}
	if err != nil {
		return nil, apperrors.NewStorageError("find", err)
	}

	var record entities.StringRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, apperrors.NewStorageError("find", err)
	}

	return &record, nil
}

// List returns all records ordered by creation time.
func (r *Repository) List(ctx context.Context) (recs []*entities.StringRecord, err error) {
	defer r.record("list", &err)

	ids, err := r.client.ZRange(ctx, r.timelineKey(), 0, -1).Result()
	if err != nil {
		return nil, apperrors.NewStorageError("list", err)
	}
	if len(ids) == 0 {
		return []*entities.StringRecord{}, nil
	}

	values, err := r.client.HMGet(ctx, r.recordsKey(), ids...).Result()
	if err != nil {
		return nil, apperrors.NewStorageError("list", err)
	}

	records := make([]*entities.StringRecord, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var record entities.StringRecord
		if err := json.Unmarshal([]byte(s), &record); err != nil {
			return nil, apperrors.NewStorageError("list", err)
		}
		records = append(records, &record)
	}

	return records, nil
}

// Delete removes a record by value.
func (r *Repository) Delete(ctx context.Context, value string) (err error) {
	defer r.record("delete", &err)

	id := valueobjects.HashValue(value)

	removed, err := r.client.HDel(ctx, r.recordsKey(), id).Result()
	if err != nil {
		return apperrors.NewStorageError("delete", err)
	}
	if removed == 0 {
		return apperrors.NewNotFoundError("string")
	}

	if err := r.client.ZRem(ctx, r.timelineKey(), id).Err(); err != nil {
		return apperrors.NewStorageError("delete", err)
	}

	return nil
}

// Count reports the number of stored records.
func (r *Repository) Count(ctx context.Context) (int, error) {
	n, err := r.client.HLen(ctx, r.recordsKey()).Result()
	if err != nil {
		return 0, apperrors.NewStorageError("count", err)
	}
	return int(n), nil
}

// Ping verifies the Redis connection.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return apperrors.NewStorageError("ping", err)
	}
	return nil
}

// Close closes the Redis client.
func (r *Repository) Close() error {
	return r.client.Close()
}

func (r *Repository) record(operation string, err *error) {
	if r.recorder != nil {
		r.recorder.RecordStoreOperation(backendName, operation, *err)
	}
}
