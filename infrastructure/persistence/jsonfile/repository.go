package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"stringanalyzer/domain/core/entities"
	"stringanalyzer/domain/core/valueobjects"
	apperrors "stringanalyzer/pkg/errors"
)

const backendName = "file"

// OperationRecorder counts persistence operations for metrics.
type OperationRecorder interface {
	RecordStoreOperation(backend, operation string, err error)
}

// Repository stores records in a single JSON file keyed by SHA-256 hash.
// The whole store is held in memory and flushed on every mutation: a flock
// guards against concurrent writers from other processes, and the flush
// itself writes to a temp file and renames it over the original so readers
// never observe a partial file.
type Repository struct {
	path     string
	fileLock *flock.Flock
	logger   *zap.Logger
	recorder OperationRecorder

	mu          sync.RWMutex
	records     map[string]*entities.StringRecord
	order       []string
	lastModTime time.Time
}

// NewRepository loads (or creates) the JSON store at path.
func NewRepository(path string, recorder OperationRecorder, logger *zap.Logger) (*Repository, error) {
	r := &Repository{
		path:     path,
		fileLock: flock.New(path + ".lock"),
		logger:   logger,
		recorder: recorder,
		records:  make(map[string]*entities.StringRecord),
	}

	if err := r.loadFromDisk(); err != nil {
		return nil, err
	}

	return r, nil
}

// Save persists a record, replacing any existing record with the same ID.
func (r *Repository) Save(ctx context.Context, record *entities.StringRecord) (err error) {
	defer r.record("save", &err)

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.records[record.ID]
	r.records[record.ID] = record
	if !exists {
		r.order = append(r.order, record.ID)
	}

	if err := r.flushLocked(ctx); err != nil {
		// Roll the in-memory state back so memory and disk stay in step.
		if !exists {
			delete(r.records, record.ID)
			r.order = r.order[:len(r.order)-1]
		}
		return err
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

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("string")
	}
	return record, nil
}

// List returns all records in insertion order.
func (r *Repository) List(ctx context.Context) (recs []*entities.StringRecord, err error) {
	defer r.record("list", &err)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.StringRecord, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out, nil
}

// Delete removes a record by value.
func (r *Repository) Delete(ctx context.Context, value string) (err error) {
	defer r.record("delete", &err)

	id := valueobjects.HashValue(value)

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return apperrors.NewNotFoundError("string")
	}

	delete(r.records, id)
	idx := -1
	for i, oid := range r.order {
		if oid == id {
			idx = i
			break
		}
	}
	if idx >= 0 {
		r.order = append(r.order[:idx], r.order[idx+1:]...)
	}

	if err := r.flushLocked(ctx); err != nil {
		r.records[id] = record
		if idx >= 0 {
			r.order = append(r.order, "")
			copy(r.order[idx+1:], r.order[idx:])
			r.order[idx] = id
		}
		return err
	}

	return nil
}

// Count reports the number of stored records.
func (r *Repository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records), nil
}

// Ping verifies the store's directory is accessible.
func (r *Repository) Ping(ctx context.Context) error {
	dir := filepath.Dir(r.path)
	if _, err := os.Stat(dir); err != nil {
		return apperrors.NewStorageError("ping", err)
	}
	return nil
}

// Close releases the file lock if held.
func (r *Repository) Close() error {
	return r.fileLock.Unlock()
}

// Watch reloads the store when another process rewrites the data file.
// It blocks until ctx is cancelled.
func (r *Repository) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return apperrors.NewStorageError("watch", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: the atomic rename used by
	// writers replaces the inode, which would silently detach a file watch.
	if err := watcher.Add(filepath.Dir(r.path)); err != nil {
		return apperrors.NewStorageError("watch", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != r.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := r.reloadIfChanged(); err != nil {
				r.logger.Warn("Failed to reload data file", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("Watcher error", zap.Error(err))
		}
	}
}

// reloadIfChanged re-reads the file when its mtime moved past the last
// load. Self-inflicted events from our own flushes are skipped this way.
func (r *Repository) reloadIfChanged() error {
	info, err := os.Stat(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !info.ModTime().After(r.lastModTime) {
		return nil
	}

	return r.loadLocked()
}

func (r *Repository) loadFromDisk() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

func (r *Repository) loadLocked() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.records = make(map[string]*entities.StringRecord)
			r.order = nil
			return nil
		}
		return apperrors.NewStorageError("load", err)
	}

	records := make(map[string]*entities.StringRecord)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &records); err != nil {
			return apperrors.NewStorageError("load", fmt.Errorf("corrupt data file %s: %w", r.path, err))
		}
	}

	// Insertion order is not stored in the file, so a reload falls back to
	// creation time with the ID as a tiebreaker.
	order := make([]string, 0, len(records))
	for id := range records {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := records[order[i]], records[order[j]]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	r.records = records
	r.order = order
	if info, err := os.Stat(r.path); err == nil {
		r.lastModTime = info.ModTime()
	}

	r.logger.Debug("Loaded data file",
		zap.String("path", r.path),
		zap.Int("records", len(records)),
	)

	return nil
}

// flushLocked writes the store to disk. Callers must hold r.mu.
func (r *Repository) flushLocked(ctx context.Context) error {
	locked, err := r.fileLock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return apperrors.NewStorageError("flush", err)
	}
	if !locked {
		return apperrors.NewStorageError("flush", fmt.Errorf("could not acquire lock on %s", r.fileLock.Path()))
	}
	defer r.fileLock.Unlock()

	data, err := json.MarshalIndent(r.records, "", "  ")
	if err != nil {
		return apperrors.NewStorageError("flush", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return apperrors.NewStorageError("flush", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.NewStorageError("flush", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.NewStorageError("flush", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.NewStorageError("flush", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return apperrors.NewStorageError("flush", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return apperrors.NewStorageError("flush", err)
	}

	if info, err := os.Stat(r.path); err == nil {
		r.lastModTime = info.ModTime()
	}

	return nil
}

func (r *Repository) record(operation string, err *error) {
	if r.recorder != nil {
		r.recorder.RecordStoreOperation(backendName, operation, *err)
	}
}
