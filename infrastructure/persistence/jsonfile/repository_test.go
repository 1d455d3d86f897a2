package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stringanalyzer/domain/core/entities"
	apperrors "stringanalyzer/pkg/errors"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strings.json")
	repo, err := NewRepository(path, nil, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func TestSaveAndFind(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	rec := entities.NewStringRecord("hello world")
	require.NoError(t, repo.Save(ctx, rec))

	byValue, err := repo.FindByValue(ctx, "hello world")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, byValue.ID)

	byID, err := repo.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello world", byID.Value)
}

func TestSaveSameValueKeepsSingleRecord(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, entities.NewStringRecord("racecar")))
	require.NoError(t, repo.Save(ctx, entities.NewStringRecord("racecar")))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFindUnknownValueReturnsNotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.FindByValue(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListPreservesInsertionOrder(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	for _, v := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Save(ctx, entities.NewStringRecord(v)))
	}

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "first", records[0].Value)
	assert.Equal(t, "second", records[1].Value)
	assert.Equal(t, "third", records[2].Value)
}

func TestDelete(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, entities.NewStringRecord("doomed")))
	require.NoError(t, repo.Delete(ctx, "doomed"))

	_, err := repo.FindByValue(ctx, "doomed")
	assert.True(t, apperrors.IsNotFound(err))

	err = repo.Delete(ctx, "doomed")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRecordsSurviveReopen(t *testing.T) {
	repo, path := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, entities.NewStringRecord("persisted")))
	require.NoError(t, repo.Close())

	reopened, err := NewRepository(path, nil, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	rec, err := reopened.FindByValue(ctx, "persisted")
	require.NoError(t, err)
	assert.Equal(t, "persisted", rec.Value)
	assert.Equal(t, 9, rec.Properties.Length)
}

func TestCorruptFileFailsToLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewRepository(path, nil, zap.NewNop())
	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))
}

func TestEmptyFileLoadsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	repo, err := NewRepository(path, nil, zap.NewNop())
	require.NoError(t, err)
	defer repo.Close()

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
