package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"codesubmit/intake/internal/model"
	"codesubmit/intake/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestCreateSubmission(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t)

	sub, err := s.CreateSubmission(ctx, store.CreateSubmissionRequest{
		Username: "alice",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.NotZero(t, sub.ID)
	assert.Equal(t, "alice", sub.Username)
	assert.Equal(t, "secret", sub.Password)
	assert.Equal(t, model.StatusSubmitted, sub.Status)
	assert.NotZero(t, sub.CreatedAt)
	assert.NotZero(t, sub.UpdatedAt)
}

func TestCreateSubmission_IDsIncrease(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t)

	first, err := s.CreateSubmission(ctx, store.CreateSubmissionRequest{Username: "a", Password: "p"})
	require.NoError(t, err)
	second, err := s.CreateSubmission(ctx, store.CreateSubmissionRequest{Username: "b", Password: "p"})
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestCreateSubmission_DuplicateUsernamesAllowed(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t)

	first, err := s.CreateSubmission(ctx, store.CreateSubmissionRequest{Username: "alice", Password: "p1"})
	require.NoError(t, err)
	second, err := s.CreateSubmission(ctx, store.CreateSubmissionRequest{Username: "alice", Password: "p2"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestGetSubmission(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t)

	created, err := s.CreateSubmission(ctx, store.CreateSubmissionRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	got, err := s.GetSubmission(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "secret", got.Password)
	assert.Equal(t, model.StatusSubmitted, got.Status)

	_, err = s.GetSubmission(ctx, 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// Reopening the same database file must not fail or clobber existing
// rows; schema creation is idempotent.
func TestNewStore_SchemaInitIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := NewStore(path)
	require.NoError(t, err)
	created, err := s1.CreateSubmission(ctx, store.CreateSubmissionRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	s1.Close()

	s2, err := NewStore(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.GetSubmission(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}
