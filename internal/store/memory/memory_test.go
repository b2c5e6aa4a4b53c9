package memory

import (
	"context"
	"testing"

	"codesubmit/intake/internal/model"
	"codesubmit/intake/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSubmission(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	sub, err := s.CreateSubmission(ctx, store.CreateSubmissionRequest{
		Username: "alice",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), sub.ID)
	assert.Equal(t, "alice", sub.Username)
	assert.Equal(t, "secret", sub.Password)
	assert.Equal(t, model.StatusSubmitted, sub.Status)
	assert.NotZero(t, sub.CreatedAt)
	assert.Equal(t, sub.CreatedAt, sub.UpdatedAt)
}

func TestCreateSubmission_IDsIncrease(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	first, err := s.CreateSubmission(ctx, store.CreateSubmissionRequest{Username: "a", Password: "p"})
	require.NoError(t, err)
	second, err := s.CreateSubmission(ctx, store.CreateSubmissionRequest{Username: "b", Password: "p"})
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestGetSubmission(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	created, err := s.CreateSubmission(ctx, store.CreateSubmissionRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	got, err := s.GetSubmission(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, *got)

	_, err = s.GetSubmission(ctx, 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
