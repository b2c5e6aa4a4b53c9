package memory

import (
	"context"
	"sync"
	"time"

	"codesubmit/intake/internal/model"
	"codesubmit/intake/internal/store"
)

type Store struct {
	mu sync.Mutex

	submissions map[int64]model.Submission
	nextID      int64
}

func NewStore() *Store {
	return &Store{
		submissions: make(map[int64]model.Submission),
		nextID:      1,
	}
}

func (s *Store) CreateSubmission(_ context.Context, req store.CreateSubmissionRequest) (model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	sub := model.Submission{
		ID:        s.nextID,
		Username:  req.Username,
		Password:  req.Password,
		Status:    model.StatusSubmitted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++
	s.submissions[sub.ID] = sub
	return sub, nil
}

func (s *Store) GetSubmission(_ context.Context, id int64) (*model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submissions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &sub, nil
}
