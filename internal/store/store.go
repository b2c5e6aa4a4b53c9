package store

import (
	"context"
	"errors"

	"codesubmit/intake/internal/model"
)

var ErrNotFound = errors.New("not_found")

type CreateSubmissionRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Store interface {
	CreateSubmission(ctx context.Context, req CreateSubmissionRequest) (model.Submission, error)
	GetSubmission(ctx context.Context, id int64) (*model.Submission, error)
}
