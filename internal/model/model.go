package model

import "time"

type SubmissionStatus string

const (
	StatusSubmitted SubmissionStatus = "SUBMITTED"
)

// Submission is the persisted record of one code upload. The code text
// itself lives on disk (codes/{id}.py), not in the row.
type Submission struct {
	ID        int64            `json:"id"`
	Username  string           `json:"username"`
	Password  string           `json:"-"`
	Status    SubmissionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
