package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"codesubmit/intake/internal/model"
	"codesubmit/intake/internal/store"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database file at path and ensures the
// submission table exists.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

func (s *Store) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS submission (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			password TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'SUBMITTED',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_submission_username ON submission(username);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) CreateSubmission(ctx context.Context, req store.CreateSubmissionRequest) (model.Submission, error) {
	now := time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `
		insert into submission (username, password, status, created_at, updated_at)
		values (?, ?, ?, ?, ?)
	`, req.Username, req.Password, string(model.StatusSubmitted), now, now)
	if err != nil {
		return model.Submission{}, fmt.Errorf("insert submission: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Submission{}, fmt.Errorf("last insert id: %w", err)
	}

	return model.Submission{
		ID:        id,
		Username:  req.Username,
		Password:  req.Password,
		Status:    model.StatusSubmitted,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *Store) GetSubmission(ctx context.Context, id int64) (*model.Submission, error) {
	var sub model.Submission
	err := s.db.QueryRowContext(ctx, `
		select id, username, password, status, created_at, updated_at
		from submission
		where id = ?
	`, id).Scan(&sub.ID, &sub.Username, &sub.Password, &sub.Status, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return &sub, nil
}
