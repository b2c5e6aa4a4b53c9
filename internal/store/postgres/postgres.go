package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codesubmit/intake/internal/model"
	"codesubmit/intake/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	// Ping to fail fast.
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.initSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) initSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		create table if not exists submission (
			id bigserial primary key,
			username text not null,
			password text not null,
			status text not null default 'SUBMITTED',
			created_at timestamptz not null default now(),
			updated_at timestamptz not null default now()
		);
		create index if not exists idx_submission_username on submission(username);
	`)
	return err
}

func (s *Store) CreateSubmission(ctx context.Context, req store.CreateSubmissionRequest) (model.Submission, error) {
	var out model.Submission
	err := s.pool.QueryRow(ctx, `
		insert into submission (username, password, status)
		values ($1, $2, $3)
		returning id, username, password, status, created_at, updated_at
	`, req.Username, req.Password, string(model.StatusSubmitted)).Scan(
		&out.ID,
		&out.Username,
		&out.Password,
		&out.Status,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return model.Submission{}, fmt.Errorf("insert submission: %w", err)
	}
	return out, nil
}

func (s *Store) GetSubmission(ctx context.Context, id int64) (*model.Submission, error) {
	var sub model.Submission
	err := s.pool.QueryRow(ctx, `
		select id, username, password, status, created_at, updated_at
		from submission
		where id = $1
	`, id).Scan(&sub.ID, &sub.Username, &sub.Password, &sub.Status, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return &sub, nil
}
