package db

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"petdiary/internal/domain"
)

const maxErrorLen = 1000

var ErrNotConnected = errors.New("audit store not connected")

// Store writes the generation audit trail. Diary text is never stored.
type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) Migrate(ctx context.Context) error {
	if s == nil || s.pool == nil {
		return ErrNotConnected
	}
	queries := []string{
		`CREATE TABLE IF NOT EXISTS diary_generations (
			id UUID PRIMARY KEY,
			request_id TEXT NOT NULL,
			pet_name TEXT NOT NULL,
			mbti_type TEXT NOT NULL,
			health_score INT NOT NULL,
			emotion_level TEXT NOT NULL,
			used_fallback BOOLEAN NOT NULL,
			provider TEXT NOT NULL DEFAULT '',
			error_kind TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			latency_ms BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_diary_generations_created ON diary_generations(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_diary_generations_request ON diary_generations(request_id);`,
	}
	for _, q := range queries {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Record inserts one row per generated diary.
func (s *Store) Record(ctx context.Context, rec domain.GenerationRecord) error {
	if s == nil || s.pool == nil {
		return ErrNotConnected
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO diary_generations
			(id, request_id, pet_name, mbti_type, health_score, emotion_level, used_fallback, provider, error_kind, error, latency_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		uuid.New(),
		rec.RequestID,
		rec.PetName,
		rec.Personality,
		rec.HealthScore,
		string(rec.EmotionLevel),
		rec.UsedFallback,
		rec.Provider,
		rec.ErrorKind,
		truncate(rec.Error, maxErrorLen),
		rec.Latency.Milliseconds(),
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert generation: %w", err)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	s = s[:max]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}
