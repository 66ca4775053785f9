package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DanRulev/quizroom/internal/models"
)

// Record keys, one JSON document each.
const (
	KeyCurrentUser = "quizUser"
	KeyQuizzes     = "quizzes"
	KeyAttempts    = "quizAttempts"
)

// StoreR is a key-value read/write-through store holding the three application records.
type StoreR struct {
	db QueryI
}

func NewStoreRepository(db QueryI) *StoreR {
	return &StoreR{db: db}
}

func (s *StoreR) get(ctx context.Context, key string, dest any) (bool, error) {
	query := s.db.Rebind(`SELECT value FROM kv WHERE key = ?`)

	var raw string
	err := s.db.GetContext(ctx, &raw, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: read %s: %w", models.ErrStorageUnavailable, key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}

	return true, nil
}

func (s *StoreR) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	query := s.db.Rebind(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`)

	if _, err := s.db.ExecContext(ctx, query, key, string(raw)); err != nil {
		return fmt.Errorf("%w: write %s: %w", models.ErrStorageUnavailable, key, err)
	}

	return nil
}

func (s *StoreR) remove(ctx context.Context, key string) error {
	query := s.db.Rebind(`DELETE FROM kv WHERE key = ?`)

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("%w: delete %s: %w", models.ErrStorageUnavailable, key, err)
	}

	return nil
}

func (s *StoreR) CurrentUser(ctx context.Context) (models.User, bool, error) {
	var user models.User
	ok, err := s.get(ctx, KeyCurrentUser, &user)
	if err != nil || !ok {
		return models.User{}, false, err
	}
	return user, true, nil
}

func (s *StoreR) SaveCurrentUser(ctx context.Context, user models.User) error {
	return s.set(ctx, KeyCurrentUser, user)
}

func (s *StoreR) ClearCurrentUser(ctx context.Context) error {
	return s.remove(ctx, KeyCurrentUser)
}

// Quizzes returns the stored quiz collection; ok is false when the record was never written.
func (s *StoreR) Quizzes(ctx context.Context) ([]models.Quiz, bool, error) {
	var quizzes []models.Quiz
	ok, err := s.get(ctx, KeyQuizzes, &quizzes)
	if err != nil || !ok {
		return nil, false, err
	}
	return quizzes, true, nil
}

func (s *StoreR) SaveQuizzes(ctx context.Context, quizzes []models.Quiz) error {
	if quizzes == nil {
		quizzes = []models.Quiz{}
	}
	return s.set(ctx, KeyQuizzes, quizzes)
}

func (s *StoreR) Attempts(ctx context.Context) ([]models.QuizAttempt, error) {
	var attempts []models.QuizAttempt
	if _, err := s.get(ctx, KeyAttempts, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

func (s *StoreR) SaveAttempts(ctx context.Context, attempts []models.QuizAttempt) error {
	if attempts == nil {
		attempts = []models.QuizAttempt{}
	}
	return s.set(ctx, KeyAttempts, attempts)
}
