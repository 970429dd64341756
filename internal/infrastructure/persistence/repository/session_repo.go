package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/parthdesai/billflow/internal/domain/entity"
	"github.com/parthdesai/billflow/pkg/database"
)

// SessionRepository handles session token database operations
type SessionRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{db: db, logger: logger}
}

// Create inserts a session.
func (r *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	query := "INSERT INTO sessions (token, user_id, expires_at, created_at) VALUES (?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, session.Token, session.UserID, session.ExpiresAt, session.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create session", zap.Error(err))
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByToken retrieves a session, or (nil, nil) when unknown.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*entity.Session, error) {
	var session entity.Session
	err := r.db.QueryRowContext(ctx,
		"SELECT token, user_id, expires_at, created_at FROM sessions WHERE token = ?",
		token).Scan(&session.Token, &session.UserID, &session.ExpiresAt, &session.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get session", zap.Error(err))
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// Delete removes a session. Deleting an unknown token is not an error.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token); err != nil {
		r.logger.Error("Failed to delete session", zap.Error(err))
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
