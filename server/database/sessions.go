package database

import (
	"context"
	"fmt"
)

func (d *Database) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	query := `
		SELECT *
		FROM sessions
		WHERE session_id = $1 AND session_expires_at > NOW()
	`

	var session Session
	if err := d.db.GetContext(ctx, &session, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

func (d *Database) CreateSession(ctx context.Context, session Session) error {
	query := `
		INSERT INTO sessions (session_id, session_created_at, session_expires_at, session_user_id, session_user_name)
		VALUES (:session_id, :session_created_at, :session_expires_at, :session_user_id, :session_user_name)
	`
	if _, err := d.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (d *Database) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM sessions WHERE session_id = $1", sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (d *Database) DeleteExpiredSessions(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM sessions WHERE session_expires_at < NOW()"); err != nil {
		return fmt.Errorf("failed to cleanup expired sessions: %w", err)
	}
	return nil
}
