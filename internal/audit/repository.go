package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Repository handles audit log persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new audit repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create appends an audit entry. The payload is marshalled to JSON.
func (r *Repository) Create(ctx context.Context, sessionID *int64, action string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal audit payload: %w", err)
	}

	query := `
		INSERT INTO audit_logs (session_id, action, payload)
		VALUES ($1, $2, $3)
	`

	if _, err := r.db.ExecContext(ctx, query, sessionID, action, data); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// ListBySession retrieves audit entries for a session, newest first
func (r *Repository) ListBySession(ctx context.Context, sessionID int64) ([]*Entry, error) {
	query := `
		SELECT id, session_id, action, payload, created_at
		FROM audit_logs
		WHERE session_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Action, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}
