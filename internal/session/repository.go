package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository handles session data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new session repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const sessionColumns = `id, play_date, court_count, shuttle_count, status, total_cost, computed, created_at`

func scanSession(row interface{ Scan(...interface{}) error }) (*Session, error) {
	s := &Session{}
	err := row.Scan(
		&s.ID,
		&s.PlayDate,
		&s.CourtCount,
		&s.ShuttleCount,
		&s.Status,
		&s.TotalCost,
		&s.Computed,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new session for the given play date
func (r *Repository) Create(ctx context.Context, playDate time.Time) (*Session, error) {
	query := `
		INSERT INTO sessions (play_date)
		VALUES ($1)
		RETURNING ` + sessionColumns

	s, err := scanSession(r.db.QueryRowContext(ctx, query, playDate))
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return s, nil
}

// GetByID retrieves a session by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	s, err := scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// GetByPlayDate retrieves the session whose play date falls on the given day
func (r *Repository) GetByPlayDate(ctx context.Context, day time.Time) (*Session, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE play_date >= $1 AND play_date < $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	s, err := scanSession(r.db.QueryRowContext(ctx, query, start, end))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session by play date: %w", err)
	}
	return s, nil
}

// List retrieves sessions with pagination and an optional status filter
func (r *Repository) List(ctx context.Context, status Status, limit, offset int) ([]*Session, int, error) {
	countQuery := `SELECT COUNT(*) FROM sessions WHERE ($1 = '' OR status = $1)`
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, string(status)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	query := `
		SELECT s.id, s.play_date, s.court_count, s.shuttle_count, s.status, s.total_cost, s.computed, s.created_at,
		       (SELECT COUNT(*) FROM votes v WHERE v.session_id = s.id) AS vote_count,
		       (SELECT COUNT(*) FROM proxy_votes pv WHERE pv.session_id = s.id) AS proxy_vote_count,
		       (SELECT COUNT(*) FROM payments p WHERE p.session_id = s.id) AS payment_count
		FROM sessions s
		WHERE ($1 = '' OR s.status = $1)
		ORDER BY s.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, string(status), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		s := &Session{}
		if err := rows.Scan(
			&s.ID,
			&s.PlayDate,
			&s.CourtCount,
			&s.ShuttleCount,
			&s.Status,
			&s.TotalCost,
			&s.Computed,
			&s.CreatedAt,
			&s.VoteCount,
			&s.ProxyVoteCount,
			&s.PaymentCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, total, nil
}

// UpdateCounts sets the court and/or shuttle count for a session
func (r *Repository) UpdateCounts(ctx context.Context, id int64, courtCount, shuttleCount *int) (*Session, error) {
	query := `
		UPDATE sessions
		SET court_count = COALESCE($2, court_count),
		    shuttle_count = COALESCE($3, shuttle_count)
		WHERE id = $1
		RETURNING ` + sessionColumns

	s, err := scanSession(r.db.QueryRowContext(ctx, query, id, courtCount, shuttleCount))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update session counts: %w", err)
	}
	return s, nil
}

// UpdateStatus transitions a session's lifecycle status
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status) (*Session, error) {
	query := `
		UPDATE sessions
		SET status = $2
		WHERE id = $1
		RETURNING ` + sessionColumns

	s, err := scanSession(r.db.QueryRowContext(ctx, query, id, status))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update session status: %w", err)
	}
	return s, nil
}

// DeactivateOlderThan marks stale pending sessions inactive and returns how
// many rows were touched. Used by the weekly cleanup job.
func (r *Repository) DeactivateOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE sessions
		SET status = 'inactive'
		WHERE status = 'pending' AND play_date < $1
	`

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate old sessions: %w", err)
	}
	return result.RowsAffected()
}
