package stats

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository reads computed sessions for aggregation
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new stats repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ListComputedSessionIDs returns ids of computed sessions whose play date
// falls inside [start, end], oldest first. Inactive sessions are excluded.
func (r *Repository) ListComputedSessionIDs(ctx context.Context, start, end time.Time) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id
		FROM sessions
		WHERE computed = TRUE
		  AND status != 'inactive'
		  AND play_date >= $1
		  AND play_date <= $2
		ORDER BY play_date, id
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list computed sessions: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan session id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
