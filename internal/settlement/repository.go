package settlement

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hoangvt/caulong/internal/session"
	"github.com/hoangvt/caulong/internal/vote"
)

// Repository handles settlement persistence: loading the vote snapshot and
// atomically replacing the payment ledger.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settlement repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Snapshot is a session together with every vote that settles it
type Snapshot struct {
	Session    *session.Session
	Votes      []*vote.Vote
	ProxyVotes []*vote.ProxyVote
}

// LoadSessionWithVotes reads a session plus its direct and proxy votes,
// including the gender of every voter and target. Returns a nil snapshot
// when the session id does not resolve.
func (r *Repository) LoadSessionWithVotes(ctx context.Context, sessionID int64) (*Snapshot, error) {
	sess := &session.Session{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, play_date, court_count, shuttle_count, status, total_cost, computed, created_at
		FROM sessions
		WHERE id = $1
	`, sessionID).Scan(
		&sess.ID,
		&sess.PlayDate,
		&sess.CourtCount,
		&sess.ShuttleCount,
		&sess.Status,
		&sess.TotalCost,
		&sess.Computed,
		&sess.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	votes, err := r.loadVotes(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	proxyVotes, err := r.loadProxyVotes(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &Snapshot{Session: sess, Votes: votes, ProxyVotes: proxyVotes}, nil
}

func (r *Repository) loadVotes(ctx context.Context, sessionID int64) ([]*vote.Vote, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.session_id, v.user_id, v.vote_type, v.created_at, u.name, u.gender
		FROM votes v
		JOIN users u ON v.user_id = u.id
		WHERE v.session_id = $1
		ORDER BY v.created_at, v.id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load votes: %w", err)
	}
	defer rows.Close()

	var votes []*vote.Vote
	for rows.Next() {
		v := &vote.Vote{}
		if err := rows.Scan(&v.ID, &v.SessionID, &v.UserID, &v.VoteType, &v.CreatedAt, &v.UserName, &v.UserGender); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	return votes, nil
}

func (r *Repository) loadProxyVotes(ctx context.Context, sessionID int64) ([]*vote.ProxyVote, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pv.id, pv.session_id, pv.voter_id, pv.target_id, pv.vote_type, pv.created_at,
		       voter.name, voter.gender, target.name, target.gender
		FROM proxy_votes pv
		JOIN users voter ON pv.voter_id = voter.id
		JOIN users target ON pv.target_id = target.id
		WHERE pv.session_id = $1
		ORDER BY pv.created_at, pv.id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load proxy votes: %w", err)
	}
	defer rows.Close()

	var proxyVotes []*vote.ProxyVote
	for rows.Next() {
		pv := &vote.ProxyVote{}
		if err := rows.Scan(
			&pv.ID, &pv.SessionID, &pv.VoterID, &pv.TargetID, &pv.VoteType, &pv.CreatedAt,
			&pv.VoterName, &pv.VoterGender, &pv.TargetName, &pv.TargetGender,
		); err != nil {
			return nil, fmt.Errorf("failed to scan proxy vote: %w", err)
		}
		proxyVotes = append(proxyVotes, pv)
	}
	return proxyVotes, nil
}

type paidMark struct {
	amount int64
	paidAt time.Time
}

// ReplacePayments swaps the session's payment ledger for the given one and
// updates the cached totals, all in a single transaction. The session row is
// locked first so concurrent settles of the same session serialize; readers
// never observe a partially replaced ledger.
//
// A paid mark survives regeneration only when the responsible user reappears
// with an unchanged amount; a changed amount is a different obligation and
// reverts to unpaid. Returns how many marks were carried over.
func (r *Repository) ReplacePayments(ctx context.Context, sessionID int64, total int64, ledger []LedgerEntry) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin settlement transaction: %w", err)
	}
	defer tx.Rollback()

	// Per-session serialization point.
	var lockedID int64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM sessions WHERE id = $1 FOR UPDATE`, sessionID,
	).Scan(&lockedID); err != nil {
		return 0, fmt.Errorf("failed to lock session: %w", err)
	}

	paidMarks, err := loadPaidMarks(ctx, tx, sessionID)
	if err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM payments WHERE session_id = $1`, sessionID,
	); err != nil {
		return 0, fmt.Errorf("failed to delete stale payments: %w", err)
	}

	carried := 0
	for _, entry := range ledger {
		paid := false
		var paidAt *time.Time
		if mark, ok := paidMarks[entry.UserID]; ok && mark.amount == entry.Amount {
			paid = true
			at := mark.paidAt
			paidAt = &at
			carried++
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO payments (session_id, user_id, user_name, amount, paid, paid_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, sessionID, entry.UserID, entry.Name, entry.Amount, paid, paidAt); err != nil {
			return 0, fmt.Errorf("failed to insert payment: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE sessions
		SET total_cost = $2, computed = TRUE
		WHERE id = $1
	`, sessionID, total); err != nil {
		return 0, fmt.Errorf("failed to update session totals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit settlement transaction: %w", err)
	}

	return carried, nil
}

func loadPaidMarks(ctx context.Context, tx *sql.Tx, sessionID int64) (map[int64]paidMark, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT user_id, amount, paid_at
		FROM payments
		WHERE session_id = $1 AND paid = TRUE
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load paid marks: %w", err)
	}
	defer rows.Close()

	marks := make(map[int64]paidMark)
	for rows.Next() {
		var userID int64
		var amount int64
		var paidAt sql.NullTime
		if err := rows.Scan(&userID, &amount, &paidAt); err != nil {
			return nil, fmt.Errorf("failed to scan paid mark: %w", err)
		}
		marks[userID] = paidMark{amount: amount, paidAt: paidAt.Time}
	}
	return marks, nil
}
