package vote

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles vote and proxy-vote persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new vote repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CastVote records a direct vote. Attendance votes supersede the opposite
// declaration for the same (session, user): casting VOTE_YES removes an
// existing VOTE_NO and vice versa, and re-casting the same type is a no-op
// on the count. Resource pledges (COURT/SHUTTLE) stack, one row each.
func (r *Repository) CastVote(ctx context.Context, sessionID, userID int64, voteType Type) (*Vote, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin vote transaction: %w", err)
	}
	defer tx.Rollback()

	if voteType.Attendance() {
		opposite := TypeNotGoing
		if voteType == TypeNotGoing {
			opposite = TypeGoing
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM votes WHERE session_id = $1 AND user_id = $2 AND vote_type = $3`,
			sessionID, userID, string(opposite),
		); err != nil {
			return nil, fmt.Errorf("failed to supersede opposite vote: %w", err)
		}
		// Drop a duplicate of the same type so the insert below replaces it.
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM votes WHERE session_id = $1 AND user_id = $2 AND vote_type = $3`,
			sessionID, userID, string(voteType),
		); err != nil {
			return nil, fmt.Errorf("failed to replace existing vote: %w", err)
		}
	}

	query := `
		INSERT INTO votes (session_id, user_id, vote_type)
		VALUES ($1, $2, $3)
		RETURNING id, session_id, user_id, vote_type, created_at
	`

	v := &Vote{}
	if err := tx.QueryRowContext(ctx, query, sessionID, userID, string(voteType)).Scan(
		&v.ID,
		&v.SessionID,
		&v.UserID,
		&v.VoteType,
		&v.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to create vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit vote transaction: %w", err)
	}

	return v, nil
}

// ListBySession retrieves all votes for a session including voter gender
func (r *Repository) ListBySession(ctx context.Context, sessionID int64) ([]*Vote, error) {
	query := `
		SELECT v.id, v.session_id, v.user_id, v.vote_type, v.created_at,
		       u.name, u.gender
		FROM votes v
		JOIN users u ON v.user_id = u.id
		WHERE v.session_id = $1
		ORDER BY v.created_at, v.id
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	var votes []*Vote
	for rows.Next() {
		v := &Vote{}
		if err := rows.Scan(
			&v.ID,
			&v.SessionID,
			&v.UserID,
			&v.VoteType,
			&v.CreatedAt,
			&v.UserName,
			&v.UserGender,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}

	return votes, nil
}

// CastProxyVote records a vote on behalf of a target. At most one proxy vote
// exists per (session, voter, target); a new one replaces the old.
func (r *Repository) CastProxyVote(ctx context.Context, sessionID, voterID, targetID int64, voteType Type) (*ProxyVote, error) {
	query := `
		INSERT INTO proxy_votes (session_id, voter_id, target_id, vote_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id, voter_id, target_id)
		DO UPDATE SET vote_type = EXCLUDED.vote_type, created_at = NOW()
		RETURNING id, session_id, voter_id, target_id, vote_type, created_at
	`

	pv := &ProxyVote{}
	err := r.db.QueryRowContext(ctx, query, sessionID, voterID, targetID, string(voteType)).Scan(
		&pv.ID,
		&pv.SessionID,
		&pv.VoterID,
		&pv.TargetID,
		&pv.VoteType,
		&pv.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to cast proxy vote: %w", err)
	}

	return pv, nil
}

// ListProxyBySession retrieves all proxy votes for a session including voter
// and target identity
func (r *Repository) ListProxyBySession(ctx context.Context, sessionID int64) ([]*ProxyVote, error) {
	query := `
		SELECT pv.id, pv.session_id, pv.voter_id, pv.target_id, pv.vote_type, pv.created_at,
		       voter.name, voter.gender, target.name, target.gender
		FROM proxy_votes pv
		JOIN users voter ON pv.voter_id = voter.id
		JOIN users target ON pv.target_id = target.id
		WHERE pv.session_id = $1
		ORDER BY pv.created_at, pv.id
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list proxy votes: %w", err)
	}
	defer rows.Close()

	var proxyVotes []*ProxyVote
	for rows.Next() {
		pv := &ProxyVote{}
		if err := rows.Scan(
			&pv.ID,
			&pv.SessionID,
			&pv.VoterID,
			&pv.TargetID,
			&pv.VoteType,
			&pv.CreatedAt,
			&pv.VoterName,
			&pv.VoterGender,
			&pv.TargetName,
			&pv.TargetGender,
		); err != nil {
			return nil, fmt.Errorf("failed to scan proxy vote: %w", err)
		}
		proxyVotes = append(proxyVotes, pv)
	}

	return proxyVotes, nil
}
