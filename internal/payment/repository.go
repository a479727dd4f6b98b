package payment

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles payment data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new payment repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a payment by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Payment, error) {
	query := `
		SELECT id, session_id, user_id, user_name, amount, paid, paid_at, created_at
		FROM payments
		WHERE id = $1
	`

	p := &Payment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.SessionID,
		&p.UserID,
		&p.UserName,
		&p.Amount,
		&p.Paid,
		&p.PaidAt,
		&p.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return p, nil
}

// ListBySession retrieves a session's ledger in insertion order
func (r *Repository) ListBySession(ctx context.Context, sessionID int64) ([]*Payment, error) {
	query := `
		SELECT id, session_id, user_id, user_name, amount, paid, paid_at, created_at
		FROM payments
		WHERE session_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		p := &Payment{}
		if err := rows.Scan(
			&p.ID,
			&p.SessionID,
			&p.UserID,
			&p.UserName,
			&p.Amount,
			&p.Paid,
			&p.PaidAt,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, nil
}

// SetPaid updates the paid flag of a payment. paid_at tracks the flag.
func (r *Repository) SetPaid(ctx context.Context, id int64, paid bool) error {
	query := `
		UPDATE payments
		SET paid = $2, paid_at = CASE WHEN $2 THEN NOW() ELSE NULL END
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id, paid); err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return nil
}
