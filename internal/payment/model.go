package payment

import "time"

// Payment is one ledger row: what a user owes for a session. Rows are
// regenerated on every settle; paid marks survive when the amount is
// unchanged.
type Payment struct {
	ID        int64      `json:"id"`
	SessionID int64      `json:"session_id"`
	UserID    int64      `json:"user_id"`
	UserName  string     `json:"user_name"`
	Amount    int64      `json:"amount"`
	Paid      bool       `json:"paid"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Summary aggregates a session's ledger
type Summary struct {
	Total       int64 `json:"total"`
	PaidTotal   int64 `json:"paid_total"`
	UnpaidTotal int64 `json:"unpaid_total"`
	PaidCount   int   `json:"paid_count"`
	UnpaidCount int   `json:"unpaid_count"`
}
