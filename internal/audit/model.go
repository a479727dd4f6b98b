package audit

import (
	"encoding/json"
	"time"
)

// Actions recorded in the audit log
const (
	ActionComputeSession = "COMPUTE_SESSION"
	ActionSessionCreated = "SESSION_CREATED"
	ActionWeeklyCleanup  = "WEEKLY_CLEANUP"
	ActionPaymentMarked  = "PAYMENT_MARKED_PAID"
)

// Entry is one append-only audit record
type Entry struct {
	ID        int64           `json:"id"`
	SessionID *int64          `json:"session_id,omitempty"`
	Action    string          `json:"action"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}
