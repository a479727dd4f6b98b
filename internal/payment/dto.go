package payment

import "time"

// PaymentResponse represents the response for a payment
type PaymentResponse struct {
	ID        int64  `json:"id"`
	SessionID int64  `json:"session_id"`
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	Amount    int64  `json:"amount"`
	Paid      bool   `json:"paid"`
	PaidAt    string `json:"paid_at,omitempty"`
	CreatedAt string `json:"created_at"`
}

// LedgerResponse bundles a session's payments with their summary
type LedgerResponse struct {
	Payments []*PaymentResponse `json:"payments"`
	Summary  *Summary           `json:"summary"`
}

// ToResponse converts a Payment to a PaymentResponse
func (p *Payment) ToResponse() *PaymentResponse {
	resp := &PaymentResponse{
		ID:        p.ID,
		SessionID: p.SessionID,
		UserID:    p.UserID,
		UserName:  p.UserName,
		Amount:    p.Amount,
		Paid:      p.Paid,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if p.PaidAt != nil {
		resp.PaidAt = p.PaidAt.UTC().Format(time.RFC3339)
	}
	return resp
}
