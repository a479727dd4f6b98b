package session

import "time"

// CreateSessionRequest represents the request body for creating a session
type CreateSessionRequest struct {
	PlayDate string `json:"play_date" validate:"required,datetime=2006-01-02"`
}

// UpdateCountsRequest represents the request body for updating resource counts
type UpdateCountsRequest struct {
	CourtCount   *int `json:"court_count,omitempty" validate:"omitempty,min=0,max=20"`
	ShuttleCount *int `json:"shuttle_count,omitempty" validate:"omitempty,min=0,max=100"`
}

// UpdateStatusRequest represents the request body for a status transition
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed inactive"`
}

// SessionResponse represents the response for a single session
type SessionResponse struct {
	ID             int64  `json:"id"`
	PlayDate       string `json:"play_date"`
	CourtCount     int    `json:"court_count"`
	ShuttleCount   int    `json:"shuttle_count"`
	Status         Status `json:"status"`
	TotalCost      int64  `json:"total_cost"`
	Computed       bool   `json:"computed"`
	VoteCount      int    `json:"vote_count"`
	ProxyVoteCount int    `json:"proxy_vote_count"`
	PaymentCount   int    `json:"payment_count"`
	CreatedAt      string `json:"created_at"`
}

// ToResponse converts a Session model to a SessionResponse DTO
func (s *Session) ToResponse() *SessionResponse {
	return &SessionResponse{
		ID:             s.ID,
		PlayDate:       s.PlayDate.Format("2006-01-02"),
		CourtCount:     s.CourtCount,
		ShuttleCount:   s.ShuttleCount,
		Status:         s.Status,
		TotalCost:      s.TotalCost,
		Computed:       s.Computed,
		VoteCount:      s.VoteCount,
		ProxyVoteCount: s.ProxyVoteCount,
		PaymentCount:   s.PaymentCount,
		CreatedAt:      s.CreatedAt.UTC().Format(time.RFC3339),
	}
}
