package session

import "time"

// Status represents the lifecycle status of a session
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusInactive  Status = "inactive"
)

// Session represents one badminton outing
type Session struct {
	ID           int64     `json:"id"`
	PlayDate     time.Time `json:"play_date"`
	CourtCount   int       `json:"court_count"`
	ShuttleCount int       `json:"shuttle_count"`
	Status       Status    `json:"status"`
	TotalCost    int64     `json:"total_cost"`
	Computed     bool      `json:"computed"`
	CreatedAt    time.Time `json:"created_at"`

	// Populated from aggregate queries
	VoteCount      int `json:"vote_count,omitempty"`
	ProxyVoteCount int `json:"proxy_vote_count,omitempty"`
	PaymentCount   int `json:"payment_count,omitempty"`
}
