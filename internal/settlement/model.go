package settlement

import "time"

// LedgerDetail records one attendance unit that contributed to a ledger entry
type LedgerDetail struct {
	Kind   EntryKind `json:"type"`
	Amount int64     `json:"amount"`

	// Set for proxy entries only
	TargetName   string `json:"target_name,omitempty"`
	TargetGender string `json:"target_gender,omitempty"`
}

// LedgerEntry is the accumulated amount one user is responsible for.
// A proxy voter responsible for several targets accumulates all of their
// shares under this single entry.
type LedgerEntry struct {
	UserID  int64          `json:"user_id"`
	Name    string         `json:"name"`
	Gender  string         `json:"gender"`
	Amount  int64          `json:"amount"`
	Details []LedgerDetail `json:"details"`
}

// Breakdown itemises the cost components of a settlement
type Breakdown struct {
	CourtCost           int64 `json:"court_cost"`
	ShuttleCost         int64 `json:"shuttle_cost"`
	FemaleTotal         int64 `json:"female_total"`
	MaleTotal           int64 `json:"male_total"`
	MaleNotGoingTotal   int64 `json:"male_not_going_total"`
	FemaleNotGoingTotal int64 `json:"female_not_going_total"`
	TotalParticipants   int   `json:"total_participants"`
	TotalNotGoing       int   `json:"total_not_going"`
}

// Result is the full outcome of settling one session
type Result struct {
	SessionID    int64     `json:"session_id"`
	PlayDate     time.Time `json:"play_date"`
	Total        int64     `json:"total"`
	CourtCount   int       `json:"court_count"`
	ShuttleCount int       `json:"shuttle_count"`

	GoingMale      int `json:"going_male"`
	GoingFemale    int `json:"going_female"`
	NotGoingMale   int `json:"not_going_male"`
	NotGoingFemale int `json:"not_going_female"`

	MaleShare           int64 `json:"male_share"`
	FemaleShare         int64 `json:"female_share"`
	MaleNotGoingShare   int64 `json:"male_not_going_share"`
	FemaleNotGoingShare int64 `json:"female_not_going_share"`

	Breakdown Breakdown     `json:"breakdown"`
	Ledger    []LedgerEntry `json:"ledger"`

	Pricing PricingPolicy `json:"pricing"`
}
