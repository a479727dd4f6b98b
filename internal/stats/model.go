package stats

import "time"

// SessionStat is one computed session's contribution to the range
type SessionStat struct {
	SessionID    int64     `json:"session_id"`
	PlayDate     time.Time `json:"play_date"`
	Total        int64     `json:"total"`
	CourtCount   int       `json:"court_count"`
	ShuttleCount int       `json:"shuttle_count"`
	GoingMale    int       `json:"going_male"`
	GoingFemale  int       `json:"going_female"`
	NotGoing     int       `json:"not_going"`
}

// Overview aggregates all computed sessions in a date range
type Overview struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	SessionCount int   `json:"session_count"`
	TotalCost    int64 `json:"total_cost"`

	TotalGoingMale   int `json:"total_going_male"`
	TotalGoingFemale int `json:"total_going_female"`
	TotalNotGoing    int `json:"total_not_going"`

	AvgCostPerSession int64   `json:"avg_cost_per_session"`
	AvgParticipants   float64 `json:"avg_participants"`
	TotalCourts       int     `json:"total_courts"`
	TotalShuttles     int     `json:"total_shuttles"`

	Sessions []SessionStat `json:"sessions"`
}
