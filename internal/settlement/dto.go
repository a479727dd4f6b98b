package settlement

// ResultResponse is the wire form of a settlement result
type ResultResponse struct {
	SessionID    int64  `json:"session_id"`
	PlayDate     string `json:"play_date"`
	Total        int64  `json:"total"`
	CourtCount   int    `json:"court_count"`
	ShuttleCount int    `json:"shuttle_count"`

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
	Pricing   PricingPolicy `json:"pricing"`
}

// ToResponse converts a Result to its wire form
func (r *Result) ToResponse() *ResultResponse {
	return &ResultResponse{
		SessionID:    r.SessionID,
		PlayDate:     r.PlayDate.Format("2006-01-02"),
		Total:        r.Total,
		CourtCount:   r.CourtCount,
		ShuttleCount: r.ShuttleCount,

		GoingMale:      r.GoingMale,
		GoingFemale:    r.GoingFemale,
		NotGoingMale:   r.NotGoingMale,
		NotGoingFemale: r.NotGoingFemale,

		MaleShare:           r.MaleShare,
		FemaleShare:         r.FemaleShare,
		MaleNotGoingShare:   r.MaleNotGoingShare,
		FemaleNotGoingShare: r.FemaleNotGoingShare,

		Breakdown: r.Breakdown,
		Ledger:    r.Ledger,
		Pricing:   r.Pricing,
	}
}
