package settlement

// PricingPolicy holds the unit prices a session's cost is split with.
// Amounts are whole VND; no fractional values exist at any stage.
type PricingPolicy struct {
	CourtPrice   int64 `json:"court_price"`
	ShuttlePrice int64 `json:"shuttle_price"`
	FemalePrice  int64 `json:"female_price"`
}

// DefaultPricing returns the long-standing club rates.
func DefaultPricing() PricingPolicy {
	return PricingPolicy{
		CourtPrice:   120000,
		ShuttlePrice: 25000,
		FemalePrice:  40000,
	}
}

// CeilRound rounds x up to the nearest multiple of 1000. Per-person shares
// always round in the house's favour so the collected sum never falls short
// of the actual cost.
func CeilRound(x int64) int64 {
	if x <= 0 {
		return 0
	}
	return ((x + 999) / 1000) * 1000
}

// ceilRoundDiv divides num by den and ceil-rounds the exact quotient to the
// nearest multiple of 1000, without going through floating point.
func ceilRoundDiv(num, den int64) int64 {
	if num <= 0 || den <= 0 {
		return 0
	}
	step := den * 1000
	return ((num + step - 1) / step) * 1000
}
