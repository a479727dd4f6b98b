package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCeilRound(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want int64
	}{
		{"zero", 0, 0},
		{"negative", -500, 0},
		{"exact multiple", 79000, 79000},
		{"just above multiple", 78001, 79000},
		{"just below multiple", 78999, 79000},
		{"one", 1, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CeilRound(tt.in))
		})
	}
}

func TestCeilRoundDiv(t *testing.T) {
	// 235000 / 3 = 78333.33 -> 79000
	assert.Equal(t, int64(79000), ceilRoundDiv(235000, 3))
	// 315000 / 4 = 78750 -> 79000
	assert.Equal(t, int64(79000), ceilRoundDiv(315000, 4))
	// Exact division on a multiple stays put: 240000 / 2 = 120000
	assert.Equal(t, int64(120000), ceilRoundDiv(240000, 2))
	assert.Equal(t, int64(0), ceilRoundDiv(0, 3))
	assert.Equal(t, int64(0), ceilRoundDiv(100, 0))
}

func TestCeilRoundDivMatchesCeilRound(t *testing.T) {
	// The fused divide-and-round must agree with rounding the exact quotient.
	for num := int64(1); num < 500000; num += 7919 {
		for _, den := range []int64{1, 2, 3, 4, 7, 11} {
			q := num / den
			if num%den != 0 {
				q++
			}
			assert.Equal(t, CeilRound(q), ceilRoundDiv(num, den), "num=%d den=%d", num, den)
		}
	}
}

func TestDefaultPricing(t *testing.T) {
	p := DefaultPricing()
	assert.Equal(t, int64(120000), p.CourtPrice)
	assert.Equal(t, int64(25000), p.ShuttlePrice)
	assert.Equal(t, int64(40000), p.FemalePrice)
}
