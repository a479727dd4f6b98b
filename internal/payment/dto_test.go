package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToResponseTimestampsInUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	paidAt := time.Date(2026, 1, 16, 1, 30, 0, 0, loc)
	p := &Payment{
		ID:        1,
		SessionID: 2,
		UserID:    3,
		UserName:  "An",
		Amount:    105000,
		Paid:      true,
		PaidAt:    &paidAt,
		CreatedAt: time.Date(2026, 1, 15, 8, 0, 0, 0, loc),
	}

	resp := p.ToResponse()
	// 08:00 UTC+7 is 01:00 UTC; the Z suffix must mean actual UTC.
	assert.Equal(t, "2026-01-15T01:00:00Z", resp.CreatedAt)
	assert.Equal(t, "2026-01-15T18:30:00Z", resp.PaidAt)
}

func TestToResponseUnpaid(t *testing.T) {
	p := &Payment{
		ID:        1,
		Amount:    40000,
		CreatedAt: time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC),
	}

	resp := p.ToResponse()
	assert.False(t, resp.Paid)
	assert.Empty(t, resp.PaidAt)
	assert.Equal(t, "2026-01-15T08:00:00Z", resp.CreatedAt)
}
