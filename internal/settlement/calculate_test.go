package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangvt/caulong/internal/vote"
)

// Club rates: 2 courts x 120k + 3 shuttles x 25k = 315k total.
// 2 women pay the 40k tier; 3 men split the remaining 235k -> 79k each.
func TestCalculateGenderTiers(t *testing.T) {
	votes := []*vote.Vote{
		directVote(1, "An", "male", vote.TypeGoing),
		directVote(2, "Binh", "male", vote.TypeGoing),
		directVote(3, "Cuong", "male", vote.TypeGoing),
		directVote(4, "Chi", "female", vote.TypeGoing),
		directVote(5, "Hoa", "female", vote.TypeGoing),
	}

	att := Classify(2, 3, votes, nil)
	result := Calculate(att, DefaultPricing())

	assert.Equal(t, int64(315000), result.Total)
	assert.Equal(t, int64(240000), result.Breakdown.CourtCost)
	assert.Equal(t, int64(75000), result.Breakdown.ShuttleCost)
	assert.Equal(t, int64(40000), result.FemaleShare)
	assert.Equal(t, int64(79000), result.MaleShare)

	// 3x79k + 2x40k = 317k; rounding up may overshoot the real cost.
	var sum int64
	for _, entry := range result.Ledger {
		sum += entry.Amount
	}
	assert.Equal(t, int64(317000), sum)
	assert.GreaterOrEqual(t, sum, result.Total)
}

func TestCalculateNoMenEvenSplit(t *testing.T) {
	votes := []*vote.Vote{
		directVote(1, "Chi", "female", vote.TypeGoing),
		directVote(2, "Hoa", "female", vote.TypeGoing),
		directVote(3, "Lan", "female", vote.TypeGoing),
		directVote(4, "Mai", "female", vote.TypeGoing),
	}

	att := Classify(2, 3, votes, nil)
	result := Calculate(att, DefaultPricing())

	// 315k / 4 = 78750 -> 79k, and the fixed tier is suspended.
	assert.Equal(t, int64(79000), result.FemaleShare)
	assert.Equal(t, int64(79000), result.MaleShare)
	for _, entry := range result.Ledger {
		assert.Equal(t, int64(79000), entry.Amount)
	}
}

func TestCalculateAbsenteesShareCourtsOnly(t *testing.T) {
	votes := []*vote.Vote{
		directVote(1, "An", "male", vote.TypeGoing),
		directVote(2, "Binh", "male", vote.TypeGoing),
		directVote(3, "Chi", "female", vote.TypeGoing),
		directVote(4, "Dung", "male", vote.TypeNotGoing),
		directVote(5, "Em", "female", vote.TypeNotGoing),
	}

	att := Classify(2, 3, votes, nil)
	result := Calculate(att, DefaultPricing())

	// Court cost 240k over all 5 court sharers = 48k; gender-blind.
	assert.Equal(t, int64(48000), result.MaleNotGoingShare)
	assert.Equal(t, int64(48000), result.FemaleNotGoingShare)

	require.Len(t, result.Ledger, 5)
	byUser := map[int64]int64{}
	for _, entry := range result.Ledger {
		byUser[entry.UserID] = entry.Amount
	}
	assert.Equal(t, int64(48000), byUser[4])
	assert.Equal(t, int64(48000), byUser[5])
	// Going men pay (315k - 40k) / 2 = 137500 -> 138k.
	assert.Equal(t, int64(138000), byUser[1])
	assert.Equal(t, int64(40000), byUser[3])
}

func TestCalculateProxyAccumulates(t *testing.T) {
	votes := []*vote.Vote{
		directVote(1, "An", "male", vote.TypeGoing),
		directVote(2, "Binh", "male", vote.TypeGoing),
	}
	proxies := []*vote.ProxyVote{
		proxyVote(1, "An", "male", "Hoa", "female", vote.TypeGoing),
		proxyVote(1, "An", "male", "Cuong", "male", vote.TypeGoing),
	}

	att := Classify(1, 2, votes, proxies)
	result := Calculate(att, DefaultPricing())

	// 1 court + 2 shuttles = 170k. Buckets: 3 male units, 1 female unit.
	// Male share: (170k - 40k) / 3 = 43333 -> 44k.
	assert.Equal(t, int64(44000), result.MaleShare)

	require.Len(t, result.Ledger, 2, "proxy shares fold into the voter's line")
	an := result.Ledger[0]
	assert.Equal(t, int64(1), an.UserID)
	// Own 44k + proxy female 40k + proxy male 44k.
	assert.Equal(t, int64(128000), an.Amount)
	require.Len(t, an.Details, 3)
	assert.Equal(t, KindGoing, an.Details[0].Kind)
	assert.Equal(t, "Hoa", an.Details[1].TargetName)
	assert.Equal(t, "Cuong", an.Details[2].TargetName)
}

func TestCalculateZeroAttendance(t *testing.T) {
	att := Classify(2, 3, nil, nil)
	result := Calculate(att, DefaultPricing())

	assert.Equal(t, int64(315000), result.Total, "costs exist even with nobody voting")
	assert.Equal(t, int64(0), result.MaleShare)
	assert.Empty(t, result.Ledger)
}

func TestCalculateOnlyAbsentees(t *testing.T) {
	votes := []*vote.Vote{
		directVote(1, "An", "male", vote.TypeNotGoing),
		directVote(2, "Chi", "female", vote.TypeNotGoing),
	}

	att := Classify(2, 0, votes, nil)
	result := Calculate(att, DefaultPricing())

	// 240k / 2 = 120k each.
	assert.Equal(t, int64(120000), result.MaleNotGoingShare)
	require.Len(t, result.Ledger, 2)
	assert.Equal(t, int64(120000), result.Ledger[0].Amount)
	assert.Equal(t, int64(120000), result.Ledger[1].Amount)
}

func TestCalculateConservationBound(t *testing.T) {
	// Going players absorb the full cost between them, so absentee court
	// shares are collected on top of the total. The over-collection is
	// bounded by rounding (under 1000 per person), the fixed female tier,
	// and the absentees' shares.
	votes := []*vote.Vote{
		directVote(1, "An", "male", vote.TypeGoing),
		directVote(2, "Binh", "male", vote.TypeGoing),
		directVote(3, "Cuong", "male", vote.TypeGoing),
		directVote(4, "Chi", "female", vote.TypeGoing),
		directVote(5, "Dung", "male", vote.TypeNotGoing),
	}

	att := Classify(3, 7, votes, nil)
	result := Calculate(att, DefaultPricing())

	var sum int64
	for _, entry := range result.Ledger {
		sum += entry.Amount
	}
	// 3 x 165k males + 40k female + 72k absentee.
	assert.Equal(t, int64(607000), sum)
	assert.GreaterOrEqual(t, sum, result.Total)

	people := int64(len(result.Ledger))
	absentees := int64(att.NotGoingMale + att.NotGoingFemale)
	bound := result.Total +
		people*1000 +
		int64(att.GoingFemale)*DefaultPricing().FemalePrice +
		absentees*result.MaleNotGoingShare
	assert.Less(t, sum, bound)
}

func TestCalculateDeterministic(t *testing.T) {
	votes := []*vote.Vote{
		directVote(1, "An", "male", vote.TypeGoing),
		directVote(2, "Chi", "female", vote.TypeGoing),
		directVote(3, "Binh", "male", vote.TypeNotGoing),
	}

	att := Classify(2, 2, votes, nil)
	first := Calculate(att, DefaultPricing())
	second := Calculate(att, DefaultPricing())

	assert.Equal(t, first, second)
}
