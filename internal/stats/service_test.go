package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangvt/caulong/internal/session"
	"github.com/hoangvt/caulong/internal/settlement"
	"github.com/hoangvt/caulong/internal/vote"
)

type fakeLister struct {
	ids []int64
}

func (f *fakeLister) ListComputedSessionIDs(ctx context.Context, start, end time.Time) ([]int64, error) {
	return f.ids, nil
}

type fakeLoader struct {
	snapshots map[int64]*settlement.Snapshot
}

func (f *fakeLoader) LoadSessionWithVotes(ctx context.Context, sessionID int64) (*settlement.Snapshot, error) {
	return f.snapshots[sessionID], nil
}

func snapshotWithVotes(id int64, day time.Time, males, females int) *settlement.Snapshot {
	snap := &settlement.Snapshot{
		Session: &session.Session{
			ID:           id,
			PlayDate:     day,
			CourtCount:   2,
			ShuttleCount: 3,
			Computed:     true,
		},
	}
	var userID int64 = 1
	for i := 0; i < males; i++ {
		snap.Votes = append(snap.Votes, &vote.Vote{UserID: userID, UserGender: "male", VoteType: vote.TypeGoing})
		userID++
	}
	for i := 0; i < females; i++ {
		snap.Votes = append(snap.Votes, &vote.Vote{UserID: userID, UserGender: "female", VoteType: vote.TypeGoing})
		userID++
	}
	return snap
}

func TestRange(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	svc := NewService(
		&fakeLister{ids: []int64{1, 2}},
		&fakeLoader{snapshots: map[int64]*settlement.Snapshot{
			1: snapshotWithVotes(1, start.AddDate(0, 0, 5), 3, 2),
			2: snapshotWithVotes(2, start.AddDate(0, 0, 7), 4, 0),
		}},
		settlement.DefaultPricing(),
	)

	overview, err := svc.Range(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, 2, overview.SessionCount)
	// Each session costs 315k.
	assert.Equal(t, int64(630000), overview.TotalCost)
	assert.Equal(t, int64(315000), overview.AvgCostPerSession)
	assert.Equal(t, 7, overview.TotalGoingMale)
	assert.Equal(t, 2, overview.TotalGoingFemale)
	assert.Equal(t, 4, overview.TotalCourts)
	assert.Equal(t, 6, overview.TotalShuttles)
	assert.InDelta(t, 4.5, overview.AvgParticipants, 0.001)
	require.Len(t, overview.Sessions, 2)
	assert.Equal(t, int64(315000), overview.Sessions[0].Total)
}

func TestRangeReversed(t *testing.T) {
	svc := NewService(&fakeLister{}, &fakeLoader{}, settlement.DefaultPricing())

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Range(context.Background(), start, start.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRangeSkipsMissingSnapshots(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	svc := NewService(
		&fakeLister{ids: []int64{1, 2}},
		&fakeLoader{snapshots: map[int64]*settlement.Snapshot{
			1: snapshotWithVotes(1, start, 2, 1),
		}},
		settlement.DefaultPricing(),
	)

	overview, err := svc.Range(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, 1, overview.SessionCount)
}

func TestRangeEmpty(t *testing.T) {
	svc := NewService(&fakeLister{}, &fakeLoader{}, settlement.DefaultPricing())

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	overview, err := svc.Range(context.Background(), start, start.AddDate(0, 1, 0))
	require.NoError(t, err)

	assert.Zero(t, overview.SessionCount)
	assert.Zero(t, overview.TotalCost)
	assert.Zero(t, overview.AvgCostPerSession)
	assert.Empty(t, overview.Sessions)
}
