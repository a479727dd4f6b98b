package stats

import (
	"context"
	"errors"
	"time"

	"github.com/hoangvt/caulong/internal/settlement"
)

// ErrInvalidRange is returned when the range is reversed
var ErrInvalidRange = errors.New("start must not be after end")

// SessionLister enumerates computed sessions; Repository satisfies it.
type SessionLister interface {
	ListComputedSessionIDs(ctx context.Context, start, end time.Time) ([]int64, error)
}

// SnapshotLoader loads a session with its votes; settlement.Repository
// satisfies it.
type SnapshotLoader interface {
	LoadSessionWithVotes(ctx context.Context, sessionID int64) (*settlement.Snapshot, error)
}

// Service aggregates computed sessions over a date range. Figures are
// recomputed from the votes with the same classifier and calculator the
// settlement path uses, so they always agree with the ledgers.
type Service struct {
	repo    SessionLister
	loader  SnapshotLoader
	pricing settlement.PricingPolicy
}

// NewService creates a new stats service
func NewService(repo SessionLister, loader SnapshotLoader, pricing settlement.PricingPolicy) *Service {
	return &Service{
		repo:    repo,
		loader:  loader,
		pricing: pricing,
	}
}

// Range aggregates all computed sessions with a play date in [start, end]
func (s *Service) Range(ctx context.Context, start, end time.Time) (*Overview, error) {
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	ids, err := s.repo.ListComputedSessionIDs(ctx, start, end)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		Start:    start,
		End:      end,
		Sessions: []SessionStat{},
	}

	totalParticipants := 0
	for _, id := range ids {
		snap, err := s.loader.LoadSessionWithVotes(ctx, id)
		if err != nil {
			return nil, err
		}
		if snap == nil {
			// Deactivated between the id listing and the load; skip.
			continue
		}

		att := settlement.Classify(snap.Session.CourtCount, snap.Session.ShuttleCount, snap.Votes, snap.ProxyVotes)
		result := settlement.Calculate(att, s.pricing)

		stat := SessionStat{
			SessionID:    snap.Session.ID,
			PlayDate:     snap.Session.PlayDate,
			Total:        result.Total,
			CourtCount:   att.CourtCount,
			ShuttleCount: att.ShuttleCount,
			GoingMale:    result.GoingMale,
			GoingFemale:  result.GoingFemale,
			NotGoing:     result.NotGoingMale + result.NotGoingFemale,
		}
		overview.Sessions = append(overview.Sessions, stat)

		overview.SessionCount++
		overview.TotalCost += result.Total
		overview.TotalGoingMale += result.GoingMale
		overview.TotalGoingFemale += result.GoingFemale
		overview.TotalNotGoing += stat.NotGoing
		overview.TotalCourts += att.CourtCount
		overview.TotalShuttles += att.ShuttleCount
		totalParticipants += result.Breakdown.TotalParticipants
	}

	if overview.SessionCount > 0 {
		overview.AvgCostPerSession = overview.TotalCost / int64(overview.SessionCount)
		overview.AvgParticipants = float64(totalParticipants) / float64(overview.SessionCount)
	}

	return overview, nil
}
