package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hoangvt/caulong/internal/audit"
	"github.com/hoangvt/caulong/internal/session"
)

// Config controls when the scheduler fires
type Config struct {
	Hour     int // local hour of day for the daily tick
	PlayDays []time.Weekday
	Location *time.Location
}

// Scheduler creates the day's session on configured play days and
// deactivates stale sessions once a week. Runs in-process on a ticker;
// every fire is audited.
type Scheduler struct {
	sessions  *session.Service
	sessRepo  *session.Repository
	auditRepo *audit.Repository
	cfg       Config
	logger    zerolog.Logger
}

// New creates a new scheduler
func New(sessions *session.Service, sessRepo *session.Repository, auditRepo *audit.Repository, cfg Config, logger zerolog.Logger) *Scheduler {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Scheduler{
		sessions:  sessions,
		sessRepo:  sessRepo,
		auditRepo: auditRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start runs the scheduler until the context is cancelled
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info().
		Int("hour", s.cfg.Hour).
		Str("timezone", s.cfg.Location.String()).
		Msg("scheduler started")

	for {
		next := s.nextFire(time.Now().In(s.cfg.Location))
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info().Msg("scheduler stopped")
			return
		case <-timer.C:
			s.runDaily(ctx, next)
		}
	}
}

// nextFire returns the next daily tick strictly after now
func (s *Scheduler) nextFire(now time.Time) time.Time {
	fire := time.Date(now.Year(), now.Month(), now.Day(), s.cfg.Hour, 0, 0, 0, s.cfg.Location)
	if !fire.After(now) {
		fire = fire.AddDate(0, 0, 1)
	}
	return fire
}

func (s *Scheduler) runDaily(ctx context.Context, day time.Time) {
	if s.isPlayDay(day.Weekday()) {
		s.ensureSession(ctx, day)
	}

	// Weekly cleanup piggybacks on the Sunday tick.
	if day.Weekday() == time.Sunday {
		s.cleanup(ctx, day)
	}
}

func (s *Scheduler) isPlayDay(d time.Weekday) bool {
	for _, pd := range s.cfg.PlayDays {
		if pd == d {
			return true
		}
	}
	return false
}

func (s *Scheduler) ensureSession(ctx context.Context, day time.Time) {
	sess, created, err := s.sessions.EnsureForDate(ctx, day)
	if err != nil {
		s.logger.Error().Err(err).Time("day", day).Msg("failed to ensure session")
		return
	}
	if !created {
		s.logger.Debug().Int64("session_id", sess.ID).Msg("session already exists")
		return
	}

	s.logger.Info().Int64("session_id", sess.ID).Time("play_date", sess.PlayDate).Msg("session created")

	if err := s.auditRepo.Create(ctx, &sess.ID, audit.ActionSessionCreated, map[string]interface{}{
		"play_date": sess.PlayDate.Format("2006-01-02"),
		"source":    "scheduler",
	}); err != nil {
		s.logger.Error().Err(err).Int64("session_id", sess.ID).Msg("audit write failed")
	}
}

func (s *Scheduler) cleanup(ctx context.Context, day time.Time) {
	cutoff := day.AddDate(0, 0, -30)
	n, err := s.sessRepo.DeactivateOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error().Err(err).Msg("weekly cleanup failed")
		return
	}

	s.logger.Info().Int64("deactivated", n).Time("cutoff", cutoff).Msg("weekly cleanup done")

	if err := s.auditRepo.Create(ctx, nil, audit.ActionWeeklyCleanup, map[string]interface{}{
		"deactivated": n,
		"cutoff":      cutoff.Format("2006-01-02"),
	}); err != nil {
		s.logger.Error().Err(err).Msg("audit write failed")
	}
}
