package session

import (
	"context"
	"errors"
	"time"
)

// Common errors
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionExists     = errors.New("a session already exists for this play date")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Service handles session business logic
type Service struct {
	repo *Repository
	loc  *time.Location
}

// NewService creates a new session service. loc sets the day boundary
// for "today" lookups; nil falls back to the server's local zone.
func NewService(repo *Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{repo: repo, loc: loc}
}

// Create creates a session for the given play date. At most one session per day.
func (s *Service) Create(ctx context.Context, req *CreateSessionRequest) (*Session, error) {
	playDate, err := time.Parse("2006-01-02", req.PlayDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByPlayDate(ctx, playDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSessionExists
	}

	return s.repo.Create(ctx, playDate)
}

// EnsureForDate returns the session for the given day, creating it if absent.
// Used by the daily scheduler.
func (s *Service) EnsureForDate(ctx context.Context, day time.Time) (*Session, bool, error) {
	existing, err := s.repo.GetByPlayDate(ctx, day)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	created, err := s.repo.Create(ctx, day)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// GetByID retrieves a session by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// GetCurrent retrieves today's session. "Today" is resolved in the
// configured location so it agrees with the scheduler's day boundary.
func (s *Service) GetCurrent(ctx context.Context) (*Session, error) {
	sess, err := s.repo.GetByPlayDate(ctx, s.today())
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) today() time.Time {
	return time.Now().In(s.loc)
}

// List retrieves sessions with pagination and an optional status filter
func (s *Service) List(ctx context.Context, status Status, page, perPage int) ([]*Session, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, status, perPage, offset)
}

// UpdateCounts sets the court and/or shuttle count for a session
func (s *Service) UpdateCounts(ctx context.Context, id int64, req *UpdateCountsRequest) (*Session, error) {
	sess, err := s.repo.UpdateCounts(ctx, id, req.CourtCount, req.ShuttleCount)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// UpdateStatus transitions a session's lifecycle status. Completed sessions
// cannot move back to pending.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status Status) (*Session, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrSessionNotFound
	}
	if existing.Status == StatusCompleted && status == StatusPending {
		return nil, ErrInvalidTransition
	}

	return s.repo.UpdateStatus(ctx, id, status)
}
