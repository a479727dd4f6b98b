package vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/hoangvt/caulong/internal/session"
	"github.com/hoangvt/caulong/internal/user"
)

// Common errors
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrSessionClosed    = errors.New("session is not accepting votes")
	ErrInvalidVoteType  = errors.New("invalid vote type")
	ErrProxySelfVote    = errors.New("cannot proxy vote for yourself")
	ErrTargetUnresolved = errors.New("proxy target could not be resolved")
)

// Service handles vote business logic
type Service struct {
	repo        *Repository
	userRepo    *user.Repository
	sessionRepo *session.Repository
}

// NewService creates a new vote service
func NewService(repo *Repository, userRepo *user.Repository, sessionRepo *session.Repository) *Service {
	return &Service{
		repo:        repo,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// Cast records a direct vote on a session
func (s *Service) Cast(ctx context.Context, sessionID int64, req *CastVoteRequest) (*Vote, error) {
	voteType := Type(req.VoteType)
	if !voteType.Valid() {
		return nil, ErrInvalidVoteType
	}

	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	if sess.Status != session.StatusPending {
		return nil, ErrSessionClosed
	}

	voter, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if voter == nil {
		return nil, ErrUserNotFound
	}

	v, err := s.repo.CastVote(ctx, sessionID, req.UserID, voteType)
	if err != nil {
		return nil, err
	}
	v.UserName = voter.Name
	v.UserGender = voter.Gender
	return v, nil
}

// CastProxy records a vote on behalf of a target user. A missing target is
// created lazily as a placeholder (is_real=false) from the request's name
// and gender.
func (s *Service) CastProxy(ctx context.Context, sessionID int64, req *CastProxyVoteRequest) (*ProxyVote, error) {
	voteType := Type(req.VoteType)
	if !voteType.Attendance() {
		return nil, ErrInvalidVoteType
	}

	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	if sess.Status != session.StatusPending {
		return nil, ErrSessionClosed
	}

	voter, err := s.userRepo.GetByID(ctx, req.VoterID)
	if err != nil {
		return nil, err
	}
	if voter == nil {
		return nil, ErrUserNotFound
	}

	target, err := s.resolveTarget(ctx, voter.ID, req)
	if err != nil {
		return nil, err
	}
	if target.ID == voter.ID {
		return nil, ErrProxySelfVote
	}

	pv, err := s.repo.CastProxyVote(ctx, sessionID, voter.ID, target.ID, voteType)
	if err != nil {
		return nil, err
	}
	pv.VoterName = voter.Name
	pv.VoterGender = voter.Gender
	pv.TargetName = target.Name
	pv.TargetGender = target.Gender
	return pv, nil
}

func (s *Service) resolveTarget(ctx context.Context, voterID int64, req *CastProxyVoteRequest) (*user.User, error) {
	if req.TargetID != nil {
		target, err := s.userRepo.GetByID(ctx, *req.TargetID)
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, ErrUserNotFound
		}
		return target, nil
	}

	if req.TargetName == "" || req.TargetGender == "" {
		return nil, ErrTargetUnresolved
	}

	// Placeholder external id is scoped to the voter so the same friend name
	// from two different voters stays two records.
	externalID := fmt.Sprintf("proxy:%d:%s", voterID, req.TargetName)
	return s.userRepo.Upsert(ctx, externalID, req.TargetName, req.TargetGender, false)
}

// ListBySession retrieves all direct votes for a session
func (s *Service) ListBySession(ctx context.Context, sessionID int64) ([]*Vote, error) {
	if err := s.ensureSession(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.repo.ListBySession(ctx, sessionID)
}

// ListProxyBySession retrieves all proxy votes for a session
func (s *Service) ListProxyBySession(ctx context.Context, sessionID int64) ([]*ProxyVote, error) {
	if err := s.ensureSession(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.repo.ListProxyBySession(ctx, sessionID)
}

func (s *Service) ensureSession(ctx context.Context, sessionID int64) error {
	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrSessionNotFound
	}
	return nil
}
