package payment

import (
	"context"
	"errors"

	"github.com/hoangvt/caulong/internal/audit"
	"github.com/hoangvt/caulong/internal/session"
)

// Common errors
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionFrozen   = errors.New("payments of a completed session cannot change")
)

// Service handles payment business logic. It is the read-and-mark side of
// the ledger; rows are produced by the settlement service.
type Service struct {
	repo        *Repository
	sessionRepo *session.Repository
	auditRepo   *audit.Repository
}

// NewService creates a new payment service
func NewService(repo *Repository, sessionRepo *session.Repository, auditRepo *audit.Repository) *Service {
	return &Service{
		repo:        repo,
		sessionRepo: sessionRepo,
		auditRepo:   auditRepo,
	}
}

// ListBySession retrieves a session's ledger plus its paid/unpaid summary
func (s *Service) ListBySession(ctx context.Context, sessionID int64) ([]*Payment, *Summary, error) {
	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if sess == nil {
		return nil, nil, ErrSessionNotFound
	}

	payments, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	summary := &Summary{}
	for _, p := range payments {
		summary.Total += p.Amount
		if p.Paid {
			summary.PaidTotal += p.Amount
			summary.PaidCount++
		} else {
			summary.UnpaidTotal += p.Amount
			summary.UnpaidCount++
		}
	}

	return payments, summary, nil
}

// MarkPaid flags a payment as settled by its debtor. Ledgers of completed
// sessions are frozen.
func (s *Service) MarkPaid(ctx context.Context, id int64) (*Payment, error) {
	return s.setPaid(ctx, id, true)
}

// MarkUnpaid reverts an erroneous paid mark
func (s *Service) MarkUnpaid(ctx context.Context, id int64) (*Payment, error) {
	return s.setPaid(ctx, id, false)
}

func (s *Service) setPaid(ctx context.Context, id int64, paid bool) (*Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}

	sess, err := s.sessionRepo.GetByID(ctx, p.SessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	if sess.Status == session.StatusCompleted {
		return nil, ErrSessionFrozen
	}

	if err := s.repo.SetPaid(ctx, id, paid); err != nil {
		return nil, err
	}

	if err := s.auditRepo.Create(ctx, &p.SessionID, audit.ActionPaymentMarked, map[string]interface{}{
		"payment_id": p.ID,
		"user_id":    p.UserID,
		"user_name":  p.UserName,
		"amount":     p.Amount,
		"paid":       paid,
	}); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}
