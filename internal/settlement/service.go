package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Common errors
var (
	ErrSessionNotFound = errors.New("session not found")
	// ErrPersistence wraps storage failures during the ledger replace step.
	// The prior ledger is fully retained when it is returned.
	ErrPersistence = errors.New("settlement persistence failure")
)

// Store is the persistence surface the orchestrator needs
type Store interface {
	LoadSessionWithVotes(ctx context.Context, sessionID int64) (*Snapshot, error)
	ReplacePayments(ctx context.Context, sessionID int64, total int64, ledger []LedgerEntry) (int, error)
}

// AuditLog records traceability entries for computed settlements
type AuditLog interface {
	Create(ctx context.Context, sessionID *int64, action string, payload interface{}) error
}

// Service orchestrates settlement: load snapshot, classify, calculate,
// replace the ledger, audit. Stateless between invocations; settles of the
// same session serialize in the store.
type Service struct {
	store    Store
	auditLog AuditLog
	pricing  PricingPolicy
	logger   zerolog.Logger
}

// NewService creates a new settlement service
func NewService(store Store, auditLog AuditLog, pricing PricingPolicy, logger zerolog.Logger) *Service {
	return &Service{
		store:    store,
		auditLog: auditLog,
		pricing:  pricing,
		logger:   logger,
	}
}

// Settle recomputes the payment ledger for a session from its current votes
// and resource counts. Safe to call repeatedly: the ledger always reflects
// only the latest inputs.
func (s *Service) Settle(ctx context.Context, sessionID int64) (*Result, error) {
	snap, err := s.store.LoadSessionWithVotes(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrSessionNotFound
	}

	att := Classify(snap.Session.CourtCount, snap.Session.ShuttleCount, snap.Votes, snap.ProxyVotes)
	result := Calculate(att, s.pricing)
	result.SessionID = snap.Session.ID
	result.PlayDate = snap.Session.PlayDate

	carried, err := s.store.ReplacePayments(ctx, sessionID, result.Total, result.Ledger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if err := s.auditLog.Create(ctx, &sessionID, "COMPUTE_SESSION", map[string]interface{}{
		"result":    result,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		// The ledger is already committed; a failed audit write is logged,
		// not surfaced.
		s.logger.Error().Err(err).Int64("session_id", sessionID).Msg("audit write failed")
	}

	s.logger.Info().
		Int64("session_id", sessionID).
		Int64("total", result.Total).
		Int("going", result.Breakdown.TotalParticipants).
		Int("not_going", result.Breakdown.TotalNotGoing).
		Int("ledger_lines", len(result.Ledger)).
		Int("paid_marks_carried", carried).
		Msg("session settled")

	return &result, nil
}

// Report settles the session and renders the text summary. Settlement is
// idempotent, so the report always matches the persisted ledger.
func (s *Service) Report(ctx context.Context, sessionID int64) (string, error) {
	result, err := s.Settle(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return FormatReport(*result), nil
}
