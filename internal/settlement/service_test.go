package settlement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangvt/caulong/internal/session"
	"github.com/hoangvt/caulong/internal/vote"
)

type fakeStore struct {
	snapshot *Snapshot
	loadErr  error

	replaceErr     error
	replacedTotal  int64
	replacedLedger []LedgerEntry
	replaceCalls   int
	carried        int
}

func (f *fakeStore) LoadSessionWithVotes(ctx context.Context, sessionID int64) (*Snapshot, error) {
	return f.snapshot, f.loadErr
}

func (f *fakeStore) ReplacePayments(ctx context.Context, sessionID int64, total int64, ledger []LedgerEntry) (int, error) {
	f.replaceCalls++
	if f.replaceErr != nil {
		return 0, f.replaceErr
	}
	f.replacedTotal = total
	f.replacedLedger = ledger
	return f.carried, nil
}

type fakeAudit struct {
	entries []string
	err     error
}

func (f *fakeAudit) Create(ctx context.Context, sessionID *int64, action string, payload interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, action)
	return nil
}

func testSnapshot() *Snapshot {
	return &Snapshot{
		Session: &session.Session{
			ID:           7,
			PlayDate:     time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			CourtCount:   2,
			ShuttleCount: 3,
			Status:       session.StatusPending,
		},
		Votes: []*vote.Vote{
			directVote(1, "An", "male", vote.TypeGoing),
			directVote(2, "Binh", "male", vote.TypeGoing),
			directVote(3, "Cuong", "male", vote.TypeGoing),
			directVote(4, "Chi", "female", vote.TypeGoing),
			directVote(5, "Hoa", "female", vote.TypeGoing),
		},
	}
}

func TestSettle(t *testing.T) {
	store := &fakeStore{snapshot: testSnapshot(), carried: 2}
	auditLog := &fakeAudit{}
	svc := NewService(store, auditLog, DefaultPricing(), zerolog.Nop())

	result, err := svc.Settle(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.SessionID)
	assert.Equal(t, int64(315000), result.Total)
	assert.Equal(t, int64(315000), store.replacedTotal)
	assert.Len(t, store.replacedLedger, 5)
	assert.Equal(t, []string{"COMPUTE_SESSION"}, auditLog.entries)
}

func TestSettleSessionNotFound(t *testing.T) {
	store := &fakeStore{snapshot: nil}
	svc := NewService(store, &fakeAudit{}, DefaultPricing(), zerolog.Nop())

	_, err := svc.Settle(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Zero(t, store.replaceCalls)
}

func TestSettleIdempotent(t *testing.T) {
	store := &fakeStore{snapshot: testSnapshot()}
	svc := NewService(store, &fakeAudit{}, DefaultPricing(), zerolog.Nop())

	first, err := svc.Settle(context.Background(), 7)
	require.NoError(t, err)
	second, err := svc.Settle(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, store.replaceCalls, "each settle replaces the ledger")
}

func TestSettlePersistenceFailure(t *testing.T) {
	store := &fakeStore{snapshot: testSnapshot(), replaceErr: errors.New("connection reset")}
	auditLog := &fakeAudit{}
	svc := NewService(store, auditLog, DefaultPricing(), zerolog.Nop())

	_, err := svc.Settle(context.Background(), 7)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Empty(t, auditLog.entries, "no audit entry for a failed settle")
}

func TestSettleAuditFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{snapshot: testSnapshot()}
	svc := NewService(store, &fakeAudit{err: errors.New("disk full")}, DefaultPricing(), zerolog.Nop())

	result, err := svc.Settle(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestReport(t *testing.T) {
	store := &fakeStore{snapshot: testSnapshot()}
	svc := NewService(store, &fakeAudit{}, DefaultPricing(), zerolog.Nop())

	report, err := svc.Report(context.Background(), 7)
	require.NoError(t, err)

	assert.Contains(t, report, "🏸 Kết quả ngày 15/01/2026:")
	assert.Contains(t, report, "💰 Tổng: 315.000đ")
	assert.Equal(t, 1, store.replaceCalls, "report settles before rendering")
}
