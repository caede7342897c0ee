package service

import (
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/aussiebroadwan/gymdesk/internal/gym/domain"
	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
	"github.com/aussiebroadwan/gymdesk/pkg/cryptox"
)

func TestHousekeepingRunOnce(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t)
	a := e.admin(t, "owner@gym.test")
	m := e.member(t, a.ID, "sam@gym.test")

	bill, err := e.billing.CreateBill(e.ctx, a.ID, BillInput{
		MemberID: m.ID,
		Amount:   decimal.NewFromInt(100),
		DueDate:  e.clock.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, e.login.RequestLink(e.ctx, domain.PortalMember, m.Email))
	token := linkToken(t, e, m.Email)

	// Two days later the link is long expired and the bill is late.
	e.clock.Advance(48 * time.Hour)

	hk := NewHousekeepingService(e.store, e.billing, slog.Default(), time.Hour)
	hk.Clock = e.clock.Now
	hk.RunOnce(e.ctx)

	got, err := e.store.Bills().GetBill(e.ctx, a.ID, bill.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BillOverdue, got.Status)

	n, err := e.store.LoginTokens().DeleteStaleLoginTokens(e.ctx, e.clock.Now())
	require.NoError(t, err)
	require.Zero(t, n, "stale token should already be gone")

	_, err = e.store.LoginTokens().ConsumeLoginToken(e.ctx, cryptox.FingerprintToken(token), domain.PortalMember, e.clock.Now().Add(-72*time.Hour))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestHousekeepingStartStop(t *testing.T) {
	// The store's own goroutines live until cleanup, after this check.
	e := newTestEnv(t)
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	hk := NewHousekeepingService(e.store, e.billing, slog.Default(), 10*time.Millisecond)
	require.Equal(t, 10*time.Millisecond, hk.Interval)

	hk.Start()
	time.Sleep(35 * time.Millisecond)
	hk.Stop()
}

func TestNewHousekeepingServiceDefaults(t *testing.T) {
	t.Parallel()

	hk := NewHousekeepingService(nil, nil, nil, 0)
	require.Equal(t, DefaultHousekeepingInterval, hk.Interval)
	require.NotNil(t, hk.Logger)
}
