package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/gymdesk/internal/gym/store"
)

const (
	DefaultHousekeepingInterval = 10 * time.Minute

	// loginTokenRetention keeps spent and expired links around for a day
	// so support can still see recent sign-in attempts.
	loginTokenRetention = 24 * time.Hour
)

// HousekeepingService periodically deletes stale sign-in links and marks
// pending bills past their due date as overdue.
type HousekeepingService struct {
	Store    store.Store
	Billing  *BillingService
	Logger   *slog.Logger
	Interval time.Duration
	Clock    Clock

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service with the given
// interval. If interval is 0 or negative, defaults to ten minutes.
func NewHousekeepingService(st store.Store, billing *BillingService, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = DefaultHousekeepingInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HousekeepingService{
		Store:    st,
		Billing:  billing,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. It is non-blocking; call Stop to
// shut the worker down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress run has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run immediately on startup
	s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single pass. Each step is independent; a failure in
// one does not stop the other.
func (s *HousekeepingService) RunOnce(ctx context.Context) {
	cutoff := s.Clock.now().Add(-loginTokenRetention)
	if n, err := s.Store.LoginTokens().DeleteStaleLoginTokens(ctx, cutoff); err != nil {
		s.Logger.Error("failed to delete stale login tokens", "error", err)
	} else {
		s.Logger.Debug("deleted stale login tokens", "count", n)
	}

	if s.Billing != nil {
		if n, err := s.Billing.SweepOverdue(ctx); err != nil {
			s.Logger.Error("failed to sweep overdue bills", "error", err)
		} else if n > 0 {
			s.Logger.Info("marked bills overdue", "count", n)
		}
	}
}
