package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/store"
)

// HousekeepingService periodically deletes expired refresh tokens so the
// refresh_tokens table does not grow without bound. Expired tokens are
// already unusable; this only reclaims storage.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given
// interval. If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut it
// down gracefully.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts down the background worker, blocking until any in-progress
// cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) cleanup() {
	ctx := context.Background()

	deleted, err := s.Store.Credentials().DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		s.Logger.Error("failed to delete expired refresh tokens", "error", err)
		return
	}

	if deleted > 0 {
		s.Logger.Info("housekeeping cleanup completed", "expired_refresh_tokens", deleted)
	} else {
		s.Logger.Debug("housekeeping cleanup completed", "expired_refresh_tokens", 0)
	}
}
