// Package scheduler drives the periodic feed check.
package scheduler

import (
	"context"
	"time"

	"github.com/casefolio/casefolio/internal/ingest"
	"github.com/casefolio/casefolio/internal/logger"
)

// FeedChecker runs the ingest monitor on an interval, on manual trigger and
// once immediately at startup.
type FeedChecker struct {
	monitor       *ingest.Monitor
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewFeedChecker creates a feed checker.
func NewFeedChecker(
	monitor *ingest.Monitor,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *FeedChecker {
	return &FeedChecker{
		monitor:       monitor,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start runs one check immediately, then checks on every tick or manual
// trigger until Stop or context cancellation. Feed sources come and go; a
// failing pass is logged, never fatal to the service.
func (fc *FeedChecker) Start(ctx context.Context) error {
	if err := fc.check(ctx); err != nil {
		fc.logger.Error("initial feed check failed", logger.Error(err))
	}

	ticker := time.NewTicker(fc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := fc.check(ctx); err != nil {
					fc.logger.Error("scheduled feed check failed",
						logger.Error(err))
				}
			case <-fc.manualTrigger:
				fc.logger.Info("manual feed check triggered")
				if err := fc.check(ctx); err != nil {
					fc.logger.Error("manual feed check failed",
						logger.Error(err))
				}
			case <-fc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the checker.
func (fc *FeedChecker) Stop() {
	close(fc.stopCh)
}

func (fc *FeedChecker) check(ctx context.Context) error {
	_, err := fc.monitor.Run(ctx)
	return err
}
