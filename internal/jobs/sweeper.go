// Package jobs runs background maintenance tasks on a cron schedule.
package jobs

import (
	"fmt"
	"time"

	"geodrop/internal/repo/persistent"
	"geodrop/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Sweeper hard-deletes locations whose auto-delete deadline has passed.
type Sweeper struct {
	cron         *cron.Cron
	locationRepo persistent.LocationRepository
	interval     time.Duration
	logger       *logger.Logger
}

func NewSweeper(locationRepo persistent.LocationRepository, intervalMinutes int, logger *logger.Logger) *Sweeper {
	if intervalMinutes <= 0 {
		intervalMinutes = 5
	}
	return &Sweeper{
		cron:         cron.New(),
		locationRepo: locationRepo,
		interval:     time.Duration(intervalMinutes) * time.Minute,
		logger:       logger,
	}
}

func (s *Sweeper) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return fmt.Errorf("failed to schedule sweeper: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Location sweeper started, interval %s", s.interval)
	return nil
}

// Stop halts the schedule and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Location sweeper stopped")
}

func (s *Sweeper) sweep() {
	deleted, err := s.locationRepo.DeleteExpired(time.Now())
	if err != nil {
		s.logger.Error("Sweep failed: %v", err)
		return
	}

	if deleted > 0 {
		s.logger.Info("Swept %d expired locations", deleted)
	}
}
