package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StreakResetter abstracts the goal store's streak maintenance entry point.
type StreakResetter interface {
	ResetIdleStreaks(ctx context.Context) error
}

// SweeperConfig controls the streak maintenance schedule.
type SweeperConfig struct {
	// Schedule is a cron expression; defaults to five past midnight.
	Schedule string
	Timeout  time.Duration
}

// StreakSweeper zeroes stale goal streaks on a daily schedule so that a
// missed day is reflected the next morning rather than on the next mutation.
type StreakSweeper struct {
	goals  StreakResetter
	logger *zap.Logger
	cron   *cron.Cron
	cfg    SweeperConfig
}

func NewStreakSweeper(goals StreakResetter, logger *zap.Logger, cfg SweeperConfig) *StreakSweeper {
	if cfg.Schedule == "" {
		cfg.Schedule = "5 0 * * *"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &StreakSweeper{
		goals:  goals,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(),
	}

	_, _ = s.cron.AddFunc(cfg.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()
		if err := s.Sweep(ctx); err != nil {
			s.logger.Error("streak sweep failed", zap.Error(err))
		}
	})

	return s
}

// Start launches the cron scheduler.
func (s *StreakSweeper) Start() {
	if s == nil || s.cron == nil {
		return
	}
	s.cron.Start()
	s.logger.Info("streak sweeper started", zap.String("schedule", s.cfg.Schedule))
}

// Stop gracefully stops the scheduler.
func (s *StreakSweeper) Stop(ctx context.Context) {
	if s == nil || s.cron == nil {
		return
	}
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	s.logger.Info("streak sweeper stopped")
}

// Sweep runs one maintenance pass synchronously.
func (s *StreakSweeper) Sweep(ctx context.Context) error {
	if s == nil || s.goals == nil {
		return nil
	}
	return s.goals.ResetIdleStreaks(ctx)
}
