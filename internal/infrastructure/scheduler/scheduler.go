// Package scheduler runs the nightly overdue sweep.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dentara/dentara/internal/application/usecase"
)

const sweepTimeout = 5 * time.Minute

// Scheduler owns the cron runner. One job: flip past-due open
// receivables and payables to overdue across all clinics.
type Scheduler struct {
	cron    *cron.Cron
	overdue *usecase.MarkOverdueUseCase
	logger  *slog.Logger
}

func New(overdue *usecase.MarkOverdueUseCase, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		overdue: overdue,
		logger:  logger,
	}
}

// Start registers the overdue sweep on the given cron expression and
// starts the runner.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, s.runOverdueSweep)
	if err != nil {
		return fmt.Errorf("schedule overdue sweep: %w", err)
	}
	s.cron.Start()
	s.logger.Info("scheduler started", "overdue_cron", spec)
	return nil
}

// Stop halts the runner and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runOverdueSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	receivables, payables, err := s.overdue.Execute(ctx)
	if err != nil {
		s.logger.Error("overdue sweep failed", "error", err)
		return
	}
	s.logger.Info("overdue sweep finished",
		"receivables", receivables,
		"payables", payables,
	)
}
