// Package scheduler wires up the optional cron job that periodically resets
// the jobs table to the fixture set.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Seeder resets the jobs table.
type Seeder interface {
	Seed(ctx context.Context) (int, error)
}

// Scheduler wraps robfig/cron and manages the reseed loop.
type Scheduler struct {
	cron   *cron.Cron
	seeder Seeder
	spec   string // cron spec, e.g. "@every 24h"
	log    *logrus.Entry
}

// New creates a Scheduler firing on spec. Overlapping runs are skipped.
func New(seeder Seeder, spec string, log *logrus.Entry) *Scheduler {
	logger := cron.PrintfLogger(log)
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		seeder: seeder,
		spec:   spec,
		log:    log,
	}
}

// Start registers the job and starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc(%q): %w", s.spec, err)
	}

	s.cron.Start()
	s.log.WithField("spec", s.spec).Info("Reseed cron started")
	return nil
}

// Stop halts the scheduler and waits for a running seed to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("Reseed cron stopped")
}

// RunOnce performs a single reseed and logs the outcome.
func (s *Scheduler) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	n, err := s.seeder.Seed(ctx)
	if err != nil {
		s.log.WithField("error", err.Error()).Error("Scheduled reseed failed")
		return
	}
	s.log.WithField("count", n).Info("Scheduled reseed complete")
}
