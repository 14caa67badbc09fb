package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"jobmate/listing-service/internal/model"
)

// SeededChannel is the Redis channel announcing a completed seed.
const SeededChannel = "EVENT_JOBS_SEEDED"

// SeededEvent is the payload published on SeededChannel.
type SeededEvent struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	At    string `json:"at"`
}

// EventPublisher delivers a JSON payload to a channel.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}

// Service wires the store, the transform and event publishing together.
// It has no dependency on HTTP; the api and scheduler packages share it.
type Service struct {
	store    Store
	events   EventPublisher
	fixtures []model.SeedJob
	log      *logrus.Entry
	now      func() time.Time
}

// NewService returns a Service seeding Fixtures. events may be nil.
func NewService(store Store, events EventPublisher, log *logrus.Entry) *Service {
	return &Service{
		store:    store,
		events:   events,
		fixtures: Fixtures,
		log:      log,
		now:      time.Now,
	}
}

// ListJobs returns the API view of every job, newest first.
func (s *Service) ListJobs(ctx context.Context) ([]model.JobView, error) {
	records, err := s.store.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return TransformAll(records), nil
}

// Seed resets the jobs table to the fixture set and announces it.
// A failed announcement is logged and does not fail the seed.
func (s *Service) Seed(ctx context.Context) (int, error) {
	n, err := s.store.Seed(ctx, s.fixtures)
	if err != nil {
		return 0, fmt.Errorf("seed jobs: %w", err)
	}

	if s.events != nil {
		event := SeededEvent{
			Type:  SeededChannel,
			Count: n,
			At:    s.now().UTC().Format(time.RFC3339),
		}
		if err := s.events.Publish(ctx, SeededChannel, event); err != nil {
			s.log.WithError(err).Warnf("publish %s failed", SeededChannel)
		}
	}

	return n, nil
}

// Ping checks the data source is reachable. The startup connector retries through it.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
