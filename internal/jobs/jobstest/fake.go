// Package jobstest provides in-memory doubles for the jobs package.
package jobstest

import (
	"context"
	"sync"

	"jobmate/listing-service/internal/model"
)

// Store is an in-memory jobs.Store. Set the *Err fields to force failures.
type Store struct {
	mu sync.Mutex

	Records []model.JobRecord
	Seeded  []model.SeedJob

	PingErr  error
	ListErr  error
	SeedErr  error
	SeedRuns int
}

// Ping implements jobs.Store.
func (s *Store) Ping(context.Context) error { return s.PingErr }

// ListJobs implements jobs.Store. Records are returned as stored.
func (s *Store) ListJobs(context.Context) ([]model.JobRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	out := make([]model.JobRecord, len(s.Records))
	copy(out, s.Records)
	return out, nil
}

// Seed implements jobs.Store.
func (s *Store) Seed(_ context.Context, jobs []model.SeedJob) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SeedRuns++
	if s.SeedErr != nil {
		return 0, s.SeedErr
	}
	s.Seeded = append([]model.SeedJob(nil), jobs...)
	return len(jobs), nil
}

// Published is one captured Publish call.
type Published struct {
	Channel string
	Payload any
}

// Publisher records events instead of sending them.
type Publisher struct {
	mu     sync.Mutex
	Events []Published
	Err    error
}

// Publish implements jobs.EventPublisher.
func (p *Publisher) Publish(_ context.Context, channel string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, Published{Channel: channel, Payload: payload})
	return p.Err
}
