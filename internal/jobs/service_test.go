package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmate/listing-service/internal/jobs"
	"jobmate/listing-service/internal/jobs/jobstest"
	"jobmate/listing-service/internal/logging"
	"jobmate/listing-service/internal/model"
)

func TestService_ListJobs(t *testing.T) {
	store := &jobstest.Store{Records: []model.JobRecord{
		{ID: 2, PostedAt: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), SalaryCurrency: "USD"},
		{ID: 1, PostedAt: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), SalaryCurrency: "USD"},
	}}
	svc := jobs.NewService(store, nil, logging.Discard())

	views, err := svc.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "2", views[0].ID)
	assert.Equal(t, "1", views[1].ID)
	assert.NotNil(t, views[0].Tags)
}

func TestService_ListJobs_StoreError(t *testing.T) {
	store := &jobstest.Store{ListErr: errors.New("relation \"jobs\" does not exist")}
	svc := jobs.NewService(store, nil, logging.Discard())

	_, err := svc.ListJobs(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ListErr)
}

func TestService_Seed_WritesFixturesAndPublishes(t *testing.T) {
	store := &jobstest.Store{}
	pub := &jobstest.Publisher{}
	svc := jobs.NewService(store, pub, logging.Discard())

	n, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(jobs.Fixtures), n)
	assert.Equal(t, jobs.Fixtures, store.Seeded)

	require.Len(t, pub.Events, 1)
	assert.Equal(t, jobs.SeededChannel, pub.Events[0].Channel)
	event, ok := pub.Events[0].Payload.(jobs.SeededEvent)
	require.True(t, ok, "payload type %T", pub.Events[0].Payload)
	assert.Equal(t, "EVENT_JOBS_SEEDED", event.Type)
	assert.Equal(t, n, event.Count)
	_, err = time.Parse(time.RFC3339, event.At)
	assert.NoError(t, err)
}

func TestService_Seed_PublishFailureIsNotFatal(t *testing.T) {
	store := &jobstest.Store{}
	pub := &jobstest.Publisher{Err: errors.New("redis down")}
	svc := jobs.NewService(store, pub, logging.Discard())

	n, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(jobs.Fixtures), n)
}

func TestService_Seed_StoreErrorSkipsPublish(t *testing.T) {
	store := &jobstest.Store{SeedErr: errors.New("permission denied")}
	pub := &jobstest.Publisher{}
	svc := jobs.NewService(store, pub, logging.Discard())

	_, err := svc.Seed(context.Background())
	require.Error(t, err)
	assert.Empty(t, pub.Events)
}

func TestFixtures(t *testing.T) {
	require.Len(t, jobs.Fixtures, 12)

	currencies := map[string]int{}
	for _, j := range jobs.Fixtures {
		assert.NotEmpty(t, j.Title)
		assert.NotEmpty(t, j.Company)
		assert.NotEmpty(t, j.Region)
		assert.NotEmpty(t, j.Category)
		assert.NotEmpty(t, j.Type)
		assert.NotEmpty(t, j.ShortDescription)
		assert.NotEmpty(t, j.Description)
		assert.NotEmpty(t, j.Tags)
		require.NotNil(t, j.SalaryMin, j.Title)
		require.NotNil(t, j.SalaryMax, j.Title)
		assert.LessOrEqual(t, *j.SalaryMin, *j.SalaryMax, j.Title)
		currencies[j.SalaryCurrency]++
	}
	assert.Equal(t, map[string]int{"USD": 11, "PEN": 1}, currencies)
}

func TestService_PingDelegatesToStore(t *testing.T) {
	store := &jobstest.Store{}
	svc := jobs.NewService(store, nil, logging.Discard())
	assert.NoError(t, svc.Ping(context.Background()))

	store.PingErr = errors.New("connection refused")
	assert.ErrorIs(t, svc.Ping(context.Background()), store.PingErr)
}
