package jobs

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobmate/listing-service/internal/model"
)

// Store is the data source behind the listing feed.
type Store interface {
	// Ping runs a trivial liveness query.
	Ping(ctx context.Context) error
	// ListJobs returns every row, newest posted_at first.
	ListJobs(ctx context.Context) ([]model.JobRecord, error)
	// Seed creates the table if missing, deletes every row and inserts jobs
	// in order. It returns the number of rows inserted.
	Seed(ctx context.Context, jobs []model.SeedJob) (int, error)
}

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS jobs (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		company TEXT NOT NULL,
		region TEXT NOT NULL,
		category TEXT NOT NULL,
		type TEXT NOT NULL,
		posted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		salary_min NUMERIC(10, 2),
		salary_max NUMERIC(10, 2),
		salary_currency TEXT DEFAULT 'USD',
		short_description TEXT NOT NULL,
		description TEXT NOT NULL,
		tags TEXT[]
	)`

const listJobsSQL = `
	SELECT id, title, company, region, category, type, posted_at,
	       salary_min, salary_max, COALESCE(salary_currency, 'USD'),
	       short_description, description, tags
	FROM jobs
	ORDER BY posted_at DESC, id DESC`

const insertJobSQL = `
	INSERT INTO jobs (title, company, region, category, type,
	                  salary_min, salary_max, salary_currency,
	                  short_description, description, tags)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

// PostgresStore implements Store on a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore returns a Store backed by pool. The caller owns the pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Ping runs SELECT 1.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `SELECT 1`); err != nil {
		return fmt.Errorf("liveness query: %w", err)
	}
	return nil
}

// ListJobs fetches all jobs ordered by posted_at descending. Rows sharing a
// posted_at come out highest id first.
func (s *PostgresStore) ListJobs(ctx context.Context) ([]model.JobRecord, error) {
	rows, err := s.pool.Query(ctx, listJobsSQL)
	if err != nil {
		return nil, fmt.Errorf("listJobs query: %w", err)
	}
	defer rows.Close()

	records := make([]model.JobRecord, 0)
	for rows.Next() {
		var r model.JobRecord
		if err := rows.Scan(
			&r.ID, &r.Title, &r.Company, &r.Region, &r.Category, &r.Type, &r.PostedAt,
			&r.SalaryMin, &r.SalaryMax, &r.SalaryCurrency,
			&r.ShortDescription, &r.Description, &r.Tags,
		); err != nil {
			return nil, fmt.Errorf("listJobs scan: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listJobs rows: %w", err)
	}
	return records, nil
}

// Seed replaces the table contents with jobs inside a single transaction.
func (s *PostgresStore) Seed(ctx context.Context, jobs []model.SeedJob) (int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, createTableSQL); err != nil {
		return 0, fmt.Errorf("seed create table: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM jobs`); err != nil {
		return 0, fmt.Errorf("seed delete: %w", err)
	}

	batch := &pgx.Batch{}
	for _, j := range jobs {
		batch.Queue(insertJobSQL,
			j.Title, j.Company, j.Region, j.Category, j.Type,
			j.SalaryMin, j.SalaryMax, j.SalaryCurrency,
			j.ShortDescription, j.Description, j.Tags,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range jobs {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return 0, fmt.Errorf("seed insert %d (%q): %w", i, jobs[i].Title, err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("seed batch close: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("seed commit: %w", err)
	}
	return len(jobs), nil
}
