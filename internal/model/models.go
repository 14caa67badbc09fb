// Package model defines shared data structures for the listing service.
package model

import "time"

// JobRecord mirrors one row of the jobs table.
type JobRecord struct {
	ID               int64
	Title            string
	Company          string
	Region           string
	Category         string
	Type             string
	PostedAt         time.Time
	SalaryMin        *float64 // NULL when the posting has no lower bound
	SalaryMax        *float64 // NULL when the posting has no upper bound
	SalaryCurrency   string
	ShortDescription string
	Description      string
	Tags             []string // nil when the column is NULL
}

// JobView is the JSON shape returned by GET /api/jobs.
// It is derived from exactly one JobRecord and never persisted.
type JobView struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Region           string   `json:"region"`
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	PostedAt         string   `json:"postedAt"`
	SalaryRange      *string  `json:"salaryRange"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	Tags             []string `json:"tags"`
}

// SeedJob is a fixture posting inserted by the seed operation.
// PostedAt is left to the column default.
type SeedJob struct {
	Title            string
	Company          string
	Region           string
	Category         string
	Type             string
	SalaryMin        *float64
	SalaryMax        *float64
	SalaryCurrency   string
	ShortDescription string
	Description      string
	Tags             []string
}
