// Package jobs implements the job listing feed: the row-to-view transform,
// salary formatting, the Postgres store and the seed fixtures.
package jobs

import (
	"strconv"

	"jobmate/listing-service/internal/model"
)

// postedAtLayout is ISO-8601 with millisecond precision and a literal Z.
const postedAtLayout = "2006-01-02T15:04:05.000Z"

// Transform maps one persisted row to its API representation.
// It is pure: the result depends on r alone.
func Transform(r model.JobRecord) model.JobView {
	tags := make([]string, len(r.Tags))
	copy(tags, r.Tags)

	return model.JobView{
		ID:               strconv.FormatInt(r.ID, 10),
		Title:            r.Title,
		Company:          r.Company,
		Region:           r.Region,
		Category:         r.Category,
		Type:             r.Type,
		PostedAt:         r.PostedAt.UTC().Format(postedAtLayout),
		SalaryRange:      FormatSalaryRange(r.SalaryMin, r.SalaryMax, r.SalaryCurrency),
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		Tags:             tags,
	}
}

// TransformAll applies Transform to each record, preserving order.
// The result is never nil.
func TransformAll(records []model.JobRecord) []model.JobView {
	views := make([]model.JobView, 0, len(records))
	for _, r := range records {
		views = append(views, Transform(r))
	}
	return views
}
