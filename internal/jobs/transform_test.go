package jobs_test

import (
	"reflect"
	"regexp"
	"testing"
	"time"

	"jobmate/listing-service/internal/jobs"
	"jobmate/listing-service/internal/model"
)

var postedAtPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)

func sampleRecord() model.JobRecord {
	return model.JobRecord{
		ID:               42,
		Title:            "Senior Frontend Engineer",
		Company:          "BlueWave Tech",
		Region:           "Lima",
		Category:         "Technology",
		Type:             "Full Time",
		PostedAt:         time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		SalaryMin:        f(4000),
		SalaryMax:        f(5500),
		SalaryCurrency:   "USD",
		ShortDescription: "Lead frontend.",
		Description:      "Full description.",
		Tags:             []string{"React", "TypeScript"},
	}
}

func TestTransform_Fields(t *testing.T) {
	v := jobs.Transform(sampleRecord())

	want := model.JobView{
		ID:               "42",
		Title:            "Senior Frontend Engineer",
		Company:          "BlueWave Tech",
		Region:           "Lima",
		Category:         "Technology",
		Type:             "Full Time",
		PostedAt:         "2025-01-10T10:00:00.000Z",
		ShortDescription: "Lead frontend.",
		Description:      "Full description.",
		Tags:             []string{"React", "TypeScript"},
	}
	if v.SalaryRange == nil || *v.SalaryRange != "$4,000 – $5,500" {
		t.Errorf("SalaryRange = %v, want $4,000 – $5,500", v.SalaryRange)
	}
	v.SalaryRange = nil
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Transform() = %+v\nwant %+v", v, want)
	}
}

func TestTransform_PostedAtIsUTCWithMillis(t *testing.T) {
	lima := time.FixedZone("PET", -5*60*60)
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC), "2025-01-10T10:00:00.000Z"},
		{time.Date(2025, 1, 10, 5, 0, 0, 0, lima), "2025-01-10T10:00:00.000Z"},
		{time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC), "2024-12-31T23:59:59.123Z"},
		{time.Date(2025, 3, 1, 0, 0, 0, 7_000_000, time.UTC), "2025-03-01T00:00:00.007Z"},
	}
	for _, c := range cases {
		r := sampleRecord()
		r.PostedAt = c.in
		got := jobs.Transform(r).PostedAt
		if got != c.want {
			t.Errorf("PostedAt(%v) = %q, want %q", c.in, got, c.want)
		}
		if !postedAtPattern.MatchString(got) {
			t.Errorf("PostedAt %q does not match ISO-8601 millisecond pattern", got)
		}
	}
}

func TestTransform_NilTagsBecomeEmpty(t *testing.T) {
	r := sampleRecord()
	r.Tags = nil

	v := jobs.Transform(r)
	if v.Tags == nil {
		t.Fatal("Tags = nil, want empty slice")
	}
	if len(v.Tags) != 0 {
		t.Errorf("Tags = %v, want []", v.Tags)
	}
}

func TestTransform_TagsKeepOrderAndDuplicates(t *testing.T) {
	r := sampleRecord()
	r.Tags = []string{"SEO", "B2B", "SEO"}

	v := jobs.Transform(r)
	if !reflect.DeepEqual(v.Tags, []string{"SEO", "B2B", "SEO"}) {
		t.Errorf("Tags = %v", v.Tags)
	}

	// The view must not alias the record.
	v.Tags[0] = "changed"
	if r.Tags[0] != "SEO" {
		t.Error("mutating the view changed the record's tags")
	}
}

func TestTransform_NoSalary(t *testing.T) {
	r := sampleRecord()
	r.SalaryMin, r.SalaryMax = nil, nil

	if v := jobs.Transform(r); v.SalaryRange != nil {
		t.Errorf("SalaryRange = %q, want nil", *v.SalaryRange)
	}
}

func TestTransform_Idempotent(t *testing.T) {
	r := sampleRecord()
	a, b := jobs.Transform(r), jobs.Transform(r)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated Transform differs:\n%+v\n%+v", a, b)
	}
	if a.ID != "42" {
		t.Errorf("ID = %q, want 42", a.ID)
	}
}

func TestTransformAll_PreservesOrder(t *testing.T) {
	ids := []int64{9, 3, 27, 1, 1000000}
	records := make([]model.JobRecord, 0, len(ids))
	for _, id := range ids {
		r := sampleRecord()
		r.ID = id
		records = append(records, r)
	}

	views := jobs.TransformAll(records)
	want := []string{"9", "3", "27", "1", "1000000"}
	if len(views) != len(want) {
		t.Fatalf("len = %d, want %d", len(views), len(want))
	}
	for i, v := range views {
		if v.ID != want[i] {
			t.Errorf("views[%d].ID = %q, want %q", i, v.ID, want[i])
		}
	}
}

func TestTransformAll_EmptyIsNotNil(t *testing.T) {
	if views := jobs.TransformAll(nil); views == nil {
		t.Error("TransformAll(nil) = nil, want empty slice")
	}
}
