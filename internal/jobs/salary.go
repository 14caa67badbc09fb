package jobs

import "github.com/dustin/go-humanize"

// rangeSeparator is an en dash (U+2013) padded with single spaces.
const rangeSeparator = " – "

// FormatSalaryRange renders the salary bounds of a posting, e.g.
// "$4,000 – $5,500", "PEN 2,800 – PEN 3,800" or "$100,000".
// It returns nil when neither bound is present.
//
// USD uses a bare "$" prefix; any other code is written out followed by a
// space. The prefix is repeated before each bound. Fractions are truncated.
func FormatSalaryRange(lo, hi *float64, currency string) *string {
	if lo == nil && hi == nil {
		return nil
	}

	prefix := currency + " "
	if currency == "USD" {
		prefix = "$"
	}

	var s string
	switch {
	case lo != nil && hi != nil:
		s = prefix + wholeUnits(*lo) + rangeSeparator + prefix + wholeUnits(*hi)
	case lo != nil:
		s = prefix + wholeUnits(*lo)
	default:
		s = prefix + wholeUnits(*hi)
	}
	return &s
}

// wholeUnits groups thousands with commas after dropping the fraction.
func wholeUnits(v float64) string {
	return humanize.Comma(int64(v))
}
