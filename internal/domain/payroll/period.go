package payroll

import (
	"fmt"
	"time"
)

const periodLayout = "2006-01"

// ParsePeriod resolves a "YYYY-MM" key into the half-open month window
// [start, end). December rolls over into January of the next year.
func ParsePeriod(key string) (start, end time.Time, err error) {
	parsed, parseErr := time.Parse(periodLayout, key)
	if parseErr != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, key)
	}
	start = time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end, nil
}
