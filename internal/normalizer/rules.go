package normalizer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	missingEducation = "unknown"
	dateLayout       = "2006-01-02"
)

// NormalizeJob drops every "." and turns every "-" into "_".
func NormalizeJob(job string) string {
	job = strings.ReplaceAll(job, ".", "")
	return strings.ReplaceAll(job, "-", "_")
}

// NormalizeEducation turns every "." into "_" and returns nil for a missing
// value. The "unknown" check runs after substitution.
func NormalizeEducation(education string) *string {
	education = strings.ReplaceAll(education, ".", "_")
	if education == missingEducation || education == "" {
		return nil
	}

	return &education
}

// Flag returns 1 when value is exactly match and 0 otherwise.
func Flag(value, match string) int {
	if value == match {
		return 1
	}

	return 0
}

// ParseDay reads a day-of-month cell written as an integer, optionally
// with a trailing ".0" as in "15.0".
func ParseDay(s string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSuffix(s, ".0"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}

	return day, nil
}

// DeriveLastContactDate combines a day of month and a month abbreviation
// ("jan", "Feb", ...) with assumedYear into a YYYY-MM-DD string.
// Impossible dates such as 31 feb are rejected.
func DeriveLastContactDate(day int, monthAbbrev string, assumedYear int) (string, error) {
	raw := fmt.Sprintf("%d %s %04d", day, strings.TrimSpace(monthAbbrev), assumedYear)

	t, err := time.Parse("2 Jan 2006", raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidDate, raw, err)
	}

	return t.Format(dateLayout), nil
}
