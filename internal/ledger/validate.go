package ledger

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	apperrors "theark/internal/errors"
)

// DateLayout is the only accepted date text layout (DD.MM.YYYY).
const DateLayout = "02.01.2006"

var datePattern = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`)

// ParseDate parses a strict DD.MM.YYYY date. The day, month and year are
// rebuilt into a calendar date and must round-trip exactly, so "31.02.2026"
// is rejected instead of rolling over into March.
func ParseDate(text string) (time.Time, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return time.Time{}, apperrors.ErrEmptyInput
	}

	m := datePattern.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, apperrors.ErrBadFormat
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 {
		return time.Time{}, apperrors.ErrBadMonth
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, apperrors.ErrBadDate
	}
	return d, nil
}

// FormatDate renders d as DD.MM.YYYY.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// PeriodKey returns the zero-indexed calendar month of d, clamped to 0..11.
func PeriodKey(d time.Time) int {
	return clampPeriod(int(d.Month()) - 1)
}

// ValidPeriod reports whether key is a period key (0..11).
func ValidPeriod(key int) bool {
	return key >= 0 && key <= 11
}

func clampPeriod(key int) int {
	return max(0, min(11, key))
}
