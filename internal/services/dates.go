package services

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// Calendar days cross every boundary in this package as UTC midnight
// time.Time values and are serialized as plain YYYY-MM-DD strings. No
// other day representation is allowed in.

const dayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDay(value string) (time.Time, error) {
	day, err := time.ParseInLocation(dayLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, value)
	}
	return day, nil
}

// FormatDay renders the UTC calendar day of the given instant.
func FormatDay(value time.Time) string {
	return value.UTC().Format(dayLayout)
}

// TruncateToDay drops the time-of-day component, keeping the UTC calendar day.
func TruncateToDay(value time.Time) time.Time {
	year, month, dayOfMonth := value.UTC().Date()
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a day by the given number of calendar days.
func AddDays(day time.Time, days int) time.Time {
	return day.AddDate(0, 0, days)
}

// DaysBetween returns the number of calendar days from one day to another,
// negative when to precedes from. UTC days are uniformly 24h, so the
// division is exact.
func DaysBetween(from time.Time, to time.Time) int {
	delta := TruncateToDay(to).Sub(TruncateToDay(from))
	return int(delta / (24 * time.Hour))
}

// Days yields every calendar day from start through end inclusive, in
// ascending order. The sequence is lazy, finite and restartable; an
// inverted range yields nothing.
func Days(start time.Time, end time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for day := TruncateToDay(start); !day.After(TruncateToDay(end)); day = day.AddDate(0, 0, 1) {
			if !yield(day) {
				return
			}
		}
	}
}

// DaysReverse yields the same range as Days, most recent day first.
func DaysReverse(start time.Time, end time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for day := TruncateToDay(end); !day.Before(TruncateToDay(start)); day = day.AddDate(0, 0, -1) {
			if !yield(day) {
				return
			}
		}
	}
}
