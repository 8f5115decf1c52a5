package services

import (
	"errors"
	"testing"
	"time"
)

func mustParseDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := ParseDay(value)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid", value: "2024-02-10"},
		{name: "valid with spaces", value: "  2024-02-10  "},
		{name: "wrong separator", value: "2024/02/10", wantErr: true},
		{name: "time component", value: "2024-02-10T00:00:00Z", wantErr: true},
		{name: "not a date", value: "yesterday", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			day, err := ParseDay(testCase.value)
			if testCase.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", testCase.value)
				}
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if day.Location() != time.UTC {
				t.Fatalf("expected UTC, got %s", day.Location())
			}
			if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 {
				t.Fatalf("expected midnight, got %s", day.Format(time.RFC3339))
			}
		})
	}
}

func TestFormatDayRoundTrip(t *testing.T) {
	day := mustParseDay(t, "2024-02-10")
	if got := FormatDay(day); got != "2024-02-10" {
		t.Fatalf("expected 2024-02-10, got %s", got)
	}

	localized := time.Date(2024, 2, 10, 23, 30, 0, 0, time.FixedZone("UTC+3", 3*3600))
	if got := FormatDay(localized); got != "2024-02-10" {
		t.Fatalf("expected UTC day 2024-02-10 for late-evening UTC+3 instant, got %s", got)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "same day", from: "2024-02-10", to: "2024-02-10", want: 0},
		{name: "forward", from: "2024-02-01", to: "2024-02-10", want: 9},
		{name: "backward", from: "2024-02-10", to: "2024-02-01", want: -9},
		{name: "across month boundary", from: "2024-01-30", to: "2024-02-02", want: 3},
		{name: "across leap day", from: "2024-02-28", to: "2024-03-01", want: 2},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			from := mustParseDay(t, testCase.from)
			to := mustParseDay(t, testCase.to)
			if got := DaysBetween(from, to); got != testCase.want {
				t.Fatalf("DaysBetween(%s, %s) = %d, want %d", testCase.from, testCase.to, got, testCase.want)
			}
		})
	}
}

func TestDaysIteratesInclusiveAscending(t *testing.T) {
	start := mustParseDay(t, "2024-02-08")
	end := mustParseDay(t, "2024-02-10")

	collected := make([]string, 0, 3)
	for day := range Days(start, end) {
		collected = append(collected, FormatDay(day))
	}

	want := []string{"2024-02-08", "2024-02-09", "2024-02-10"}
	if len(collected) != len(want) {
		t.Fatalf("expected %d days, got %v", len(want), collected)
	}
	for index := range want {
		if collected[index] != want[index] {
			t.Fatalf("day %d: expected %s, got %s", index, want[index], collected[index])
		}
	}
}

func TestDaysReverseIteratesDescending(t *testing.T) {
	start := mustParseDay(t, "2024-02-08")
	end := mustParseDay(t, "2024-02-10")

	collected := make([]string, 0, 3)
	for day := range DaysReverse(start, end) {
		collected = append(collected, FormatDay(day))
	}

	want := []string{"2024-02-10", "2024-02-09", "2024-02-08"}
	for index := range want {
		if collected[index] != want[index] {
			t.Fatalf("day %d: expected %s, got %s", index, want[index], collected[index])
		}
	}
}

func TestDaysEmptyOnInvertedRange(t *testing.T) {
	start := mustParseDay(t, "2024-02-10")
	end := mustParseDay(t, "2024-02-08")

	for day := range Days(start, end) {
		t.Fatalf("expected no days, got %s", FormatDay(day))
	}
	for day := range DaysReverse(start, end) {
		t.Fatalf("expected no days in reverse, got %s", FormatDay(day))
	}
}

func TestDaysIsRestartable(t *testing.T) {
	start := mustParseDay(t, "2024-02-01")
	end := mustParseDay(t, "2024-02-03")
	sequence := Days(start, end)

	firstPass := 0
	for range sequence {
		firstPass++
	}
	secondPass := 0
	for range sequence {
		secondPass++
	}
	if firstPass != 3 || secondPass != 3 {
		t.Fatalf("expected both passes to yield 3 days, got %d and %d", firstPass, secondPass)
	}
}
