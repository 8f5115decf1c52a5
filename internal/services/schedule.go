package services

import (
	"time"

	"github.com/bilibuddies/bilibuddies/internal/models"
)

// EffectiveSchedule picks the schedule version that governed the given day:
// the one whose interval contains the day. The non-overlap invariant makes
// that version unique, but ties are still broken by the latest
// EffectiveFrom and then CreatedAt as a defensive measure. Returns false
// when no version covers the day; callers treat that as "not applicable",
// not as "not scheduled".
func EffectiveSchedule(versions []models.Schedule, day time.Time) (models.Schedule, bool) {
	var winner models.Schedule
	found := false
	for _, version := range versions {
		if !version.Covers(day) {
			continue
		}
		if !found || laterVersion(version, winner) {
			winner = version
			found = true
		}
	}
	return winner, found
}

func laterVersion(candidate models.Schedule, current models.Schedule) bool {
	if !candidate.EffectiveFrom.Equal(current.EffectiveFrom) {
		return candidate.EffectiveFrom.After(current.EffectiveFrom)
	}
	return candidate.CreatedAt.After(current.CreatedAt)
}

// CurrentSchedule returns the open-ended version, if any.
func CurrentSchedule(versions []models.Schedule) (models.Schedule, bool) {
	var winner models.Schedule
	found := false
	for _, version := range versions {
		if version.EffectiveTo != nil {
			continue
		}
		if !found || laterVersion(version, winner) {
			winner = version
			found = true
		}
	}
	return winner, found
}
