package models

import "time"

// Schedule is one effective-dated version of a track's weekly recurrence
// rule. Versions are append-only: updating a schedule closes the previous
// interval instead of mutating it, so historical queries can answer "was
// this scheduled on day D" as of the state at D. For a given track the
// intervals never overlap and at most one has a nil EffectiveTo.
type Schedule struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	TrackID       string     `gorm:"not null;index:idx_schedules_track_from" json:"trackId"`
	UserID        string     `gorm:"not null" json:"userId"`
	Monday        bool       `gorm:"not null;default:false" json:"monday"`
	Tuesday       bool       `gorm:"not null;default:false" json:"tuesday"`
	Wednesday     bool       `gorm:"not null;default:false" json:"wednesday"`
	Thursday      bool       `gorm:"not null;default:false" json:"thursday"`
	Friday        bool       `gorm:"not null;default:false" json:"friday"`
	Saturday      bool       `gorm:"not null;default:false" json:"saturday"`
	Sunday        bool       `gorm:"not null;default:false" json:"sunday"`
	EffectiveFrom time.Time  `gorm:"type:date;not null;index:idx_schedules_track_from" json:"effectiveFrom"`
	EffectiveTo   *time.Time `gorm:"type:date" json:"effectiveTo"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// On reports whether the schedule expects the track on the given weekday.
func (schedule *Schedule) On(weekday time.Weekday) bool {
	switch weekday {
	case time.Monday:
		return schedule.Monday
	case time.Tuesday:
		return schedule.Tuesday
	case time.Wednesday:
		return schedule.Wednesday
	case time.Thursday:
		return schedule.Thursday
	case time.Friday:
		return schedule.Friday
	case time.Saturday:
		return schedule.Saturday
	case time.Sunday:
		return schedule.Sunday
	}
	return false
}

// Covers reports whether the version's interval contains the given day.
func (schedule *Schedule) Covers(day time.Time) bool {
	if schedule.EffectiveFrom.After(day) {
		return false
	}
	return schedule.EffectiveTo == nil || !schedule.EffectiveTo.Before(day)
}
