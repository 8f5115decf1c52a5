package models

import "time"

const (
	StatTypeStat = "STAT"
	StatTypeGoal = "GOAL"
)

// Stat is one recorded value for (type, user, track, day). At most one row
// exists per key; writes go through an atomic insert-or-update. Value
// semantics depend on the track: 0/1 for habit checks, continuous for
// measurements, 0-10 for mood.
type Stat struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"not null;uniqueIndex:uidx_stats_key" json:"type"`
	UserID    string    `gorm:"not null;uniqueIndex:uidx_stats_key" json:"userId"`
	TrackID   string    `gorm:"not null;uniqueIndex:uidx_stats_key" json:"trackId"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_stats_key" json:"-"`
	Value     float64   `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func IsValidStatType(value string) bool {
	return value == StatTypeStat || value == StatTypeGoal
}
