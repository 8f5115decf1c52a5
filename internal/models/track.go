package models

import "time"

const (
	VisibilityPublic  = "Public"
	VisibilityPrivate = "Private"
)

// Track is a named habit or metric owned by a user. Names are unique
// within an owner's track set. Private tracks are visible only to the
// owner; Public tracks are visible to anyone allowed to view the owner.
type Track struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	UserID     string     `gorm:"not null;uniqueIndex:uidx_tracks_owner_name" json:"userId"`
	Name       string     `gorm:"not null;uniqueIndex:uidx_tracks_owner_name" json:"name"`
	Visibility string     `gorm:"not null;default:Public" json:"visibility"`
	Schedules  []Schedule `gorm:"foreignKey:TrackID" json:"-"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func IsValidVisibility(value string) bool {
	return value == VisibilityPublic || value == VisibilityPrivate
}
