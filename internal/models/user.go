package models

import "time"

const (
	CheckMarkCheck = "check"
	CheckMarkHeart = "heart"
	CheckMarkStar  = "star"
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Username     *string   `gorm:"uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	UseMetric    bool      `gorm:"not null;default:true" json:"useMetric"`
	CheckMark    string    `gorm:"not null;default:check" json:"checkMark"`
	Image        string    `json:"image"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Onboarded reports whether the user has picked a username. Accounts exist
// from first sign-in, but stay unusable for social features until then.
func (user *User) Onboarded() bool {
	return user.Username != nil && *user.Username != ""
}

func IsValidCheckMark(value string) bool {
	switch value {
	case CheckMarkCheck, CheckMarkHeart, CheckMarkStar:
		return true
	}
	return false
}
