package db

import "gorm.io/gorm"

type Repositories struct {
	Users   *UserRepository
	Follows *FollowRepository
	Tracks  *TrackRepository
	Stats   *StatRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(database),
		Follows: NewFollowRepository(database),
		Tracks:  NewTrackRepository(database),
		Stats:   NewStatRepository(database),
	}
}
