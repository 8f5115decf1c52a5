package models

import "time"

// Follow is a directed visibility edge: the follower may view the
// followee's public data. Self-edges are never stored; every user is
// implicitly allowed to view themselves.
type Follow struct {
	FollowerID  string    `gorm:"primaryKey" json:"followerId"`
	FollowingID string    `gorm:"primaryKey" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}
