package db

import (
	"github.com/bilibuddies/bilibuddies/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	database *gorm.DB
}

func NewFollowRepository(database *gorm.DB) *FollowRepository {
	return &FollowRepository{database: database}
}

// CountEdges counts how many of the given following IDs the follower has an
// edge to. The access gate compares this against the number of distinct
// targets, so one query answers the whole membership check.
func (repo *FollowRepository) CountEdges(followerID string, followingIDs []string) (int64, error) {
	if len(followingIDs) == 0 {
		return 0, nil
	}
	var matched int64
	if err := repo.database.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id IN ?", followerID, followingIDs).
		Count(&matched).Error; err != nil {
		return 0, err
	}
	return matched, nil
}

func (repo *FollowRepository) Create(follow *models.Follow) error {
	return repo.database.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error
}

func (repo *FollowRepository) Delete(followerID string, followingID string) error {
	return repo.database.
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error
}
