package db

import (
	"time"

	"github.com/bilibuddies/bilibuddies/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatRepository struct {
	database *gorm.DB
}

func NewStatRepository(database *gorm.DB) *StatRepository {
	return &StatRepository{database: database}
}

// Upsert writes the value for (type, user, track, date) as a single
// conditional insert-or-update, so concurrent writers for the same key
// race cleanly at the storage layer with last write winning. The persisted
// row is re-read so callers get the surviving ID and timestamps.
func (repo *StatRepository) Upsert(entry *models.Stat) (models.Stat, error) {
	err := repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "type"},
			{Name: "user_id"},
			{Name: "track_id"},
			{Name: "date"},
		},
		DoUpdates: clause.Assignments(map[string]any{
			"value":      entry.Value,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(entry).Error
	if err != nil {
		return models.Stat{}, err
	}

	var persisted models.Stat
	if err := repo.database.
		Where("type = ? AND user_id = ? AND track_id = ? AND date = ?", entry.Type, entry.UserID, entry.TrackID, entry.Date).
		First(&persisted).Error; err != nil {
		return models.Stat{}, err
	}
	return persisted, nil
}

func (repo *StatRepository) ListInRange(userIDs []string, statType string, start time.Time, end time.Time) ([]models.Stat, error) {
	if len(userIDs) == 0 {
		return []models.Stat{}, nil
	}
	entries := make([]models.Stat, 0)
	if err := repo.database.
		Where("user_id IN ? AND type = ? AND date >= ? AND date <= ?", userIDs, statType, start, end).
		Order("date DESC, created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *StatRepository) ListForUserTrack(userID string, trackID string, statType string) ([]models.Stat, error) {
	entries := make([]models.Stat, 0)
	if err := repo.database.
		Where("user_id = ? AND track_id = ? AND type = ?", userID, trackID, statType).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
