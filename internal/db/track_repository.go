package db

import (
	"time"

	"github.com/bilibuddies/bilibuddies/internal/models"
	"gorm.io/gorm"
)

type TrackRepository struct {
	database *gorm.DB
}

func NewTrackRepository(database *gorm.DB) *TrackRepository {
	return &TrackRepository{database: database}
}

func (repo *TrackRepository) FindByID(trackID string) (models.Track, bool, error) {
	var track models.Track
	result := repo.database.Where("id = ?", trackID).Limit(1).Find(&track)
	if result.Error != nil {
		return models.Track{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Track{}, false, nil
	}
	return track, true, nil
}

// ListByOwner returns a user's tracks, newest first, with all schedule
// versions preloaded newest interval first.
func (repo *TrackRepository) ListByOwner(userID string) ([]models.Track, error) {
	return repo.listTracks(repo.database.Where("user_id = ?", userID))
}

func (repo *TrackRepository) ListByOwners(userIDs []string) ([]models.Track, error) {
	if len(userIDs) == 0 {
		return []models.Track{}, nil
	}
	return repo.listTracks(repo.database.Where("user_id IN ?", userIDs))
}

func (repo *TrackRepository) listTracks(query *gorm.DB) ([]models.Track, error) {
	tracks := make([]models.Track, 0)
	if err := query.
		Preload("Schedules", func(db *gorm.DB) *gorm.DB {
			return db.Order("effective_from DESC, created_at DESC")
		}).
		Order("created_at DESC, id DESC").
		Find(&tracks).Error; err != nil {
		return nil, err
	}
	return tracks, nil
}

// ListSchedulesForTracks returns every schedule version of the given tracks
// whose interval intersects [windowStart, windowEnd].
func (repo *TrackRepository) ListSchedulesForTracks(trackIDs []string, windowStart time.Time, windowEnd time.Time) ([]models.Schedule, error) {
	if len(trackIDs) == 0 {
		return []models.Schedule{}, nil
	}
	schedules := make([]models.Schedule, 0)
	if err := repo.database.
		Where("track_id IN ? AND effective_from <= ? AND (effective_to IS NULL OR effective_to >= ?)", trackIDs, windowEnd, windowStart).
		Order("effective_from ASC, created_at ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// UpsertWithSchedule writes a track together with a new schedule version
// effective from newSchedule.EffectiveFrom (D). The whole supersede sequence
// runs in one transaction so a reader never observes zero or two open
// intervals: versions starting on or after D never took effect in the
// surviving timeline and are deleted, every other version still covering D
// is truncated to D-1, then the new open-ended version is inserted.
func (repo *TrackRepository) UpsertWithSchedule(track *models.Track, newSchedule *models.Schedule) error {
	effectiveFrom := newSchedule.EffectiveFrom
	dayBefore := effectiveFrom.AddDate(0, 0, -1)

	return repo.database.Transaction(func(tx *gorm.DB) error {
		var existing models.Track
		result := tx.Where("id = ?", track.ID).Limit(1).Find(&existing)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			if err := tx.Create(track).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&models.Track{}).Where("id = ?", track.ID).Updates(map[string]any{
				"name":       track.Name,
				"visibility": track.Visibility,
			}).Error; err != nil {
				return err
			}
		}

		if err := tx.
			Where("track_id = ? AND effective_from >= ?", track.ID, effectiveFrom).
			Delete(&models.Schedule{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Schedule{}).
			Where("track_id = ? AND (effective_to IS NULL OR effective_to >= ?)", track.ID, effectiveFrom).
			Update("effective_to", dayBefore).Error; err != nil {
			return err
		}

		return tx.Create(newSchedule).Error
	})
}
