package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/bilibuddies/bilibuddies/internal/models"
	"github.com/google/uuid"
)

type TrackRepository interface {
	FindByID(trackID string) (models.Track, bool, error)
	ListByOwner(userID string) ([]models.Track, error)
	UpsertWithSchedule(track *models.Track, newSchedule *models.Schedule) error
}

// ScheduleInput is one requested schedule version. Upserts carry exactly one:
// the new version effective from the given day forward.
type ScheduleInput struct {
	EffectiveFrom time.Time
	Monday        bool
	Tuesday       bool
	Wednesday     bool
	Thursday      bool
	Friday        bool
	Saturday      bool
	Sunday        bool
}

type TrackUpsertInput struct {
	ID         string
	Name       string
	Visibility string
	Schedules  []ScheduleInput
}

// TrackWithSchedule pairs a track with its current (open-ended) schedule
// version. Current is nil for a track whose versions have all been closed.
type TrackWithSchedule struct {
	Track   models.Track     `json:"track"`
	Current *models.Schedule `json:"currentSchedule"`
}

type TrackService struct {
	gate   ViewGate
	tracks TrackRepository
}

func NewTrackService(gate ViewGate, tracks TrackRepository) *TrackService {
	return &TrackService{
		gate:   gate,
		tracks: tracks,
	}
}

// Upsert creates or renames a track and installs a new schedule version.
// Validation happens before any mutation; the supersede sequence itself is
// transactional in the repository.
func (service *TrackService) Upsert(userID string, input TrackUpsertInput) (TrackWithSchedule, error) {
	if len(input.Schedules) != 1 {
		return TrackWithSchedule{}, fmt.Errorf("%w: exactly one schedule version is required, got %d", ErrValidation, len(input.Schedules))
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return TrackWithSchedule{}, fmt.Errorf("%w: track name must not be empty", ErrValidation)
	}
	visibility := input.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}
	if !models.IsValidVisibility(visibility) {
		return TrackWithSchedule{}, fmt.Errorf("%w: unknown visibility %q", ErrValidation, input.Visibility)
	}

	existing, found, err := service.tracks.FindByID(input.ID)
	if err != nil {
		return TrackWithSchedule{}, err
	}
	if found && existing.UserID != userID {
		return TrackWithSchedule{}, ErrUnauthorized
	}

	requested := input.Schedules[0]
	track := models.Track{
		ID:         input.ID,
		UserID:     userID,
		Name:       name,
		Visibility: visibility,
	}
	version := models.Schedule{
		ID:            uuid.NewString(),
		TrackID:       input.ID,
		UserID:        userID,
		Monday:        requested.Monday,
		Tuesday:       requested.Tuesday,
		Wednesday:     requested.Wednesday,
		Thursday:      requested.Thursday,
		Friday:        requested.Friday,
		Saturday:      requested.Saturday,
		Sunday:        requested.Sunday,
		EffectiveFrom: TruncateToDay(requested.EffectiveFrom),
	}

	if err := service.tracks.UpsertWithSchedule(&track, &version); err != nil {
		return TrackWithSchedule{}, err
	}

	persisted, found, err := service.tracks.FindByID(input.ID)
	if err != nil {
		return TrackWithSchedule{}, err
	}
	if !found {
		return TrackWithSchedule{}, fmt.Errorf("%w: track %s vanished after upsert", ErrNotFound, input.ID)
	}
	return TrackWithSchedule{Track: persisted, Current: &version}, nil
}

// List returns the tracks of one user visible to the viewer, newest first,
// each with its current schedule version. Private tracks are the owner's
// business only.
func (service *TrackService) List(viewerID string, userID string) ([]TrackWithSchedule, error) {
	if err := service.gate.AssertViewable(viewerID, []string{userID}); err != nil {
		return nil, err
	}

	tracks, err := service.tracks.ListByOwner(userID)
	if err != nil {
		return nil, err
	}

	views := make([]TrackWithSchedule, 0, len(tracks))
	for _, track := range tracks {
		if track.UserID != viewerID && track.Visibility != models.VisibilityPublic {
			continue
		}
		view := TrackWithSchedule{Track: track}
		if current, ok := CurrentSchedule(track.Schedules); ok {
			currentCopy := current
			view.Current = &currentCopy
		}
		views = append(views, view)
	}
	return views, nil
}
