package services

import (
	"errors"
	"testing"

	"github.com/bilibuddies/bilibuddies/internal/models"
)

type stubTrackRepository struct {
	byID     map[string]models.Track
	owned    []models.Track
	upserted *models.Track
	version  *models.Schedule
}

func (stub *stubTrackRepository) FindByID(trackID string) (models.Track, bool, error) {
	track, found := stub.byID[trackID]
	return track, found, nil
}

func (stub *stubTrackRepository) ListByOwner(userID string) ([]models.Track, error) {
	return stub.owned, nil
}

func (stub *stubTrackRepository) UpsertWithSchedule(track *models.Track, newSchedule *models.Schedule) error {
	stub.upserted = track
	stub.version = newSchedule
	if stub.byID == nil {
		stub.byID = make(map[string]models.Track)
	}
	stub.byID[track.ID] = *track
	return nil
}

func oneSchedule(t *testing.T, from string) []ScheduleInput {
	t.Helper()
	return []ScheduleInput{{
		EffectiveFrom: mustParseDay(t, from),
		Monday:        true,
		Wednesday:     true,
		Friday:        true,
	}}
}

func TestTrackUpsertValidation(t *testing.T) {
	tests := []struct {
		name  string
		input TrackUpsertInput
	}{
		{
			name:  "no schedule version",
			input: TrackUpsertInput{ID: "track-1", Name: "gym"},
		},
		{
			name: "two schedule versions",
			input: TrackUpsertInput{ID: "track-1", Name: "gym", Schedules: []ScheduleInput{{}, {}}},
		},
		{
			name:  "blank name",
			input: TrackUpsertInput{ID: "track-1", Name: "   ", Schedules: oneSchedule(t, "2024-02-01")},
		},
		{
			name:  "bad visibility",
			input: TrackUpsertInput{ID: "track-1", Name: "gym", Visibility: "Hidden", Schedules: oneSchedule(t, "2024-02-01")},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := &stubTrackRepository{}
			service := NewTrackService(NewFollowPolicy(&stubFollowCounter{}), repository)

			_, err := service.Upsert("owner", testCase.input)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if repository.upserted != nil {
				t.Fatal("invalid input must not reach the repository")
			}
		})
	}
}

func TestTrackUpsertCreates(t *testing.T) {
	repository := &stubTrackRepository{}
	service := NewTrackService(NewFollowPolicy(&stubFollowCounter{}), repository)

	view, err := service.Upsert("owner", TrackUpsertInput{
		ID:        "track-1",
		Name:      "  gym  ",
		Schedules: oneSchedule(t, "2024-02-01"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Track.Name != "gym" {
		t.Fatalf("name = %q, expected trimmed", view.Track.Name)
	}
	if view.Track.Visibility != models.VisibilityPublic {
		t.Fatalf("visibility = %q, expected default Public", view.Track.Visibility)
	}
	if view.Current == nil {
		t.Fatal("expected the new version as current schedule")
	}
	if !view.Current.Monday || view.Current.Tuesday {
		t.Fatalf("schedule days wrong: %+v", view.Current)
	}
	if FormatDay(view.Current.EffectiveFrom) != "2024-02-01" {
		t.Fatalf("effectiveFrom = %s", FormatDay(view.Current.EffectiveFrom))
	}
	if repository.version == nil || repository.version.ID == "" {
		t.Fatal("expected a generated schedule version id")
	}
}

func TestTrackUpsertRejectsForeignTrack(t *testing.T) {
	repository := &stubTrackRepository{byID: map[string]models.Track{
		"track-1": {ID: "track-1", UserID: "owner", Name: "gym"},
	}}
	service := NewTrackService(NewFollowPolicy(&stubFollowCounter{}), repository)

	_, err := service.Upsert("intruder", TrackUpsertInput{
		ID:        "track-1",
		Name:      "hijacked",
		Schedules: oneSchedule(t, "2024-02-01"),
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if repository.upserted != nil {
		t.Fatal("foreign upsert must not reach the repository")
	}
}

func TestTrackListFiltersAndResolvesCurrent(t *testing.T) {
	closedEnd := mustParseDay(t, "2024-02-07")
	repository := &stubTrackRepository{owned: []models.Track{
		{
			ID: "track-pub", UserID: "owner", Name: "gym", Visibility: models.VisibilityPublic,
			Schedules: []models.Schedule{
				{ID: "old", TrackID: "track-pub", EffectiveFrom: mustParseDay(t, "2024-01-01"), EffectiveTo: &closedEnd},
				{ID: "open", TrackID: "track-pub", EffectiveFrom: mustParseDay(t, "2024-02-08")},
			},
		},
		{ID: "track-priv", UserID: "owner", Name: "therapy", Visibility: models.VisibilityPrivate},
	}}
	service := NewTrackService(NewFollowPolicy(&stubFollowCounter{matched: 1}), repository)

	views, err := service.List("viewer", "owner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 visible track, got %d", len(views))
	}
	if views[0].Track.ID != "track-pub" {
		t.Fatalf("got track %s", views[0].Track.ID)
	}
	if views[0].Current == nil || views[0].Current.ID != "open" {
		t.Fatalf("current = %+v, expected open version", views[0].Current)
	}
}

func TestTrackListSeesOwnPrivateTracks(t *testing.T) {
	repository := &stubTrackRepository{owned: []models.Track{
		{ID: "track-priv", UserID: "owner", Name: "therapy", Visibility: models.VisibilityPrivate},
	}}
	service := NewTrackService(NewFollowPolicy(&stubFollowCounter{}), repository)

	views, err := service.List("owner", "owner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("owner should see their private track, got %d", len(views))
	}
}

func TestTrackListGated(t *testing.T) {
	service := NewTrackService(NewFollowPolicy(&stubFollowCounter{matched: 0}), &stubTrackRepository{})

	if _, err := service.List("viewer", "stranger"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
