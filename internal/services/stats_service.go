package services

import (
	"fmt"
	"time"

	"github.com/bilibuddies/bilibuddies/internal/models"
	"github.com/google/uuid"
)

type ViewGate interface {
	AssertViewable(viewerID string, targetIDs []string) error
}

type CalendarViewer interface {
	CalendarView(viewerID string, userIDs []string, start time.Time, end time.Time) ([]CalendarEntry, error)
}

type StatWriter interface {
	Upsert(entry *models.Stat) (models.Stat, error)
	ListForUserTrack(userID string, trackID string, statType string) ([]models.Stat, error)
}

type StatTrackReader interface {
	FindByID(trackID string) (models.Track, bool, error)
}

// StatsCell is the value/scheduled pair for one track on one day.
type StatsCell struct {
	Value     *float64 `json:"value"`
	Scheduled bool     `json:"scheduled"`
}

// StatsDay groups the cells of one calendar day by user and track name.
type StatsDay struct {
	Date string                          `json:"date"`
	Data map[string]map[string]StatsCell `json:"data"`
}

// StatsPage is one reverse-chronological window of the shared calendar.
// Results[0] is the cursor day, each following slot one day further into
// the past; NextCursor requests the adjacent older page.
type StatsPage struct {
	Start      string     `json:"start"`
	End        string     `json:"end"`
	NextCursor string     `json:"nextCursor"`
	Results    []StatsDay `json:"results"`
}

type StatsService struct {
	gate     ViewGate
	calendar CalendarViewer
	stats    StatWriter
	tracks   StatTrackReader
}

func NewStatsService(gate ViewGate, calendar CalendarViewer, stats StatWriter, tracks StatTrackReader) *StatsService {
	return &StatsService{
		gate:     gate,
		calendar: calendar,
		stats:    stats,
		tracks:   tracks,
	}
}

// ListStats returns the window of limit days ending at the cursor day,
// gated on visibility of every requested user before any data is touched.
func (service *StatsService) ListStats(viewerID string, followingIDs []string, cursor time.Time, limit int) (StatsPage, error) {
	if limit <= 0 {
		return StatsPage{}, fmt.Errorf("%w: limit must be positive, got %d", ErrValidation, limit)
	}
	if len(followingIDs) == 0 {
		return StatsPage{}, fmt.Errorf("%w: followingIds must not be empty", ErrValidation)
	}
	if err := service.gate.AssertViewable(viewerID, followingIDs); err != nil {
		return StatsPage{}, err
	}

	end := TruncateToDay(cursor)
	start := AddDays(end, -(limit - 1))

	entries, err := service.calendar.CalendarView(viewerID, followingIDs, start, end)
	if err != nil {
		return StatsPage{}, err
	}

	results := make([]StatsDay, limit)
	for offset := range results {
		results[offset] = StatsDay{
			Date: FormatDay(AddDays(end, -offset)),
			Data: make(map[string]map[string]StatsCell),
		}
	}

	for _, entry := range entries {
		offset := DaysBetween(entry.Date, end)
		if offset < 0 || offset >= limit {
			// Date arithmetic bug, not user input.
			return StatsPage{}, fmt.Errorf("%w: entry %s outside window ending %s with limit %d",
				ErrWindowArithmetic, FormatDay(entry.Date), FormatDay(end), limit)
		}

		userCells := results[offset].Data[entry.UserID]
		if userCells == nil {
			userCells = make(map[string]StatsCell)
			results[offset].Data[entry.UserID] = userCells
		}
		userCells[entry.TrackName] = StatsCell{
			Value:     entry.Value,
			Scheduled: entry.Scheduled,
		}
	}

	return StatsPage{
		Start:      FormatDay(start),
		End:        FormatDay(end),
		NextCursor: FormatDay(AddDays(end, -limit)),
		Results:    results,
	}, nil
}

// UpsertStat records a value for the caller's own track on the given day.
// Writes always happen on behalf of the authenticated caller; recording
// against another user's track is rejected.
func (service *StatsService) UpsertStat(userID string, trackID string, day time.Time, value float64, statType string) (models.Stat, error) {
	if !models.IsValidStatType(statType) {
		return models.Stat{}, fmt.Errorf("%w: unknown stat type %q", ErrValidation, statType)
	}

	track, found, err := service.tracks.FindByID(trackID)
	if err != nil {
		return models.Stat{}, err
	}
	if !found {
		return models.Stat{}, fmt.Errorf("%w: track %s", ErrNotFound, trackID)
	}
	if track.UserID != userID {
		return models.Stat{}, ErrUnauthorized
	}

	entry := models.Stat{
		ID:      uuid.NewString(),
		Type:    statType,
		UserID:  userID,
		TrackID: trackID,
		Date:    TruncateToDay(day),
		Value:   value,
	}
	return service.stats.Upsert(&entry)
}

// ListGoals returns the caller's goal values for one of their tracks.
func (service *StatsService) ListGoals(userID string, trackID string) ([]models.Stat, error) {
	track, found, err := service.tracks.FindByID(trackID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: track %s", ErrNotFound, trackID)
	}
	if track.UserID != userID {
		return nil, ErrUnauthorized
	}
	return service.stats.ListForUserTrack(userID, trackID, models.StatTypeGoal)
}
