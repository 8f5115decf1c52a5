package services

import (
	"fmt"
	"time"

	"github.com/bilibuddies/bilibuddies/internal/models"
)

type CalendarTrackReader interface {
	ListByOwners(userIDs []string) ([]models.Track, error)
}

type CalendarScheduleReader interface {
	ListSchedulesForTracks(trackIDs []string, windowStart time.Time, windowEnd time.Time) ([]models.Schedule, error)
}

type CalendarStatReader interface {
	ListInRange(userIDs []string, statType string, start time.Time, end time.Time) ([]models.Stat, error)
}

// CalendarEntry is one (day, user, track) cell of the shared calendar:
// whether the track was scheduled that day under the schedule version in
// effect at the time, and the recorded value if any.
type CalendarEntry struct {
	Date      time.Time
	UserID    string
	TrackID   string
	TrackName string
	Scheduled bool
	Value     *float64
}

type CalendarService struct {
	tracks    CalendarTrackReader
	schedules CalendarScheduleReader
	stats     CalendarStatReader
}

func NewCalendarService(tracks CalendarTrackReader, schedules CalendarScheduleReader, stats CalendarStatReader) *CalendarService {
	return &CalendarService{
		tracks:    tracks,
		schedules: schedules,
		stats:     stats,
	}
}

// CalendarView densifies the window into one row per (day, user, track):
// every day in [start, end] is enumerated, the schedule version effective
// on that day decides the scheduled flag, and recorded STAT values are
// left-joined so "scheduled but missing" days still appear. Tracks with no
// schedule interval covering a day produce no row for it. Rows come back
// ordered by date descending, suitable for reverse-chronological paging.
func (service *CalendarService) CalendarView(viewerID string, userIDs []string, start time.Time, end time.Time) ([]CalendarEntry, error) {
	start = TruncateToDay(start)
	end = TruncateToDay(end)
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s is after end %s", ErrValidation, FormatDay(start), FormatDay(end))
	}

	allTracks, err := service.tracks.ListByOwners(userIDs)
	if err != nil {
		return nil, err
	}

	visible := make([]models.Track, 0, len(allTracks))
	trackIDs := make([]string, 0, len(allTracks))
	for _, track := range allTracks {
		if track.UserID != viewerID && track.Visibility != models.VisibilityPublic {
			continue
		}
		visible = append(visible, track)
		trackIDs = append(trackIDs, track.ID)
	}
	if len(visible) == 0 {
		return []CalendarEntry{}, nil
	}

	scheduleRows, err := service.schedules.ListSchedulesForTracks(trackIDs, start, end)
	if err != nil {
		return nil, err
	}
	versionsByTrack := make(map[string][]models.Schedule, len(visible))
	for _, version := range scheduleRows {
		versionsByTrack[version.TrackID] = append(versionsByTrack[version.TrackID], version)
	}

	statRows, err := service.stats.ListInRange(userIDs, models.StatTypeStat, start, end)
	if err != nil {
		return nil, err
	}
	valueByCell := make(map[string]float64, len(statRows))
	for _, row := range statRows {
		valueByCell[cellKey(row.UserID, row.TrackID, row.Date)] = row.Value
	}

	entries := make([]CalendarEntry, 0, len(visible)*(DaysBetween(start, end)+1))
	for day := range DaysReverse(start, end) {
		for _, track := range visible {
			version, covered := EffectiveSchedule(versionsByTrack[track.ID], day)
			if !covered {
				continue
			}

			entry := CalendarEntry{
				Date:      day,
				UserID:    track.UserID,
				TrackID:   track.ID,
				TrackName: track.Name,
				Scheduled: version.On(day.Weekday()),
			}
			if value, recorded := valueByCell[cellKey(track.UserID, track.ID, day)]; recorded {
				recordedValue := value
				entry.Value = &recordedValue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func cellKey(userID string, trackID string, day time.Time) string {
	return userID + "|" + trackID + "|" + FormatDay(day)
}
