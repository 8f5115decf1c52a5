package cli

import (
	"fmt"
	"time"

	"github.com/bilibuddies/bilibuddies/internal/db"
	"github.com/bilibuddies/bilibuddies/internal/models"
	"github.com/bilibuddies/bilibuddies/internal/security"
	"github.com/bilibuddies/bilibuddies/internal/services"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var seedUsers = []struct {
	Name     string
	Email    string
	Username string
}{
	{Name: "Ada Martin", Email: "ada@example.com", Username: "ada"},
	{Name: "Ben Okafor", Email: "ben@example.com", Username: "ben"},
	{Name: "Cleo Ruiz", Email: "cleo@example.com", Username: "cleo"},
	{Name: "Dev Sharma", Email: "dev@example.com", Username: "dev"},
}

var seedTrackNames = []string{"weight", "mood", "food", "gym"}

// RunSeedCommand populates a database with demo users that all follow each
// other, a standard set of tracks scheduled Mon/Wed/Fri, and a week of
// recorded gym checks, so a fresh install has something to look at.
func RunSeedCommand(dbPath string, logger zerolog.Logger) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	trackService := services.NewTrackService(
		services.NewFollowPolicy(repositories.Follows),
		repositories.Tracks,
	)

	today := services.TruncateToDay(time.Now())
	created := make([]models.User, 0, len(seedUsers))

	for _, seed := range seedUsers {
		if existing, found, err := repositories.Users.FindByNormalizedEmail(seed.Email); err != nil {
			return fmt.Errorf("look up %s: %w", seed.Email, err)
		} else if found {
			created = append(created, existing)
			continue
		}

		password, err := security.TemporaryPassword(16)
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		username := seed.Username
		user := models.User{
			ID:           uuid.NewString(),
			Name:         seed.Name,
			Email:        seed.Email,
			Username:     &username,
			PasswordHash: string(hash),
			UseMetric:    true,
			CheckMark:    models.CheckMarkCheck,
		}
		if err := repositories.Users.Create(&user); err != nil {
			return fmt.Errorf("create %s: %w", seed.Email, err)
		}
		logger.Info().Str("email", user.Email).Str("password", password).Msg("seeded user")
		created = append(created, user)
	}

	for _, follower := range created {
		for _, followee := range created {
			if follower.ID == followee.ID {
				continue
			}
			edge := models.Follow{FollowerID: follower.ID, FollowingID: followee.ID}
			if err := repositories.Follows.Create(&edge); err != nil {
				return fmt.Errorf("create follow edge: %w", err)
			}
		}
	}

	scheduleStart := services.AddDays(today, -28)
	for _, user := range created {
		existingTracks, err := repositories.Tracks.ListByOwner(user.ID)
		if err != nil {
			return fmt.Errorf("list tracks for %s: %w", user.Email, err)
		}
		seeded := make(map[string]bool, len(existingTracks))
		for _, track := range existingTracks {
			seeded[track.Name] = true
		}

		for _, name := range seedTrackNames {
			if seeded[name] {
				continue
			}
			view, err := trackService.Upsert(user.ID, services.TrackUpsertInput{
				ID:   uuid.NewString(),
				Name: name,
				Schedules: []services.ScheduleInput{{
					EffectiveFrom: scheduleStart,
					Monday:        true,
					Wednesday:     true,
					Friday:        true,
				}},
			})
			if err != nil {
				return fmt.Errorf("seed track %s for %s: %w", name, user.Email, err)
			}

			if name != "gym" {
				continue
			}
			for offset := 0; offset < 7; offset++ {
				day := services.AddDays(today, -offset)
				entry := models.Stat{
					ID:      uuid.NewString(),
					Type:    models.StatTypeStat,
					UserID:  user.ID,
					TrackID: view.Track.ID,
					Date:    day,
					Value:   float64(offset % 2),
				}
				if _, err := repositories.Stats.Upsert(&entry); err != nil {
					return fmt.Errorf("seed stat: %w", err)
				}
			}
		}
	}

	logger.Info().Int("users", len(created)).Msg("seed complete")
	return nil
}
