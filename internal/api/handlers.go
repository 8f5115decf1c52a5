package api

import (
	"errors"

	"github.com/bilibuddies/bilibuddies/internal/db"
	"github.com/bilibuddies/bilibuddies/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secretKey == "" {
		return nil, errors.New("secret key is required")
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		cookieSecure: cookieSecure,
	}
	handler.wireDependencies()
	return handler, nil
}

func (handler *Handler) wireDependencies() {
	handler.repositories = db.NewRepositories(handler.db)
	handler.followPolicy = services.NewFollowPolicy(handler.repositories.Follows)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.userService = services.NewUserService(handler.repositories.Users, handler.repositories.Tracks)
	handler.trackService = services.NewTrackService(handler.followPolicy, handler.repositories.Tracks)
	handler.calendarService = services.NewCalendarService(handler.repositories.Tracks, handler.repositories.Tracks, handler.repositories.Stats)
	handler.statsService = services.NewStatsService(handler.followPolicy, handler.calendarService, handler.repositories.Stats, handler.repositories.Tracks)
}
