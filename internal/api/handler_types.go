package api

import (
	"time"

	"github.com/bilibuddies/bilibuddies/internal/db"
	"github.com/bilibuddies/bilibuddies/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool

	repositories    *db.Repositories
	authService     *services.AuthService
	userService     *services.UserService
	trackService    *services.TrackService
	statsService    *services.StatsService
	calendarService *services.CalendarService
	followPolicy    *services.FollowPolicy
}

const (
	authCookieName  = "bilibuddies_session"
	contextUserKey  = "currentUser"
	defaultTokenTTL = 7 * 24 * time.Hour
)

type authClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}
