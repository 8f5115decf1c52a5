package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bilibuddies/bilibuddies/internal/models"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,24}$`)

type ProfileUserRepository interface {
	FindByID(userID string) (models.User, bool, error)
	ExistsByUsername(username string, excludeUserID string) (bool, error)
	UpdateByID(userID string, updates map[string]any) error
	ListFollowedBy(userID string) ([]models.User, error)
}

type ProfileTrackReader interface {
	ListByOwner(userID string) ([]models.Track, error)
}

// ProfileUpdate carries the onboarding/settings fields. Nil pointers leave
// the current value untouched.
type ProfileUpdate struct {
	Name      *string
	Username  *string
	UseMetric *bool
	CheckMark *string
	Image     *string
}

type UserService struct {
	users  ProfileUserRepository
	tracks ProfileTrackReader
}

func NewUserService(users ProfileUserRepository, tracks ProfileTrackReader) *UserService {
	return &UserService{
		users:  users,
		tracks: tracks,
	}
}

// Me returns the user's profile together with their own tracks.
func (service *UserService) Me(userID string) (models.User, []models.Track, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, nil, err
	}
	if !found {
		return models.User{}, nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	tracks, err := service.tracks.ListByOwner(userID)
	if err != nil {
		return models.User{}, nil, err
	}
	return user, tracks, nil
}

// UpdateProfile applies onboarding and settings changes. Claiming a
// username is what completes onboarding; usernames are lowercase and
// globally unique.
func (service *UserService) UpdateProfile(userID string, update ProfileUpdate) (models.User, error) {
	updates := make(map[string]any)

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return models.User{}, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		updates["name"] = name
	}

	if update.Username != nil {
		username := strings.ToLower(strings.TrimSpace(*update.Username))
		if !usernamePattern.MatchString(username) {
			return models.User{}, fmt.Errorf("%w: username must be 3-24 characters of a-z, 0-9 or _", ErrValidation)
		}
		taken, err := service.users.ExistsByUsername(username, userID)
		if err != nil {
			return models.User{}, err
		}
		if taken {
			return models.User{}, ErrUsernameTaken
		}
		updates["username"] = username
	}

	if update.UseMetric != nil {
		updates["use_metric"] = *update.UseMetric
	}

	if update.CheckMark != nil {
		if !models.IsValidCheckMark(*update.CheckMark) {
			return models.User{}, fmt.Errorf("%w: unknown check mark %q", ErrValidation, *update.CheckMark)
		}
		updates["check_mark"] = *update.CheckMark
	}

	if update.Image != nil {
		updates["image"] = strings.TrimSpace(*update.Image)
	}

	if len(updates) > 0 {
		if err := service.users.UpdateByID(userID, updates); err != nil {
			return models.User{}, err
		}
	}

	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	return user, nil
}

// ListFollowing returns the users the caller follows.
func (service *UserService) ListFollowing(userID string) ([]models.User, error) {
	return service.users.ListFollowedBy(userID)
}
