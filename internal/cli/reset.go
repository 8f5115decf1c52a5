package cli

import (
	"errors"
	"fmt"
	"net/mail"

	"github.com/bilibuddies/bilibuddies/internal/db"
	"github.com/bilibuddies/bilibuddies/internal/security"
	"github.com/bilibuddies/bilibuddies/internal/services"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// RunResetPasswordCommand replaces a user's password with a generated
// temporary one and logs it. There is no email delivery; the operator
// hands the password to the user out of band.
func RunResetPasswordCommand(dbPath string, email string, logger zerolog.Logger) error {
	normalized := services.NormalizeEmail(email)
	if normalized == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	user, found, err := repositories.Users.FindByNormalizedEmail(normalized)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if !found {
		return fmt.Errorf("user %s not found", normalized)
	}

	temporaryPassword, err := security.TemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	if err := repositories.Users.UpdateByID(user.ID, map[string]any{"password_hash": string(hash)}); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	logger.Info().Str("email", normalized).Str("password", temporaryPassword).Msg("password reset")
	return nil
}
