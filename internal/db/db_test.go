package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bilibuddies/bilibuddies/internal/models"
	"github.com/google/uuid"
)

func openTestDatabase(t *testing.T) *Repositories {
	t.Helper()
	databasePath := filepath.Join(t.TempDir(), "bilibuddies-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return NewRepositories(database)
}

func createTestUser(t *testing.T, repositories *Repositories, email string) models.User {
	t.Helper()
	user := models.User{
		ID:           uuid.NewString(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
		UseMetric:    true,
		CheckMark:    models.CheckMarkCheck,
	}
	if err := repositories.Users.Create(&user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func testDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}
