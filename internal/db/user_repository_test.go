package db

import (
	"testing"

	"github.com/bilibuddies/bilibuddies/internal/models"
)

func TestFindByNormalizedEmail(t *testing.T) {
	repositories := openTestDatabase(t)
	created := createTestUser(t, repositories, "ada@example.com")

	user, found, err := repositories.Users.FindByNormalizedEmail("ada@example.com")
	if err != nil || !found {
		t.Fatalf("find: found=%v err=%v", found, err)
	}
	if user.ID != created.ID {
		t.Fatalf("found user %s, want %s", user.ID, created.ID)
	}

	exists, err := repositories.Users.ExistsByNormalizedEmail("ada@example.com")
	if err != nil || !exists {
		t.Fatalf("exists: %v err=%v", exists, err)
	}
	exists, err = repositories.Users.ExistsByNormalizedEmail("nobody@example.com")
	if err != nil || exists {
		t.Fatalf("unknown email reported as existing")
	}
}

func TestExistsByUsernameExcludesSelf(t *testing.T) {
	repositories := openTestDatabase(t)
	ada := createTestUser(t, repositories, "ada@example.com")
	ben := createTestUser(t, repositories, "ben@example.com")

	if err := repositories.Users.UpdateByID(ada.ID, map[string]any{"username": "ada_99"}); err != nil {
		t.Fatalf("claim username: %v", err)
	}

	taken, err := repositories.Users.ExistsByUsername("ada_99", ben.ID)
	if err != nil || !taken {
		t.Fatalf("expected username taken for another user, got %v err=%v", taken, err)
	}

	// Re-claiming your own username is not a conflict.
	taken, err = repositories.Users.ExistsByUsername("ada_99", ada.ID)
	if err != nil || taken {
		t.Fatalf("own username reported as taken")
	}
}

func TestListFollowedBy(t *testing.T) {
	repositories := openTestDatabase(t)
	ada := createTestUser(t, repositories, "ada@example.com")
	ben := createTestUser(t, repositories, "ben@example.com")
	cleo := createTestUser(t, repositories, "cleo@example.com")

	edges := []models.Follow{
		{FollowerID: ada.ID, FollowingID: ben.ID},
		{FollowerID: ada.ID, FollowingID: cleo.ID},
		{FollowerID: ben.ID, FollowingID: ada.ID},
	}
	for index := range edges {
		if err := repositories.Follows.Create(&edges[index]); err != nil {
			t.Fatalf("create edge %d: %v", index, err)
		}
	}

	following, err := repositories.Users.ListFollowedBy(ada.ID)
	if err != nil {
		t.Fatalf("list following: %v", err)
	}
	if len(following) != 2 {
		t.Fatalf("expected 2 followed users, got %d", len(following))
	}
}
