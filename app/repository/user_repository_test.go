package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipvibe/ClipVibe/app/models"
)

func TestUserRepositoryCreateRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)

	first, err := models.CreateUser("Alice", "Smith", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, users.Create(first))

	second, err := models.CreateUser("Other", "Alice", "alice@example.com", "password456")
	require.NoError(t, err)
	assert.ErrorIs(t, users.Create(second), ErrEmailTaken)
}

func TestUserRepositoryGetByEmailNormalizes(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	createTestUser(t, db, "alice@example.com")

	user, err := users.GetByEmail("  Alice@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserRepositoryUpdateProfilePicture(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	alice := createTestUser(t, db, "alice@example.com")

	require.NoError(t, users.UpdateProfilePicture(alice.ID, "token_me.png"))

	loaded, err := users.GetByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "token_me.png", loaded.ProfilePicture)
}

func TestUserRepositoryStats(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	engagement := NewEngagementRepository(db)

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	carol := createTestUser(t, db, "carol@example.com")

	// Fresh profile starts at zero everywhere
	stats, err := users.GetStatsByUserID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, &UserStats{}, stats)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clipA := createTestVideoAt(t, db, alice.ID, base)
	clipB := createTestVideoAt(t, db, alice.ID, base.Add(time.Hour))

	_, err = follows.Toggle(bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = follows.Toggle(carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = follows.Toggle(alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = engagement.ToggleLike(bob.ID, clipA.ID)
	require.NoError(t, err)
	_, err = engagement.ToggleLike(carol.ID, clipA.ID)
	require.NoError(t, err)
	_, err = engagement.ToggleLike(bob.ID, clipB.ID)
	require.NoError(t, err)

	stats, err = users.GetStatsByUserID(alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Followers)
	assert.EqualValues(t, 1, stats.Following)
	assert.EqualValues(t, 2, stats.Videos)
	assert.EqualValues(t, 3, stats.Likes)
}
