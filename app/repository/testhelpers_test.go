package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/clipvibe/ClipVibe/app/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Video{},
		&models.Follow{},
		&models.Like{},
		&models.Comment{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user, err := models.CreateUser("Test", "User", email, "password123")
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)

	return user
}

func createTestVideoAt(t *testing.T, db *gorm.DB, ownerID uint, createdAt time.Time) *models.Video {
	t.Helper()

	video := &models.Video{FileName: "clip.mp4", Caption: "hi", UserID: ownerID}
	require.NoError(t, db.Create(video).Error)
	// autoCreateTime wins on insert; pin the timestamp for ordering tests
	require.NoError(t, db.Model(video).Update("created_at", createdAt).Error)
	video.CreatedAt = createdAt

	return video
}
