package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&User{}, &Video{}, &Follow{}, &Like{}, &Comment{}))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *User {
	t.Helper()

	user, err := CreateUser("Test", "User", email, "password123")
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)

	return user
}

func createTestVideo(t *testing.T, db *gorm.DB, ownerID uint) *Video {
	t.Helper()

	video := &Video{FileName: "clip.mp4", Caption: "hi", UserID: ownerID}
	require.NoError(t, db.Create(video).Error)

	return video
}
