package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFindVideoByIDLoadsOwner(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	created := createTestVideo(t, db, owner.ID)

	video, err := FindVideoByID(db, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, video.ID)
	assert.Equal(t, owner.ID, video.User.ID)
	assert.Equal(t, "Test", video.User.FirstName)
}

func TestFindVideoByIDMissing(t *testing.T) {
	db := setupTestDB(t)

	_, err := FindVideoByID(db, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
