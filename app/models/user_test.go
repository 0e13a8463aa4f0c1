package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	user, err := CreateUser("Alice", "Smith", "Alice@Example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrong"))
	assert.Equal(t, DefaultProfilePicture, user.ProfilePicture)
}

func TestCreateUserValidation(t *testing.T) {
	_, err := CreateUser("", "Smith", "alice@example.com", "secret123")
	assert.Error(t, err)

	_, err = CreateUser("Alice", "Smith", "not-an-email", "secret123")
	assert.Error(t, err)

	_, err = CreateUser("Alice", "Smith", "alice@example.com", "short")
	assert.Error(t, err)
}

func TestUserFullName(t *testing.T) {
	u := &User{FirstName: "Alice", LastName: "Smith"}
	assert.Equal(t, "Alice Smith", u.FullName())
}

func TestHasCustomProfilePicture(t *testing.T) {
	u := &User{ProfilePicture: DefaultProfilePicture}
	assert.False(t, u.HasCustomProfilePicture())

	u.ProfilePicture = "abc123_me.png"
	assert.True(t, u.HasCustomProfilePicture())

	u.ProfilePicture = ""
	assert.False(t, u.HasCustomProfilePicture())
}

func TestUserEmailUniqueness(t *testing.T) {
	db := setupTestDB(t)

	createTestUser(t, db, "dup@example.com")

	second, err := CreateUser("Other", "User", "dup@example.com", "password123")
	require.NoError(t, err)
	assert.Error(t, db.Create(second).Error)
}
