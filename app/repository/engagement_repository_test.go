package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipvibe/ClipVibe/app/models"
)

func TestEngagementToggleLikeRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	engagement := NewEngagementRepository(db)

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	clip := createTestVideoAt(t, db, alice.ID, time.Now())

	liked, err := engagement.ToggleLike(bob.ID, clip.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := engagement.CountLikes(clip.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	liked, err = engagement.ToggleLike(bob.ID, clip.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = engagement.CountLikes(clip.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestEngagementCommentsThread(t *testing.T) {
	db := setupTestDB(t)
	engagement := NewEngagementRepository(db)

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	clip := createTestVideoAt(t, db, alice.ID, time.Now())

	parent := &models.Comment{Content: "first", UserID: alice.ID, VideoID: clip.ID}
	require.NoError(t, engagement.CreateComment(parent))

	reply := &models.Comment{Content: "second", UserID: bob.ID, VideoID: clip.ID, ParentID: &parent.ID}
	require.NoError(t, engagement.CreateComment(reply))

	comments, err := engagement.GetCommentsByVideoID(clip.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1) // only top-level comments at the root

	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "alice@example.com", comments[0].User.Email)
	require.Len(t, comments[0].Replies, 1)
	assert.Equal(t, "second", comments[0].Replies[0].Content)
	assert.Equal(t, "bob@example.com", comments[0].Replies[0].User.Email)
}

func TestEngagementCommentRejectsCrossVideoParent(t *testing.T) {
	db := setupTestDB(t)
	engagement := NewEngagementRepository(db)

	alice := createTestUser(t, db, "alice@example.com")
	clipA := createTestVideoAt(t, db, alice.ID, time.Now())
	clipB := createTestVideoAt(t, db, alice.ID, time.Now())

	parent := &models.Comment{Content: "on A", UserID: alice.ID, VideoID: clipA.ID}
	require.NoError(t, engagement.CreateComment(parent))

	reply := &models.Comment{Content: "on B", UserID: alice.ID, VideoID: clipB.ID, ParentID: &parent.ID}
	assert.ErrorIs(t, engagement.CreateComment(reply), models.ErrParentCommentMismatch)
}

func TestEngagementCountLikesForOwner(t *testing.T) {
	db := setupTestDB(t)
	engagement := NewEngagementRepository(db)

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	clipA := createTestVideoAt(t, db, alice.ID, time.Now())
	clipB := createTestVideoAt(t, db, alice.ID, time.Now())
	bobClip := createTestVideoAt(t, db, bob.ID, time.Now())

	_, err := engagement.ToggleLike(bob.ID, clipA.ID)
	require.NoError(t, err)
	_, err = engagement.ToggleLike(bob.ID, clipB.ID)
	require.NoError(t, err)
	_, err = engagement.ToggleLike(alice.ID, bobClip.ID)
	require.NoError(t, err)

	count, err := engagement.CountLikesForOwner(alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
