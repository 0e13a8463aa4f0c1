package repository

import (
	"gorm.io/gorm"

	"github.com/clipvibe/ClipVibe/app/models"
)

// followRepository implements the FollowRepository interface
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository instance
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Toggle flips the follow edge and reports whether it exists afterwards.
// Self-follows surface as models.ErrSelfFollow.
func (r *followRepository) Toggle(followerID, followedID uint) (bool, error) {
	return models.ToggleFollow(r.db, followerID, followedID)
}

// IsFollowing reports whether the edge follower -> followed is active.
func (r *followRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

// FollowedIDs returns the IDs of all users the given user follows.
func (r *followRepository) FollowedIDs(followerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error
	return ids, err
}

// CountFollowers returns the follower count of a user.
func (r *followRepository) CountFollowers(userID uint) (int64, error) {
	return models.CountFollowers(r.db, userID)
}

// CountFollowing returns how many users the given user follows.
func (r *followRepository) CountFollowing(userID uint) (int64, error) {
	return models.CountFollowing(r.db, userID)
}
