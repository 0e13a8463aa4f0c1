package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrSelfFollow is returned when a user tries to follow themselves.
var ErrSelfFollow = errors.New("users cannot follow themselves")

// Follow is a directed edge in the social graph. The composite unique index
// backs the toggle against concurrent duplicate inserts.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follower_followed" json:"follower_id"`
	Follower   User      `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	FollowedID uint      `gorm:"not null;uniqueIndex:idx_follower_followed;index" json:"followed_id"`
	Followed   User      `gorm:"foreignKey:FollowedID" json:"followed,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ToggleFollow creates the edge if absent and removes it if present.
// Returns true when the edge exists after the call.
func ToggleFollow(db *gorm.DB, followerID, followedID uint) (bool, error) {
	if followerID == followedID {
		return false, ErrSelfFollow
	}

	var follow Follow
	result := db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).First(&follow)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			newFollow := Follow{
				FollowerID: followerID,
				FollowedID: followedID,
			}
			return true, db.Create(&newFollow).Error
		}
		return false, result.Error
	}

	return false, db.Delete(&follow).Error
}

// CountFollowers returns how many users follow the given user.
func CountFollowers(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&Follow{}).Where("followed_id = ?", userID).Count(&count).Error
	return count, err
}

// CountFollowing returns how many users the given user follows.
func CountFollowing(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
