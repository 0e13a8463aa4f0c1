package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Like marks a video as liked by a user. At most one row per (user, video)
// pair, enforced by the composite unique index.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_video" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	VideoID   uint      `gorm:"not null;uniqueIndex:idx_user_video;index" json:"video_id"`
	Video     Video     `gorm:"foreignKey:VideoID" json:"video,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ToggleLike creates or removes a like. Returns true when the like exists
// after the call.
func ToggleLike(db *gorm.DB, userID, videoID uint) (bool, error) {
	var like Like
	result := db.Where("user_id = ? AND video_id = ?", userID, videoID).First(&like)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			newLike := Like{
				UserID:  userID,
				VideoID: videoID,
			}
			return true, db.Create(&newLike).Error
		}
		return false, result.Error
	}

	return false, db.Delete(&like).Error
}

// CountLikes returns the number of likes on a video.
func CountLikes(db *gorm.DB, videoID uint) (int64, error) {
	var count int64
	err := db.Model(&Like{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}
