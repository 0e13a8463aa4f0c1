package repository

import (
	"gorm.io/gorm"

	"github.com/clipvibe/ClipVibe/app/models"
)

// engagementRepository implements the EngagementRepository interface
type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new engagement repository instance
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

// ToggleLike flips the like state and reports whether the like exists
// afterwards.
func (r *engagementRepository) ToggleLike(userID, videoID uint) (bool, error) {
	return models.ToggleLike(r.db, userID, videoID)
}

// CountLikes returns the like count of a video.
func (r *engagementRepository) CountLikes(videoID uint) (int64, error) {
	return models.CountLikes(r.db, videoID)
}

// CountLikesForOwner sums likes across all videos owned by a user.
func (r *engagementRepository) CountLikesForOwner(ownerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Joins("JOIN videos ON videos.id = likes.video_id").
		Where("videos.user_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

// CreateComment persists a comment; parent/video consistency is checked in
// models.CreateComment.
func (r *engagementRepository) CreateComment(comment *models.Comment) error {
	return models.CreateComment(r.db, comment)
}

// GetCommentsByVideoID returns the top-level comments of a video with their
// authors and replies, oldest first.
func (r *engagementRepository) GetCommentsByVideoID(videoID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.
		Preload("User").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Replies.User").
		Where("video_id = ? AND parent_id IS NULL", videoID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
