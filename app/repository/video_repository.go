package repository

import (
	"gorm.io/gorm"

	"github.com/clipvibe/ClipVibe/app/models"
)

// videoRepository implements the VideoRepository interface
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new video repository instance
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

// Create creates a new video record in the database
func (r *videoRepository) Create(video *models.Video) error {
	return r.db.Create(video).Error
}

// GetByID retrieves a video with its owner
func (r *videoRepository) GetByID(id uint) (*models.Video, error) {
	var video models.Video
	err := r.db.Preload("User").First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByUserID lists a user's videos, newest first
func (r *videoRepository) GetByUserID(userID uint) ([]models.Video, error) {
	var videos []models.Video
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&videos).Error
	return videos, err
}

// Feed composes the catalog with the social graph. Mode "following"
// restricts videos to owners the viewer actively follows; any other mode is
// the unrestricted for-you feed. Both scan the full catalog ordered by
// recency; fine at this scale, pagination is out of scope.
func (r *videoRepository) Feed(viewerID uint, mode FeedMode) ([]models.Video, error) {
	query := r.db.
		Preload("User").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Where("parent_id IS NULL").Order("created_at ASC")
		}).
		Preload("Comments.User").
		Preload("Comments.Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments.Replies.User").
		Order("created_at DESC")

	if mode == FeedModeFollowing {
		followed := r.db.Model(&models.Follow{}).
			Select("followed_id").
			Where("follower_id = ?", viewerID)
		query = query.Where("user_id IN (?)", followed)
	}

	var videos []models.Video
	err := query.Find(&videos).Error
	return videos, err
}

// CountByUserID returns how many videos a user owns
func (r *videoRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Video{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
