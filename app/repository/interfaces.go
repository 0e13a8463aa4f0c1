package repository

import (
	"gorm.io/gorm"

	"github.com/clipvibe/ClipVibe/app/models"
)

// FeedMode selects how the feed assembler scopes the video catalog.
type FeedMode string

const (
	FeedModeForYou    FeedMode = "for_you"
	FeedModeFollowing FeedMode = "following"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	Update(user *models.User) error
	UpdateProfilePicture(id uint, fileName string) error
	GetStatsByUserID(userID uint) (*UserStats, error)
}

// VideoRepository defines the interface for the media catalog and the feed
// assembler that composes it with the social graph.
type VideoRepository interface {
	Create(video *models.Video) error
	GetByID(id uint) (*models.Video, error)
	GetByUserID(userID uint) ([]models.Video, error)
	Feed(viewerID uint, mode FeedMode) ([]models.Video, error)
	CountByUserID(userID uint) (int64, error)
}

// FollowRepository defines the interface for the social graph.
type FollowRepository interface {
	Toggle(followerID, followedID uint) (bool, error)
	IsFollowing(followerID, followedID uint) (bool, error)
	FollowedIDs(followerID uint) ([]uint, error)
	CountFollowers(userID uint) (int64, error)
	CountFollowing(userID uint) (int64, error)
}

// EngagementRepository defines the interface for likes and threaded comments.
type EngagementRepository interface {
	ToggleLike(userID, videoID uint) (bool, error)
	CountLikes(videoID uint) (int64, error)
	CountLikesForOwner(ownerID uint) (int64, error)
	CreateComment(comment *models.Comment) error
	GetCommentsByVideoID(videoID uint) ([]models.Comment, error)
}

// UserStats aggregates the numbers shown on a profile page.
type UserStats struct {
	Followers int64
	Following int64
	Videos    int64
	Likes     int64
}

// Repositories struct holds all repository instances
type Repositories struct {
	User       UserRepository
	Video      VideoRepository
	Follow     FollowRepository
	Engagement EngagementRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Video:      NewVideoRepository(db),
		Follow:     NewFollowRepository(db),
		Engagement: NewEngagementRepository(db),
	}
}
