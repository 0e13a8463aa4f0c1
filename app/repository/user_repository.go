package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/clipvibe/ClipVibe/app/models"
)

// ErrEmailTaken signals a registration conflict on the unique email column.
var ErrEmailTaken = errors.New("email is already registered")

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database. A duplicate email surfaces as
// ErrEmailTaken instead of a bare storage error.
func (r *userRepository) Create(user *models.User) error {
	taken, err := r.EmailExists(user.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	return r.db.Create(user).Error
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailExists reports whether a user with the given email is registered.
func (r *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	return count > 0, err
}

// Update updates an existing user in the database
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdateProfilePicture persists just the profile picture reference.
func (r *userRepository) UpdateProfilePicture(id uint, fileName string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("profile_picture", fileName).Error
}

// GetStatsByUserID returns the aggregate counts shown on a profile page:
// follower/following edges, owned videos, and likes across owned videos.
func (r *userRepository) GetStatsByUserID(userID uint) (*UserStats, error) {
	stats := &UserStats{}

	if err := r.db.Model(&models.Follow{}).Where("followed_id = ?", userID).Count(&stats.Followers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&stats.Following).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Video{}).Where("user_id = ?", userID).Count(&stats.Videos).Error; err != nil {
		return nil, err
	}

	err := r.db.Model(&models.Like{}).
		Joins("JOIN videos ON videos.id = likes.video_id").
		Where("videos.user_id = ?", userID).
		Count(&stats.Likes).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
