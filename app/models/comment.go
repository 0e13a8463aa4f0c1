package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ErrParentCommentMismatch is returned when a reply references a parent
// comment that does not exist or sits on a different video.
var ErrParentCommentMismatch = errors.New("parent comment does not belong to this video")

// Comment is a threaded comment on a video. Top-level comments have a nil
// parent; replies reference a parent comment on the same video.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content" validate:"required,min=1"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	VideoID   uint      `gorm:"index;not null" json:"video_id"`
	Video     Video     `gorm:"foreignKey:VideoID" json:"video,omitempty"`
	ParentID  *uint     `gorm:"index" json:"parent_id"`
	Parent    *Comment  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Replies   []Comment `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (cm *Comment) Validate() error {
	v := validator.New()

	return v.Struct(cm)
}

// CreateComment persists a comment after checking that a supplied parent
// exists and belongs to the same video.
func CreateComment(db *gorm.DB, comment *Comment) error {
	if err := comment.Validate(); err != nil {
		return err
	}

	if comment.ParentID != nil {
		var parent Comment
		if err := db.First(&parent, *comment.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrParentCommentMismatch
			}
			return err
		}
		if parent.VideoID != comment.VideoID {
			return ErrParentCommentMismatch
		}
	}

	return db.Create(comment).Error
}
