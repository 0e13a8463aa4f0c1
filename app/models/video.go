package models

import (
	"time"

	"gorm.io/gorm"
)

type Video struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FileName  string    `gorm:"type:varchar(255);not null" json:"file_name"`
	Caption   string    `gorm:"type:varchar(255)" json:"caption"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Likes     []Like    `gorm:"foreignKey:VideoID" json:"likes,omitempty"`
	Comments  []Comment `gorm:"foreignKey:VideoID" json:"comments,omitempty"`
	ViewCount uint      `gorm:"not null;default:0" json:"view_count"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// FindVideoByID loads a video together with its owner.
func FindVideoByID(db *gorm.DB, id uint) (*Video, error) {
	var video Video
	result := db.Preload("User").First(&video, id)
	return &video, result.Error
}
