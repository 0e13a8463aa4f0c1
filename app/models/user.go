package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const DefaultProfilePicture = "default.jpg"

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FirstName      string    `gorm:"type:varchar(50);not null" json:"firstname" validate:"required,min=1,max=50"`
	LastName       string    `gorm:"type:varchar(50);not null" json:"lastname" validate:"required,min=1,max=50"`
	Email          string    `gorm:"uniqueIndex;type:varchar(120);not null" json:"email" validate:"required,email,max=120"`
	Password       string    `gorm:"type:varchar(255);not null" json:"-" validate:"required,min=6"`
	ProfilePicture string    `gorm:"type:varchar(255);default:'default.jpg'" json:"profile_picture"`
	Videos         []Video   `gorm:"foreignKey:UserID" json:"videos,omitempty"`
	Likes          []Like    `gorm:"foreignKey:UserID" json:"likes,omitempty"`
	Comments       []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// CreateUser builds a user with a hashed password; the record is not persisted yet.
func CreateUser(firstName, lastName, email, password string) (*User, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		FirstName:      strings.TrimSpace(firstName),
		LastName:       strings.TrimSpace(lastName),
		Email:          strings.ToLower(strings.TrimSpace(email)),
		Password:       pw,
		ProfilePicture: DefaultProfilePicture,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.Password)
}

// FullName returns first and last name joined for display.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// HasCustomProfilePicture reports whether the user replaced the default avatar.
func (u *User) HasCustomProfilePicture() bool {
	return u.ProfilePicture != "" && u.ProfilePicture != DefaultProfilePicture
}
