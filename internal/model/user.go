package model

import (
	"regexp"
	"time"
)

const (
	RoleUser = "user"

	PasswordMinLen = 6
	UsernameMinLen = 3
	UsernameMaxLen = 20
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Username      string     `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email         string     `gorm:"size:128;not null;uniqueIndex" json:"email"`
	PasswordHash  string     `gorm:"size:255;not null" json:"-"`
	Role          string     `gorm:"size:32;not null;default:user" json:"role"`
	IsActive      bool       `gorm:"not null;default:true" json:"is_active"`
	EmailVerified bool       `gorm:"not null;default:false" json:"email_verified"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// PublicUser is the shape of a user record once it crosses the API
// boundary. It never carries the password hash.
type PublicUser struct {
	ID            uint       `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	IsActive      bool       `json:"is_active"`
	EmailVerified bool       `json:"email_verified"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (u *User) Sanitize() PublicUser {
	return PublicUser{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Role:          u.Role,
		IsActive:      u.IsActive,
		EmailVerified: u.EmailVerified,
		LastLogin:     u.LastLogin,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateUsername accepts 3-20 characters of letters, digits and
// underscores.
func ValidateUsername(username string) bool {
	if len(username) < UsernameMinLen || len(username) > UsernameMaxLen {
		return false
	}
	return usernamePattern.MatchString(username)
}

func ValidatePassword(password string) bool {
	return len(password) >= PasswordMinLen
}
