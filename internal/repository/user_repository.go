package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gamestore-hub/internal/model"
)

// ErrDuplicateEntry reports a unique-index violation on insert.
var ErrDuplicateEntry = errors.New("duplicate entry")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email failed: %w", err)
	}
	return &user, nil
}

// GetByEmailOrUsername returns the first user colliding on either field.
// It exists to pre-check uniqueness at registration; the unique indexes
// remain the correctness mechanism.
func (r *UserRepository) GetByEmailOrUsername(email, username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ? OR username = ?", email, username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email or username failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	return &user, nil
}

// TouchLogin stamps last_login and updated_at in a single update.
func (r *UserRepository) TouchLogin(id uint) error {
	now := time.Now()
	err := r.db.Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"last_login": now,
		"updated_at": now,
	}).Error
	if err != nil {
		return fmt.Errorf("touch login failed: %w", err)
	}
	return nil
}
