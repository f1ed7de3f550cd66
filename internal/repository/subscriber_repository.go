package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gamestore-hub/internal/model"
)

type SubscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

func (r *SubscriberRepository) Create(subscriber *model.Subscriber) error {
	if err := r.db.Create(subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("create subscriber failed: %w", err)
	}
	return nil
}
