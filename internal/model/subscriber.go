package model

import "time"

type Subscriber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	Source    string    `gorm:"size:64;not null" json:"source"`
	CreatedAt time.Time `json:"created_at"`
}
