package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exercise is one logged activity. Duration is in minutes.
type Exercise struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;not null;index" json:"user_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Duration    int       `gorm:"not null" json:"duration"`
	Date        time.Time `gorm:"not null;index" json:"date"`
}

func (e *Exercise) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
