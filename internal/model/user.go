package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User.Username compares byte-for-byte: "alice" and "Alice" are distinct users.
type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"_id"`
	Username string `gorm:"type:varchar(255) COLLATE utf8mb4_bin;not null;uniqueIndex" json:"username"`
}

// BeforeCreate assigns the identifier when the caller did not.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
