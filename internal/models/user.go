package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Username     string         `gorm:"index;not null" json:"username"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Name         string         `json:"name"`
	Phone        string         `json:"phone,omitempty"`
	Address      string         `json:"address,omitempty"`
	IsAdmin      bool           `json:"isAdmin"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// SessionView is the client-facing shape of a verified session.
type SessionView struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdmin"`
}
