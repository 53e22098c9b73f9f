package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage string    `json:"profile_image" gorm:"default:''"`
	Name         string    `json:"name" gorm:"default:''"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Role         string    `json:"role" gorm:"default:'USER'"` // Default role is USER, ADMIN
	Password     string    `json:"-" gorm:"not null"`
	Experience   uint      `json:"experience" gorm:"default:0"`
	Level        int       `json:"level" gorm:"default:1"`
	LevelTitle   string    `json:"level_title" gorm:"default:'Beginner'"`
	LastLogin    time.Time `json:"last_login" gorm:"default:NULL"`
	IsDeleted    bool      `gorm:"default:false"`
}
