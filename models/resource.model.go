package models

import "gorm.io/gorm"

// Resource is a piece of study material a user adds: pasted notes plus an
// optional uploaded file. Quizzes and flashcards are generated from Summary.
type Resource struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Summary   string `json:"summary" gorm:"type:text"`
	FileURL   string `json:"file_url"`
	IsDeleted bool   `gorm:"default:false"`
}
