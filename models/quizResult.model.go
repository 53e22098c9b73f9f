package models

import "gorm.io/gorm"

// QuizResult records one completed quiz attempt. Score is a percentage 0-100.
type QuizResult struct {
	gorm.Model
	UserID         uint `json:"user_id" gorm:"index;not null"`
	QuizID         uint `json:"quiz_id" gorm:"index;not null"`
	Score          int  `json:"score"`
	TotalQuestions int  `json:"total_questions"`
}
