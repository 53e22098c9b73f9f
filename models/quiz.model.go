package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz is created at most once per resource; the unique index on ResourceID
// backs the create-or-fetch path.
type Quiz struct {
	gorm.Model
	ResourceID uint `json:"resource_id" gorm:"uniqueIndex;not null"`
	IsDeleted  bool `gorm:"default:false"`
}

// Question is a question bank entry. Options always holds exactly 4 strings.
// Difficulty is on the 1-100 quiz scale, not the 1-5 flashcard scale.
type Question struct {
	gorm.Model
	QuizID        uint           `json:"quiz_id" gorm:"index;not null"`
	QuestionText  string         `json:"question_text" gorm:"type:text"`
	Options       datatypes.JSON `json:"options"`
	CorrectOption string         `json:"correct_option"`
	Explanation   string         `json:"explanation" gorm:"type:text"`
	Difficulty    int            `json:"difficulty" gorm:"default:50"`
}

// QuestionAttempt is the audit trail for graded answers.
type QuestionAttempt struct {
	gorm.Model
	UserID         uint   `json:"user_id" gorm:"index;not null"`
	QuestionID     uint   `json:"question_id" gorm:"index;not null"`
	SelectedOption string `json:"selected_option"`
	IsCorrect      bool   `json:"is_correct"`
}
