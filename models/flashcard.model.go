package models

import (
	"time"

	"gorm.io/gorm"
)

type Flashcard struct {
	gorm.Model
	ResourceID uint   `json:"resource_id" gorm:"index;not null"`
	Front      string `json:"front" gorm:"type:text"`
	Back       string `json:"back" gorm:"type:text"`
	IsDeleted  bool   `gorm:"default:false"`
}

// FlashcardReview holds the review schedule for a card. At most one row per
// card: repeat reviews update the row in place (upsert keyed on CardID).
// Difficulty is the 1-5 review rating, distinct from question difficulty.
type FlashcardReview struct {
	gorm.Model
	CardID         uint      `json:"card_id" gorm:"uniqueIndex;not null"`
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	Difficulty     int       `json:"difficulty"`
	NextReviewDate time.Time `json:"next_review_date"`
}
