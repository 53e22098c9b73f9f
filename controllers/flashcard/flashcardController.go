package flashcardController

import (
	"log"
	"studybud/database"
	"studybud/engine"
	"studybud/middleware"
	"studybud/models"
	"studybud/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GenerateFlashcards creates a flashcard batch for a resource via the LLM.
// The batch persists all-or-nothing.
func GenerateFlashcards(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	resourceID := c.Locals("resourceID").(int)
	db := database.Database.Db

	var resource models.Resource
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", resourceID, userID, false).
		First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	generated, err := utils.GenerateFlashcards(resource.Summary)
	if err != nil {
		log.Printf("Flashcard generation failed for resource %d: %v", resource.ID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to generate flashcards!", nil)
	}

	cards := make([]models.Flashcard, len(generated))
	for i, gc := range generated {
		cards[i] = models.Flashcard{
			ResourceID: resource.ID,
			Front:      gc.Front,
			Back:       gc.Back,
		}
	}

	if err := db.Create(&cards).Error; err != nil {
		log.Printf("Error saving flashcards for resource %d: %v", resource.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create flashcards!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Flashcards created!", fiber.Map{
		"card_count": len(cards),
		"cards":      cards,
	})
}

// GetDueFlashcards lists the user's cards due today, including cards that
// were never reviewed.
func GetDueFlashcards(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var cards []models.Flashcard
	if err := database.Database.Db.
		Table("flashcards").
		Select("flashcards.*").
		Joins("JOIN resources ON resources.id = flashcards.resource_id").
		Joins("LEFT JOIN flashcard_reviews ON flashcard_reviews.card_id = flashcards.id").
		Where("resources.user_id = ? AND flashcards.is_deleted = ?", userID, false).
		Where("flashcard_reviews.id IS NULL OR flashcard_reviews.next_review_date <= ?", now.EndOfDay()).
		Order("flashcards.id asc").
		Scan(&cards).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch due flashcards!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Due flashcards fetched!", fiber.Map{
		"due_count": len(cards),
		"cards":     cards,
	})
}

// ReviewFlashcard records a review rating and schedules the next review.
// The schedule row is upserted keyed on card_id in a single statement, so
// concurrent reviews of the same card never produce two rows; last write wins.
func ReviewFlashcard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	cardID := c.Locals("cardID").(int)
	difficulty := c.Locals("reviewDifficulty").(int)

	db := database.Database.Db

	var card models.Flashcard
	if err := db.Where("id = ? AND is_deleted = ?", cardID, false).First(&card).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Flashcard not found!", nil)
	}

	nextReview := engine.NextReviewDate(difficulty, time.Now())

	review := models.FlashcardReview{
		CardID:         card.ID,
		UserID:         userID,
		Difficulty:     difficulty,
		NextReviewDate: nextReview,
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "card_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"user_id":          userID,
			"difficulty":       difficulty,
			"next_review_date": nextReview,
			"updated_at":       gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&review).Error; err != nil {
		log.Printf("Error upserting flashcard review for card %d: %v", card.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review recorded!", fiber.Map{
		"card_id":          card.ID,
		"difficulty":       difficulty,
		"next_review_date": nextReview,
	})
}
