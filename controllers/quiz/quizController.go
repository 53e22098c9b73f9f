package quizController

import (
	"encoding/json"
	"errors"
	"log"
	"studybud/database"
	"studybud/engine"
	"studybud/middleware"
	"studybud/models"
	"studybud/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GenerateQuiz creates a quiz for a resource. Creation is idempotent: a
// resource has at most one quiz, and a second request returns the existing
// one. The quiz row and its question batch persist in one transaction, so a
// generation failure leaves nothing behind.
func GenerateQuiz(c *fiber.Ctx) error {
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

	// Existing quiz wins before we spend an LLM call
	var existing models.Quiz
	if err := db.Where("resource_id = ?", resource.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz already exists for this resource!", existing)
	}

	generated, err := utils.GenerateQuizQuestions(resource.Summary)
	if err != nil {
		log.Printf("Quiz generation failed for resource %d: %v", resource.ID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to generate quiz questions!", nil)
	}

	quiz := models.Quiz{ResourceID: resource.ID}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}

		questions := make([]models.Question, len(generated))
		for i, gq := range generated {
			options, err := json.Marshal(gq.Options)
			if err != nil {
				return err
			}
			questions[i] = models.Question{
				QuizID:        quiz.ID,
				QuestionText:  gq.Question,
				Options:       datatypes.JSON(options),
				CorrectOption: gq.CorrectOption,
				Explanation:   gq.Explanation,
				Difficulty:    gq.Difficulty,
			}
		}

		return tx.Create(&questions).Error
	})
	if err != nil {
		// A concurrent request may have created the quiz first; the unique
		// index on resource_id makes that a fetch, not a failure.
		if fetchErr := db.Where("resource_id = ?", resource.ID).First(&existing).Error; fetchErr == nil {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz already exists for this resource!", existing)
		}
		log.Printf("Error saving quiz for resource %d: %v", resource.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz created!", fiber.Map{
		"quiz":           quiz,
		"question_count": len(generated),
	})
}

// GetNextQuestion picks the next question for a session: in-window difficulty
// around the caller's skill score, unseen, easiest first. An exhausted pool is
// a normal response, not an error.
func GetNextQuestion(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)
	skillScore := c.Locals("skillScore").(int)
	excludedIDs, _ := c.Locals("excludedIDs").([]uint)

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	low, high := engine.DifficultyWindow(skillScore)

	query := db.Where("quiz_id = ? AND difficulty >= ? AND difficulty <= ?", quiz.ID, low, high)
	if len(excludedIDs) > 0 {
		query = query.Where("id NOT IN ?", excludedIDs)
	}

	var question models.Question
	if err := query.Order("difficulty asc, id asc").First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "No more questions in this difficulty band.", fiber.Map{
				"exhausted": true,
			})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch next question!", nil)
	}

	// Correct option and explanation stay server-side until the answer is graded
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Next question fetched!", fiber.Map{
		"exhausted": false,
		"question": fiber.Map{
			"id":            question.ID,
			"quiz_id":       question.QuizID,
			"question_text": question.QuestionText,
			"options":       question.Options,
			"difficulty":    question.Difficulty,
		},
	})
}

// SubmitAnswer grades a submitted option against the stored correct option.
// Grading is an exact string match; no trimming or case folding.
func SubmitAnswer(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	questionID := c.Locals("questionID").(int)
	selectedOption := c.Locals("selectedOption").(string)

	db := database.Database.Db

	var question models.Question
	if err := db.First(&question, questionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	isCorrect := selectedOption == question.CorrectOption

	attempt := models.QuestionAttempt{
		UserID:         userID,
		QuestionID:     question.ID,
		SelectedOption: selectedOption,
		IsCorrect:      isCorrect,
	}
	if err := db.Create(&attempt).Error; err != nil {
		log.Printf("Error saving question attempt: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit answer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer submitted!", fiber.Map{
		"is_correct":     isCorrect,
		"correct_option": question.CorrectOption,
		"explanation":    question.Explanation,
	})
}

// SubmitQuizResult records a completed quiz and advances progression: persist
// the result, award XP with a single SQL-level increment, then recompute the
// level from the post-increment total. The increment is never a read-then-write
// round trip, so concurrent completions cannot lose XP.
func SubmitQuizResult(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	quizID := c.Locals("quizID").(int)
	score := c.Locals("resultScore").(int)
	totalQuestions := c.Locals("resultTotal").(int)

	db := database.Database.Db

	var quiz models.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	xpGain := engine.QuizXP(score)

	var user models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		result := models.QuizResult{
			UserID:         userID,
			QuizID:         quiz.ID,
			Score:          score,
			TotalQuestions: totalQuestions,
		}
		if err := tx.Create(&result).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("experience", gorm.Expr("experience + ?", xpGain)).Error; err != nil {
			return err
		}

		// Level is recomputed from the experience the increment produced
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		info := engine.LevelOf(user.Experience)
		user.Level = info.Level
		user.LevelTitle = info.Title

		return tx.Model(&user).UpdateColumns(map[string]interface{}{
			"level":       info.Level,
			"level_title": info.Title,
		}).Error
	})
	if err != nil {
		log.Printf("Error recording quiz result for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record quiz result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz result recorded!", fiber.Map{
		"xp_gained":   xpGain,
		"experience":  user.Experience,
		"level":       user.Level,
		"level_title": user.LevelTitle,
	})
}
