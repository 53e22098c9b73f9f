package progressController

import (
	"studybud/database"
	"studybud/middleware"
	"studybud/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserProgress returns the user's progression and recent quiz results
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var recentResults []models.QuizResult
	db.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(10).
		Find(&recentResults)

	var quizCount int64
	db.Model(&models.QuizResult{}).Where("user_id = ?", userID).Count(&quizCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"experience":     user.Experience,
		"level":          user.Level,
		"level_title":    user.LevelTitle,
		"quizzes_taken":  quizCount,
		"recent_results": recentResults,
	})
}

// GetLeaderboard returns the top users ranked by experience
func GetLeaderboard(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type leaderboardEntry struct {
		Name       string `json:"name"`
		Experience uint   `json:"experience"`
		Level      int    `json:"level"`
		LevelTitle string `json:"level_title"`
	}

	var entries []leaderboardEntry
	if err := database.Database.Db.
		Model(&models.User{}).
		Select("name, experience, level, level_title").
		Where("is_deleted = ?", false).
		Order("experience desc").
		Limit(10).
		Scan(&entries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leaderboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leaderboard fetched successfully!", fiber.Map{
		"leaderboard": entries,
	})
}
