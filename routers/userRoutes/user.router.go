package userRoutes

import (
	controllers "studybud/controllers/progress"
	"studybud/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up progression routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/progress", middleware.JWTMiddleware, controllers.GetUserProgress)
	userGroup.Get("/leaderboard", middleware.JWTMiddleware, controllers.GetLeaderboard)
}
