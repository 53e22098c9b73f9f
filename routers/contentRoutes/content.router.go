package contentRoutes

import (
	controllers "studybud/controllers/content"
	"studybud/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up CMS-backed content routes
func SetupContentRoutes(app *fiber.App) {
	contentGroup := app.Group("/content")

	contentGroup.Get("/tips", middleware.JWTMiddleware, controllers.GetStudyTips)
}
