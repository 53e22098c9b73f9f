package flashcardRoutes

import (
	flashcardControllers "studybud/controllers/flashcard"
	"studybud/middleware"
	flashcardValidators "studybud/validators/flashcard"
	resourceValidators "studybud/validators/resource"

	"github.com/gofiber/fiber/v2"
)

// SetupFlashcardRoutes sets up flashcard generation and review routes
func SetupFlashcardRoutes(app *fiber.App) {
	// Flashcard generation hangs off the resource
	app.Post("/resource/:id/flashcards", middleware.JWTMiddleware, resourceValidators.ResourceID(), flashcardControllers.GenerateFlashcards)

	cardGroup := app.Group("/flashcard")

	cardGroup.Get("/due", middleware.JWTMiddleware, flashcardControllers.GetDueFlashcards)
	cardGroup.Post("/:id/review", middleware.JWTMiddleware, flashcardValidators.ReviewFlashcard(), flashcardControllers.ReviewFlashcard)
}
