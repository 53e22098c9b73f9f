package quizRoutes

import (
	quizControllers "studybud/controllers/quiz"
	"studybud/middleware"
	quizValidators "studybud/validators/quiz"
	resourceValidators "studybud/validators/resource"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up quiz generation, adaptive selection, grading and
// result recording routes
func SetupQuizRoutes(app *fiber.App) {
	// Quiz generation hangs off the resource it is generated from
	app.Post("/resource/:id/quiz", middleware.JWTMiddleware, resourceValidators.ResourceID(), quizControllers.GenerateQuiz)

	quizGroup := app.Group("/quiz")

	// Adaptive question selection
	quizGroup.Get("/:id/next", middleware.JWTMiddleware, quizValidators.NextQuestion(), quizControllers.GetNextQuestion)

	// Answer grading
	quizGroup.Post("/question/:id/answer", middleware.JWTMiddleware, quizValidators.SubmitAnswer(), quizControllers.SubmitAnswer)

	// Quiz completion and progression
	quizGroup.Post("/:id/result", middleware.JWTMiddleware, quizValidators.SubmitResult(), quizControllers.SubmitQuizResult)
}
