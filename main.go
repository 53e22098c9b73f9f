package main

import (
	"studybud/config"
	"studybud/database"
	authRoutes "studybud/routers/authRoutes"
	contentRoutes "studybud/routers/contentRoutes"
	flashcardRoutes "studybud/routers/flashcardRoutes"
	quizRoutes "studybud/routers/quizRoutes"
	resourceRoutes "studybud/routers/resourceRoutes"
	userRoutes "studybud/routers/userRoutes"
	"studybud/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	resourceRoutes.SetupResourceRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	flashcardRoutes.SetupFlashcardRoutes(app)
	userRoutes.SetupUserRoutes(app)
	contentRoutes.SetupContentRoutes(app)

	// Daily flashcard review reminders
	utils.StartReviewScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
