package resourceRoutes

import (
	controllers "studybud/controllers/resource"
	"studybud/middleware"
	validators "studybud/validators/resource"

	"github.com/gofiber/fiber/v2"
)

// SetupResourceRoutes sets up study resource routes
func SetupResourceRoutes(app *fiber.App) {
	resourceGroup := app.Group("/resource")

	resourceGroup.Post("/", middleware.JWTMiddleware, validators.CreateResource(), controllers.CreateResource)
	resourceGroup.Get("/list", middleware.JWTMiddleware, validators.ResourceList(), controllers.GetResourceList)
	resourceGroup.Post("/:id/upload", middleware.JWTMiddleware, validators.ResourceID(), controllers.UploadResourceFile)
}
