package resourceController

import (
	"log"
	"studybud/database"
	"studybud/middleware"
	"studybud/models"
	"studybud/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateResource stores a new study resource with its pasted summary text
func CreateResource(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedResource").(*struct {
		Title   string `json:"title"`
		Summary string `json:"summary"`
	})

	resource := models.Resource{
		UserID:  userID,
		Title:   reqData.Title,
		Summary: reqData.Summary,
	}

	if err := database.Database.Db.Create(&resource).Error; err != nil {
		log.Printf("Error saving resource: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created!", resource)
}

// UploadResourceFile attaches an uploaded file to an existing resource
func UploadResourceFile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	resourceID := c.Locals("resourceID").(int)

	var resource models.Resource
	if err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = ?", resourceID, userID, false).
		First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is required!", nil)
	}

	filePath, err := utils.SaveUploadedFile(file, "./public/uploads")
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
	}

	resource.FileURL = utils.GetFileURL(filePath)
	if err := database.Database.Db.Model(&resource).UpdateColumn("file_url", resource.FileURL).Error; err != nil {
		log.Printf("Error updating resource file URL: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded!", fiber.Map{
		"file_url": resource.FileURL,
	})
}

// GetResourceList returns the user's resources, paginated
func GetResourceList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	var total int64
	database.Database.Db.Model(&models.Resource{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Count(&total)

	var resources []models.Resource
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&resources).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", fiber.Map{
		"resources": resources,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}
