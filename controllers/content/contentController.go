package contentController

import (
	"studybud/middleware"
	"studybud/utils"

	"github.com/gofiber/fiber/v2"
)

// GetStudyTips proxies editorial study tips from the CMS
func GetStudyTips(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	topic := c.Query("topic")

	tips, err := utils.FetchStudyTips(topic)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to fetch study tips!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study tips fetched successfully!", fiber.Map{
		"tips": tips,
	})
}
