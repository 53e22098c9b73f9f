package resourceValidator

import (
	"strconv"
	"strings"
	"studybud/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title   string `json:"title"`
			Summary string `json:"summary"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Summary
		if strings.TrimSpace(reqData.Summary) == "" {
			errors["summary"] = "Summary is required!"
		} else if len(strings.TrimSpace(reqData.Summary)) < 20 {
			errors["summary"] = "Summary must be at least 20 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}

func ResourceID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		resourceIDStr := strings.TrimSpace(c.Params("id"))
		if resourceIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Resource ID is required!", nil)
		}

		resourceID, err := strconv.Atoi(resourceIDStr)
		if err != nil || resourceID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Resource ID!", nil)
		}

		c.Locals("resourceID", resourceID)
		return c.Next()
	}
}

func ResourceList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		// Validate Page
		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		// Validate Limit
		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
