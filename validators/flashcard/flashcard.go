package flashcardValidator

import (
	"strconv"
	"strings"
	"studybud/middleware"

	"github.com/gofiber/fiber/v2"
)

// ReviewFlashcard validates a review submission. The 1-5 range check lives
// here, before the scheduler is ever invoked; out-of-range ratings are
// rejected rather than clamped.
func ReviewFlashcard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cardIDStr := strings.TrimSpace(c.Params("id"))
		cardID, err := strconv.Atoi(cardIDStr)
		if cardIDStr == "" || err != nil || cardID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Card ID!", nil)
		}

		reqData := new(struct {
			Difficulty *int `json:"difficulty"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Difficulty == nil {
			errors["difficulty"] = "Difficulty is required!"
		} else if *reqData.Difficulty < 1 || *reqData.Difficulty > 5 {
			errors["difficulty"] = "Difficulty must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("cardID", cardID)
		c.Locals("reviewDifficulty", *reqData.Difficulty)
		return c.Next()
	}
}
