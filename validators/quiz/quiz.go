package quizValidator

import (
	"strconv"
	"strings"
	"studybud/middleware"

	"github.com/gofiber/fiber/v2"
)

func parseIDParam(c *fiber.Ctx, name string) (int, bool) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		c.Locals("quizID", quizID)
		return c.Next()
	}
}

// NextQuestion validates the adaptive selection query: a 0-100 skill score
// and an optional comma-separated list of already-seen question IDs.
func NextQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		errors := make(map[string]string)

		// Validate skill score
		skillStr := strings.TrimSpace(c.Query("skill"))
		skill, err := strconv.Atoi(skillStr)
		if skillStr == "" {
			errors["skill"] = "Skill score is required!"
		} else if err != nil || skill < 0 || skill > 100 {
			errors["skill"] = "Skill score must be an integer between 0 and 100!"
		}

		// Validate excluded question IDs
		var excluded []uint
		excludeStr := strings.TrimSpace(c.Query("exclude"))
		if excludeStr != "" {
			for _, part := range strings.Split(excludeStr, ",") {
				id, err := strconv.Atoi(strings.TrimSpace(part))
				if err != nil || id <= 0 {
					errors["exclude"] = "Exclude must be a comma-separated list of question IDs!"
					break
				}
				excluded = append(excluded, uint(id))
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("quizID", quizID)
		c.Locals("skillScore", skill)
		c.Locals("excludedIDs", excluded)
		return c.Next()
	}
}

func SubmitAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		questionID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}

		reqData := new(struct {
			SelectedOption string `json:"selected_option"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.SelectedOption == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"selected_option": "Selected option is required!",
			})
		}

		c.Locals("questionID", questionID)
		c.Locals("selectedOption", reqData.SelectedOption)
		return c.Next()
	}
}

func SubmitResult() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Quiz ID!", nil)
		}

		reqData := new(struct {
			Score          *int `json:"score"`
			TotalQuestions *int `json:"total_questions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Score (a percentage)
		if reqData.Score == nil {
			errors["score"] = "Score is required!"
		} else if *reqData.Score < 0 || *reqData.Score > 100 {
			errors["score"] = "Score must be between 0 and 100!"
		}

		// Validate TotalQuestions
		if reqData.TotalQuestions == nil {
			errors["total_questions"] = "Total questions is required!"
		} else if *reqData.TotalQuestions < 1 {
			errors["total_questions"] = "Total questions must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("quizID", quizID)
		c.Locals("resultScore", *reqData.Score)
		c.Locals("resultTotal", *reqData.TotalQuestions)
		return c.Next()
	}
}
