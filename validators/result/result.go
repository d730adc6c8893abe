package resultValidator

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nitinsharma1818/Edusync/middleware"
)

// ResultRequest is the validated result payload for create and update
type ResultRequest struct {
	AssessmentID string    `json:"assessmentId"`
	UserID       string    `json:"userId"`
	Score        int       `json:"score"`
	AttemptDate  time.Time `json:"attemptDate"`
}

// DeleteResultRequest carries the result id for the body-based delete route
type DeleteResultRequest struct {
	ResultID string `json:"resultId"`
}

func validateResult(c *fiber.Ctx, localKey string) error {
	reqData := new(ResultRequest)

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)

	if strings.TrimSpace(reqData.AssessmentID) == "" {
		errors["assessmentId"] = "Assessment id is required!"
	}
	if strings.TrimSpace(reqData.UserID) == "" {
		errors["userId"] = "User id is required!"
	}
	if reqData.Score < 0 {
		errors["score"] = "Score cannot be negative!"
	}
	if reqData.AttemptDate.IsZero() {
		errors["attemptDate"] = "Attempt date is required!"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals(localKey, reqData)
	return c.Next()
}

func CreateResult() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return validateResult(c, "validatedResult")
	}
}

func UpdateResult() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return validateResult(c, "validatedResultUpdate")
	}
}

func DeleteResult() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DeleteResultRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.ResultID) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"resultId": "Result id is required!",
			})
		}

		c.Locals("validatedResultDelete", reqData)
		return c.Next()
	}
}
