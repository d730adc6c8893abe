package assessmentValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nitinsharma1818/Edusync/middleware"
)

// AssessmentRequest is the validated assessment payload for create and update
type AssessmentRequest struct {
	CourseID  string `json:"courseId"`
	Title     string `json:"title"`
	Questions string `json:"questions"`
	MaxScore  int    `json:"maxScore"`
}

func validateAssessment(c *fiber.Ctx, localKey string) error {
	reqData := new(AssessmentRequest)

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)

	if strings.TrimSpace(reqData.CourseID) == "" {
		errors["courseId"] = "Course id is required!"
	}
	if strings.TrimSpace(reqData.Title) == "" {
		errors["title"] = "Title is required!"
	}
	if reqData.MaxScore < 0 {
		errors["maxScore"] = "Max score cannot be negative!"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals(localKey, reqData)
	return c.Next()
}

func CreateAssessment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return validateAssessment(c, "validatedAssessment")
	}
}

func UpdateAssessment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return validateAssessment(c, "validatedAssessmentUpdate")
	}
}
