package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nitinsharma1818/Edusync/middleware"
)

// CourseRequest is the validated course payload for create and update.
// An instructorId smuggled into the body is dropped at parse time: the
// owner is always derived from the caller's token.
type CourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	MediaUrl    *string `json:"mediaUrl"`
	Level       *string `json:"level"`
	Category    *string `json:"category"`
	Duration    *string `json:"duration"`
	Status      *string `json:"status"`
	Price       float64 `json:"price"`
}

func validateCourse(c *fiber.Ctx, localKey string) error {
	reqData := new(CourseRequest)

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)

	if strings.TrimSpace(reqData.Title) == "" {
		errors["title"] = "Title is required!"
	}
	if reqData.Price < 0 {
		errors["price"] = "Price cannot be negative!"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals(localKey, reqData)
	return c.Next()
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return validateCourse(c, "validatedCourse")
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return validateCourse(c, "validatedCourseUpdate")
	}
}
