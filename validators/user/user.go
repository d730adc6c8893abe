package userValidator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nitinsharma1818/Edusync/middleware"
	"github.com/nitinsharma1818/Edusync/models"
)

var validate = validator.New()

// CreateUserRequest is the validated payload for the admin-style user create
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// UpdateUserRequest is the validated payload for a profile update
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func validateCommon(name, email, role string) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(name) == "" {
		errors["name"] = "Name is required!"
	}

	if strings.TrimSpace(email) == "" {
		errors["email"] = "Email is required!"
	} else if err := validate.Var(email, "email"); err != nil {
		errors["email"] = "Email is not a valid email address!"
	}

	if strings.TrimSpace(role) == "" {
		errors["role"] = "Role is required!"
	} else if !models.IsValidRole(role) {
		errors["role"] = "Role must be either 'Student' or 'Instructor'!"
	}

	return errors
}

func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateCommon(reqData.Name, reqData.Email, reqData.Role)
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validateCommon(reqData.Name, reqData.Email, reqData.Role)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserUpdate", reqData)
		return c.Next()
	}
}
