package userRoutes

import (
	userControllers "github.com/nitinsharma1818/Edusync/controllers/user"
	userValidators "github.com/nitinsharma1818/Edusync/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes registers the user CRUD surface. Deliberately NOT behind
// JWTMiddleware: the frontend calls these routes without a token.
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	userGroup.Get("/", userControllers.GetAllUsers)
	userGroup.Get("/:id", userControllers.GetUser)
	userGroup.Post("/", userValidators.CreateUser(), userControllers.CreateUser)
	userGroup.Put("/:id", userValidators.UpdateUser(), userControllers.UpdateUser)
	userGroup.Delete("/:id", userControllers.DeleteUser)
}
