package authRoutes

import (
	authControllers "github.com/nitinsharma1818/Edusync/controllers/auth"
	"github.com/nitinsharma1818/Edusync/middleware"
	authValidators "github.com/nitinsharma1818/Edusync/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/profile", middleware.JWTMiddleware, authControllers.Profile)
}
