package resultRoutes

import (
	resultControllers "github.com/nitinsharma1818/Edusync/controllers/result"
	resultValidators "github.com/nitinsharma1818/Edusync/validators/result"

	"github.com/gofiber/fiber/v2"
)

// SetupResultRoutes registers the result CRUD surface. Deliberately NOT
// behind JWTMiddleware: the frontend calls these routes without a token.
func SetupResultRoutes(app *fiber.App) {
	resultGroup := app.Group("/api/results")

	resultGroup.Get("/", resultControllers.GetAllResults)
	resultGroup.Get("/user/:userId", resultControllers.GetUserResults)
	resultGroup.Get("/assessment/:assessmentId", resultControllers.GetAssessmentResults)
	resultGroup.Get("/:id", resultControllers.GetResult)
	resultGroup.Post("/", resultValidators.CreateResult(), resultControllers.CreateResult)
	resultGroup.Put("/:id", resultValidators.UpdateResult(), resultControllers.UpdateResult)
	resultGroup.Delete("/:id", resultControllers.DeleteResult)
	resultGroup.Delete("/", resultValidators.DeleteResult(), resultControllers.DeleteResultByBody)
}
