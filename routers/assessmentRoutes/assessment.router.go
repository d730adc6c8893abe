package assessmentRoutes

import (
	assessmentControllers "github.com/nitinsharma1818/Edusync/controllers/assessment"
	"github.com/nitinsharma1818/Edusync/middleware"
	assessmentValidators "github.com/nitinsharma1818/Edusync/validators/assessment"

	"github.com/gofiber/fiber/v2"
)

// SetupAssessmentRoutes registers the assessment CRUD surface. Mutations are
// authorized against the owner of the parent course.
func SetupAssessmentRoutes(app *fiber.App) {
	assessmentGroup := app.Group("/api/assessments", middleware.JWTMiddleware)

	assessmentGroup.Get("/", assessmentControllers.GetAllAssessments)
	assessmentGroup.Get("/:id", assessmentControllers.GetAssessment)
	assessmentGroup.Post("/", assessmentValidators.CreateAssessment(), assessmentControllers.CreateAssessment)
	assessmentGroup.Put("/:id", assessmentValidators.UpdateAssessment(), assessmentControllers.UpdateAssessment)
	assessmentGroup.Delete("/:id", assessmentControllers.DeleteAssessment)
}
