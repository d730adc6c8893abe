package courseRoutes

import (
	courseControllers "github.com/nitinsharma1818/Edusync/controllers/course"
	"github.com/nitinsharma1818/Edusync/middleware"
	courseValidators "github.com/nitinsharma1818/Edusync/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers the course CRUD surface. Every route requires
// a bearer token; ownership checks happen in the controllers.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses", middleware.JWTMiddleware)

	courseGroup.Get("/", courseControllers.GetAllCourses)
	courseGroup.Get("/instructor/:instructorId", courseControllers.GetInstructorCourses)
	courseGroup.Get("/:id/assessments", courseControllers.GetCourseAssessments)
	courseGroup.Get("/:id", courseControllers.GetCourse)
	courseGroup.Post("/", courseValidators.CreateCourse(), courseControllers.CreateCourse)
	courseGroup.Put("/:id", courseValidators.UpdateCourse(), courseControllers.UpdateCourse)
	courseGroup.Delete("/:id", courseControllers.DeleteCourse)
}
