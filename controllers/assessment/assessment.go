package assessmentController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/nitinsharma1818/Edusync/database"
	"github.com/nitinsharma1818/Edusync/guard"
	"github.com/nitinsharma1818/Edusync/middleware"
	"github.com/nitinsharma1818/Edusync/models"
	"github.com/nitinsharma1818/Edusync/utils"
	assessmentValidator "github.com/nitinsharma1818/Edusync/validators/assessment"
)

// GetAllAssessments lists every assessment
func GetAllAssessments(c *fiber.Ctx) error {
	var assessments []models.Assessment
	if err := database.Database.Db.Order("created_at desc").Find(&assessments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assessments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessments fetched successfully!", assessments)
}

// GetAssessment fetches a single assessment by id
func GetAssessment(c *fiber.Ctx) error {
	var assessment models.Assessment
	if err := database.Database.Db.Where("assessment_id = ?", c.Params("id")).First(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment fetched successfully!", assessment)
}

// CreateAssessment creates an assessment under the course named in the body.
// The course must exist (404 naming it, before any forbid) and belong to the
// caller.
func CreateAssessment(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAssessment").(*assessmentValidator.AssessmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("course_id = ?", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if decision := guard.AssessmentMutation(claims, course); !decision.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, decision.Reason, nil)
	}

	assessment := models.Assessment{
		AssessmentID: utils.NewID(),
		CourseID:     reqData.CourseID,
		Title:        reqData.Title,
		Questions:    reqData.Questions,
		MaxScore:     reqData.MaxScore,
		Version:      1,
	}

	if err := database.Database.Db.Create(&assessment).Error; err != nil {
		log.Printf("Error saving assessment to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assessment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assessment created successfully!", assessment)
}

// UpdateAssessment replaces the fields of an assessment. Ordering: target
// exists, then its current parent course exists, then the caller owns that
// course, then the optimistic write.
func UpdateAssessment(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var assessment models.Assessment
	if err := database.Database.Db.Where("assessment_id = ?", c.Params("id")).First(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("course_id = ?", assessment.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if decision := guard.AssessmentMutation(claims, course); !decision.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, decision.Reason, nil)
	}

	reqData, ok := c.Locals("validatedAssessmentUpdate").(*assessmentValidator.AssessmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err := database.UpdateIfUnchanged(database.Database.Db, &models.Assessment{}, "assessment_id", assessment.AssessmentID, assessment.Version, map[string]interface{}{
		"course_id": reqData.CourseID,
		"title":     reqData.Title,
		"questions": reqData.Questions,
		"max_score": reqData.MaxScore,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found!", nil)
	}
	if errors.Is(err, database.ErrConflict) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Assessment was modified concurrently. Please retry!", nil)
	}
	if err != nil {
		log.Printf("Error updating assessment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update assessment!", nil)
	}

	if err := database.Database.Db.Where("assessment_id = ?", assessment.AssessmentID).First(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assessment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment updated successfully!", assessment)
}

// DeleteAssessment removes an assessment. Same ordering as update.
func DeleteAssessment(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var assessment models.Assessment
	if err := database.Database.Db.Where("assessment_id = ?", c.Params("id")).First(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment not found!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("course_id = ?", assessment.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if decision := guard.AssessmentMutation(claims, course); !decision.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, decision.Reason, nil)
	}

	if err := database.Database.Db.Where("assessment_id = ?", assessment.AssessmentID).Delete(&models.Assessment{}).Error; err != nil {
		log.Printf("Error deleting assessment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete assessment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessment deleted successfully!", nil)
}
