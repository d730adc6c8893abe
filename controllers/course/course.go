package courseController

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
	courseValidator "github.com/nitinsharma1818/Edusync/validators/course"
)

// GetAllCourses lists every course
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourse fetches a single course by id
func GetCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := database.Database.Db.Where("course_id = ?", c.Params("id")).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// GetInstructorCourses lists the courses owned by an instructor. Callers may
// only read their own list.
func GetInstructorCourses(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	instructorID := c.Params("instructorId")
	if decision := guard.InstructorCourses(claims, instructorID); !decision.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, decision.Reason, nil)
	}

	var courses []models.Course
	if err := database.Database.Db.Where("instructor_id = ?", instructorID).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseAssessments lists the assessments of a course. Existence first,
// then ownership: a missing course is 404 before any forbid.
func GetCourseAssessments(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("course_id = ?", c.Params("id")).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if decision := guard.CourseMutation(claims, course); !decision.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, decision.Reason, nil)
	}

	var assessments []models.Assessment
	if err := database.Database.Db.Where("course_id = ?", course.CourseID).Find(&assessments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assessments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessments fetched successfully!", assessments)
}

// CreateCourse creates a course owned by the caller. Any authenticated user
// may create one, and the owner is always the caller regardless of the body.
// TODO: restrict creation to Instructor role once product intent is settled.
func CreateCourse(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		CourseID:     utils.NewID(),
		Title:        reqData.Title,
		Description:  reqData.Description,
		InstructorID: claims.UserID,
		MediaUrl:     reqData.MediaUrl,
		Level:        reqData.Level,
		Category:     reqData.Category,
		Duration:     reqData.Duration,
		Status:       reqData.Status,
		Price:        reqData.Price,
		Version:      1,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error saving course to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse replaces the mutable fields of a course. Owner only. The
// write is guarded by the version read here; a racing writer turns it into
// a retryable conflict instead of a silent overwrite.
func UpdateCourse(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("course_id = ?", c.Params("id")).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if decision := guard.CourseMutation(claims, course); !decision.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, decision.Reason, nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err := database.UpdateIfUnchanged(database.Database.Db, &models.Course{}, "course_id", course.CourseID, course.Version, map[string]interface{}{
		"title":       reqData.Title,
		"description": reqData.Description,
		"media_url":   reqData.MediaUrl,
		"level":       reqData.Level,
		"category":    reqData.Category,
		"duration":    reqData.Duration,
		"status":      reqData.Status,
		"price":       reqData.Price,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if errors.Is(err, database.ErrConflict) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course was modified concurrently. Please retry!", nil)
	}
	if err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	if err := database.Database.Db.Where("course_id = ?", course.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course. Owner only, hard delete.
func DeleteCourse(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("course_id = ?", c.Params("id")).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if decision := guard.CourseMutation(claims, course); !decision.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, decision.Reason, nil)
	}

	if err := database.Database.Db.Where("course_id = ?", course.CourseID).Delete(&models.Course{}).Error; err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
