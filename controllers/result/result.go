// Result routes carry no authentication or ownership checks: results are
// treated as attempt telemetry, writable by any caller. The frontend posts
// them without a token.
// TODO: decide whether results should be locked to the test-taker or the
// course owner, then guard these routes.
package resultController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/nitinsharma1818/Edusync/database"
	"github.com/nitinsharma1818/Edusync/middleware"
	"github.com/nitinsharma1818/Edusync/models"
	"github.com/nitinsharma1818/Edusync/utils"
	resultValidator "github.com/nitinsharma1818/Edusync/validators/result"
)

// GetAllResults lists every result
func GetAllResults(c *fiber.Ctx) error {
	var results []models.Result
	if err := database.Database.Db.Order("attempt_date desc").Find(&results).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch results!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results fetched successfully!", results)
}

// GetResult fetches a single result by id
func GetResult(c *fiber.Ctx) error {
	var result models.Result
	if err := database.Database.Db.Where("result_id = ?", c.Params("id")).First(&result).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Result not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Result fetched successfully!", result)
}

// GetUserResults lists all results recorded for a user
func GetUserResults(c *fiber.Ctx) error {
	var results []models.Result
	if err := database.Database.Db.Where("user_id = ?", c.Params("userId")).Order("attempt_date desc").Find(&results).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch results!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results fetched successfully!", results)
}

// GetAssessmentResults lists all results recorded for an assessment
func GetAssessmentResults(c *fiber.Ctx) error {
	var results []models.Result
	if err := database.Database.Db.Where("assessment_id = ?", c.Params("assessmentId")).Order("attempt_date desc").Find(&results).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch results!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results fetched successfully!", results)
}

// CreateResult records a new attempt
func CreateResult(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResult").(*resultValidator.ResultRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result := models.Result{
		ResultID:     utils.NewID(),
		AssessmentID: reqData.AssessmentID,
		UserID:       reqData.UserID,
		Score:        reqData.Score,
		AttemptDate:  reqData.AttemptDate,
		Version:      1,
	}

	if err := database.Database.Db.Create(&result).Error; err != nil {
		log.Printf("Error saving result to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Result created successfully!", result)
}

// UpdateResult replaces the fields of a result
func UpdateResult(c *fiber.Ctx) error {
	var result models.Result
	if err := database.Database.Db.Where("result_id = ?", c.Params("id")).First(&result).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Result not found!", nil)
	}

	reqData, ok := c.Locals("validatedResultUpdate").(*resultValidator.ResultRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err := database.UpdateIfUnchanged(database.Database.Db, &models.Result{}, "result_id", result.ResultID, result.Version, map[string]interface{}{
		"assessment_id": reqData.AssessmentID,
		"user_id":       reqData.UserID,
		"score":         reqData.Score,
		"attempt_date":  reqData.AttemptDate,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Result not found!", nil)
	}
	if errors.Is(err, database.ErrConflict) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Result was modified concurrently. Please retry!", nil)
	}
	if err != nil {
		log.Printf("Error updating result: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update result!", nil)
	}

	if err := database.Database.Db.Where("result_id = ?", result.ResultID).First(&result).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Result updated successfully!", result)
}

// DeleteResult removes a result by path id
func DeleteResult(c *fiber.Ctx) error {
	return deleteResultByID(c, c.Params("id"))
}

// DeleteResultByBody removes a result whose id is carried in the body
func DeleteResultByBody(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResultDelete").(*resultValidator.DeleteResultRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	return deleteResultByID(c, reqData.ResultID)
}

func deleteResultByID(c *fiber.Ctx, id string) error {
	var result models.Result
	if err := database.Database.Db.Where("result_id = ?", id).First(&result).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Result not found!", nil)
	}

	if err := database.Database.Db.Where("result_id = ?", result.ResultID).Delete(&models.Result{}).Error; err != nil {
		log.Printf("Error deleting result: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Result deleted successfully!", nil)
}
