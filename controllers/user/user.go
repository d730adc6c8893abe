// User routes carry no authentication or ownership checks: any caller may
// read, mutate or delete any user record by id. The frontend calls these
// routes without a token, so locking them down breaks it.
// TODO: put these routes behind JWTMiddleware once the frontend sends the
// bearer token here too.
package userController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nitinsharma1818/Edusync/config"
	"github.com/nitinsharma1818/Edusync/database"
	"github.com/nitinsharma1818/Edusync/middleware"
	"github.com/nitinsharma1818/Edusync/models"
	"github.com/nitinsharma1818/Edusync/utils"
	userValidator "github.com/nitinsharma1818/Edusync/validators/user"
)

// GetAllUsers lists every user
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// GetUser fetches a single user by id
func GetUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.Database.Db.Where("user_id = ?", c.Params("id")).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

// CreateUser creates a user record directly (register is the usual path)
func CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*userValidator.CreateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"email": "Email is already registered!",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user := models.User{
		UserID:       utils.NewID(),
		Name:         reqData.Name,
		Email:        reqData.Email,
		Role:         reqData.Role,
		PasswordHash: string(hashedPassword),
		Version:      1,
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", user)
}

// UpdateUser replaces name, email and role of a user record
func UpdateUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.Database.Db.Where("user_id = ?", c.Params("id")).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedUserUpdate").(*userValidator.UpdateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Email != user.Email {
		if err := database.Database.Db.Where("email = ? AND user_id <> ?", reqData.Email, user.UserID).First(&models.User{}).Error; err == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"email": "Email is already registered!",
			})
		}
	}

	err := database.UpdateIfUnchanged(database.Database.Db, &models.User{}, "user_id", user.UserID, user.Version, map[string]interface{}{
		"name":  reqData.Name,
		"email": reqData.Email,
		"role":  reqData.Role,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}
	if errors.Is(err, database.ErrConflict) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User was modified concurrently. Please retry!", nil)
	}
	if err != nil {
		log.Printf("Error updating user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	if err := database.Database.Db.Where("user_id = ?", user.UserID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User updated successfully!", user)
}

// DeleteUser removes a user record, hard delete
func DeleteUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.Database.Db.Where("user_id = ?", c.Params("id")).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Where("user_id = ?", user.UserID).Delete(&models.User{}).Error; err != nil {
		log.Printf("Error deleting user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", user)
}
