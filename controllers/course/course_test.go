package courseController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nitinsharma1818/Edusync/config"
	"github.com/nitinsharma1818/Edusync/database"
	"github.com/nitinsharma1818/Edusync/models"
	assessmentRoutes "github.com/nitinsharma1818/Edusync/routers/assessmentRoutes"
	authRoutes "github.com/nitinsharma1818/Edusync/routers/authRoutes"
	courseRoutes "github.com/nitinsharma1818/Edusync/routers/courseRoutes"
)

func setupTest(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:             "0",
		SaltRound:        bcrypt.MinCost,
		JWTKey:           "test-signing-key",
		JWTIssuer:        "edusync-test",
		JWTAudience:      "edusync-client",
		JWTExpiryMinutes: 60,
	}

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	assessmentRoutes.SetupAssessmentRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func data(t *testing.T, parsed map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := parsed["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", parsed)
	return d
}

// registerUser creates an account through the API and returns (token, userId)
func registerUser(t *testing.T, app *fiber.App, name, email, role string) (string, string) {
	t.Helper()

	code, parsed := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"role":     role,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, code, "register failed: %v", parsed)

	d := data(t, parsed)
	token := d["token"].(string)
	user := d["user"].(map[string]interface{})
	return token, user["userId"].(string)
}

func createCourse(t *testing.T, app *fiber.App, token, title string) string {
	t.Helper()

	code, parsed := doRequest(t, app, http.MethodPost, "/api/courses", token, fiber.Map{
		"title":       title,
		"description": "about " + title,
		"price":       49.99,
	})
	require.Equal(t, http.StatusCreated, code, "create course failed: %v", parsed)
	return data(t, parsed)["courseId"].(string)
}

func TestCourseRoutesRequireAuth(t *testing.T) {
	app := setupTest(t)

	code, _ := doRequest(t, app, http.MethodGet, "/api/courses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doRequest(t, app, http.MethodPost, "/api/courses", "", fiber.Map{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doRequest(t, app, http.MethodGet, "/api/courses", "Bearer garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestCreateCourseForcesOwnerToCaller(t *testing.T) {
	app := setupTest(t)
	token, instructorID := registerUser(t, app, "X", "x@example.com", models.RoleInstructor)

	// The body smuggles a different owner; it must be ignored
	code, parsed := doRequest(t, app, http.MethodPost, "/api/courses", token, fiber.Map{
		"title":        "Intro to X",
		"description":  "fundamentals",
		"price":        10.0,
		"instructorId": "someone-else",
	})
	require.Equal(t, http.StatusCreated, code)

	created := data(t, parsed)
	assert.Equal(t, instructorID, created["instructorId"])

	// Round-trip: fetch returns what was sent, owner aside
	code, parsed = doRequest(t, app, http.MethodGet, "/api/courses/"+created["courseId"].(string), token, nil)
	require.Equal(t, http.StatusOK, code)
	fetched := data(t, parsed)
	assert.Equal(t, "Intro to X", fetched["title"])
	assert.Equal(t, "fundamentals", fetched["description"])
	assert.Equal(t, 10.0, fetched["price"])
	assert.Equal(t, instructorID, fetched["instructorId"])
}

func TestCreateIsNotIdempotent(t *testing.T) {
	app := setupTest(t)
	token, _ := registerUser(t, app, "X", "x@example.com", models.RoleInstructor)

	first := createCourse(t, app, token, "Same Title")
	second := createCourse(t, app, token, "Same Title")
	assert.NotEqual(t, first, second)
}

func TestUpdateCourseOwnerOnly(t *testing.T) {
	app := setupTest(t)
	tokenX, _ := registerUser(t, app, "X", "x@example.com", models.RoleInstructor)
	tokenY, _ := registerUser(t, app, "Y", "y@example.com", models.RoleInstructor)

	courseID := createCourse(t, app, tokenX, "Intro to X")

	// Another instructor may not touch it
	code, _ := doRequest(t, app, http.MethodPut, "/api/courses/"+courseID, tokenY, fiber.Map{
		"title": "hijacked",
	})
	assert.Equal(t, http.StatusForbidden, code)

	// And the record is unchanged in storage
	code, parsed := doRequest(t, app, http.MethodGet, "/api/courses/"+courseID, tokenX, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Intro to X", data(t, parsed)["title"])

	// The owner may
	code, parsed = doRequest(t, app, http.MethodPut, "/api/courses/"+courseID, tokenX, fiber.Map{
		"title":       "Intro to X, 2nd ed",
		"description": "updated",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Intro to X, 2nd ed", data(t, parsed)["title"])

	code, parsed = doRequest(t, app, http.MethodGet, "/api/courses/"+courseID, tokenX, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Intro to X, 2nd ed", data(t, parsed)["title"])
}

func TestDeleteCourseOwnerOnly(t *testing.T) {
	app := setupTest(t)
	tokenX, _ := registerUser(t, app, "X", "x@example.com", models.RoleInstructor)
	tokenY, _ := registerUser(t, app, "Y", "y@example.com", models.RoleInstructor)

	courseID := createCourse(t, app, tokenX, "Intro to X")

	code, _ := doRequest(t, app, http.MethodDelete, "/api/courses/"+courseID, tokenY, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doRequest(t, app, http.MethodDelete, "/api/courses/"+courseID, tokenX, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = doRequest(t, app, http.MethodGet, "/api/courses/"+courseID, tokenX, nil)
	assert.Equal(t, http.StatusNotFound, code)

	// Creating an assessment against the deleted course names the course
	code, parsed := doRequest(t, app, http.MethodPost, "/api/assessments", tokenX, fiber.Map{
		"courseId":  courseID,
		"title":     "Quiz 1",
		"questions": "[]",
		"maxScore":  10,
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Course not found!", parsed["message"])
}

func TestConcurrentUpdateLoserGetsConflict(t *testing.T) {
	app := setupTest(t)
	token, _ := registerUser(t, app, "X", "x@example.com", models.RoleInstructor)

	courseID := createCourse(t, app, token, "Intro to X")

	// Simulate a stale read-modify-write: another writer bumped the version
	// after this request loaded the course but before its guarded update.
	db := database.Database.Db
	var loaded models.Course
	require.NoError(t, db.Where("course_id = ?", courseID).First(&loaded).Error)
	require.NoError(t, database.UpdateIfUnchanged(db, &models.Course{}, "course_id", courseID, loaded.Version, map[string]interface{}{
		"title": "winner",
	}))

	err := database.UpdateIfUnchanged(db, &models.Course{}, "course_id", courseID, loaded.Version, map[string]interface{}{
		"title": "loser",
	})
	assert.ErrorIs(t, err, database.ErrConflict)

	code, parsed := doRequest(t, app, http.MethodGet, "/api/courses/"+courseID, token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "winner", data(t, parsed)["title"])
}

func TestGetInstructorCoursesOwnListOnly(t *testing.T) {
	app := setupTest(t)
	tokenX, idX := registerUser(t, app, "X", "x@example.com", models.RoleInstructor)
	tokenY, idY := registerUser(t, app, "Y", "y@example.com", models.RoleInstructor)

	createCourse(t, app, tokenX, "Course A")
	createCourse(t, app, tokenX, "Course B")
	createCourse(t, app, tokenY, "Course C")

	code, parsed := doRequest(t, app, http.MethodGet, "/api/courses/instructor/"+idX, tokenX, nil)
	require.Equal(t, http.StatusOK, code)
	list, ok := parsed["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, list, 2)

	// Reading someone else's list is forbidden
	code, _ = doRequest(t, app, http.MethodGet, "/api/courses/instructor/"+idY, tokenX, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestGetCourseAssessmentsOwnerOnly(t *testing.T) {
	app := setupTest(t)
	tokenX, _ := registerUser(t, app, "X", "x@example.com", models.RoleInstructor)
	tokenY, _ := registerUser(t, app, "Y", "y@example.com", models.RoleInstructor)

	courseID := createCourse(t, app, tokenX, "Intro to X")

	code, parsed := doRequest(t, app, http.MethodPost, "/api/assessments", tokenX, fiber.Map{
		"courseId":  courseID,
		"title":     "Quiz 1",
		"questions": `[{"q":"2+2?"}]`,
		"maxScore":  10,
	})
	require.Equal(t, http.StatusCreated, code, "create assessment failed: %v", parsed)

	code, parsed = doRequest(t, app, http.MethodGet, "/api/courses/"+courseID+"/assessments", tokenX, nil)
	require.Equal(t, http.StatusOK, code)
	list, ok := parsed["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, list, 1)

	code, _ = doRequest(t, app, http.MethodGet, "/api/courses/"+courseID+"/assessments", tokenY, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doRequest(t, app, http.MethodGet, "/api/courses/missing-id/assessments", tokenX, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateCourseValidation(t *testing.T) {
	app := setupTest(t)
	token, _ := registerUser(t, app, "X", "x@example.com", models.RoleInstructor)

	code, _ := doRequest(t, app, http.MethodPost, "/api/courses", token, fiber.Map{
		"description": "no title",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = doRequest(t, app, http.MethodPost, "/api/courses", token, fiber.Map{
		"title": "Negative",
		"price": -1.0,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}
