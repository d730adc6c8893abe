package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitinsharma1818/Edusync/config"
	"github.com/nitinsharma1818/Edusync/models"
)

func setupJWTConfig() {
	config.AppConfig = &config.Config{
		JWTKey:           "test-signing-key",
		JWTIssuer:        "edusync-test",
		JWTAudience:      "edusync-client",
		JWTExpiryMinutes: 60,
	}
}

func testUser() models.User {
	return models.User{
		UserID: "user-1",
		Name:   "Nitin",
		Email:  "nitin@example.com",
		Role:   models.RoleInstructor,
	}
}

func TestGenerateAndVerifyToken(t *testing.T) {
	setupJWTConfig()

	token, err := GenerateJWT(testUser())
	require.NoError(t, err)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "nitin@example.com", claims.Email)
	assert.Equal(t, models.RoleInstructor, claims.Role)
	assert.NotEmpty(t, claims.ID) // jti is unique per token
}

func TestTokensCarryUniqueIds(t *testing.T) {
	setupJWTConfig()

	first, err := GenerateJWT(testUser())
	require.NoError(t, err)
	second, err := GenerateJWT(testUser())
	require.NoError(t, err)

	firstClaims, err := VerifyToken(first)
	require.NoError(t, err)
	secondClaims, err := VerifyToken(second)
	require.NoError(t, err)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	setupJWTConfig()
	config.AppConfig.JWTExpiryMinutes = -5

	token, err := GenerateJWT(testUser())
	require.NoError(t, err)

	config.AppConfig.JWTExpiryMinutes = 60

	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	setupJWTConfig()
	config.AppConfig.JWTKey = "some-other-key"

	token, err := GenerateJWT(testUser())
	require.NoError(t, err)

	config.AppConfig.JWTKey = "test-signing-key"

	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongIssuer(t *testing.T) {
	setupJWTConfig()
	config.AppConfig.JWTIssuer = "someone-else"

	token, err := GenerateJWT(testUser())
	require.NoError(t, err)

	config.AppConfig.JWTIssuer = "edusync-test"

	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongAudience(t *testing.T) {
	setupJWTConfig()
	config.AppConfig.JWTAudience = "another-app"

	token, err := GenerateJWT(testUser())
	require.NoError(t, err)

	config.AppConfig.JWTAudience = "edusync-client"

	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	setupJWTConfig()

	_, err := VerifyToken("not.a.token")
	assert.Error(t, err)
}
