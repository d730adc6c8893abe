package middleware

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/nitinsharma1818/Edusync/config"
	"github.com/nitinsharma1818/Edusync/guard"
	"github.com/nitinsharma1818/Edusync/models"
)

// UserClaims is the token payload: subject carries the user id
type UserClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT generates a signed bearer token for the user
func GenerateJWT(user models.User) (string, error) {
	now := time.Now()
	claims := UserClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			ID:        uuid.NewString(),
			Issuer:    config.AppConfig.JWTIssuer,
			Audience:  jwt.ClaimStrings{config.AppConfig.JWTAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(config.AppConfig.JWTExpiryMinutes) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// VerifyToken parses and validates a bearer token. Signature, expiry (no
// leeway), issuer and audience must all check out; the caller only learns
// that the token failed, never why.
func VerifyToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token payload")
	}
	if !claims.VerifyIssuer(config.AppConfig.JWTIssuer, true) {
		return nil, fmt.Errorf("invalid token issuer")
	}
	if !claims.VerifyAudience(config.AppConfig.JWTAudience, true) {
		return nil, fmt.Errorf("invalid token audience")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	return claims, nil
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header!", nil)
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format!", nil)
	}

	tokenString := authHeader[len("Bearer "):]

	claims, err := VerifyToken(tokenString)
	if err != nil {
		// The cause stays in the logs; callers see one collapsed failure
		log.Printf("Token rejected: %v", err)
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token!", nil)
	}

	c.Locals("userId", claims.Subject)
	c.Locals("email", claims.Email)
	c.Locals("role", claims.Role)

	return c.Next()
}

// ClaimsFromCtx rebuilds the caller's claims set by JWTMiddleware
func ClaimsFromCtx(c *fiber.Ctx) (guard.Claims, bool) {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return guard.Claims{}, false
	}
	email, _ := c.Locals("email").(string)
	role, _ := c.Locals("role").(string)
	return guard.Claims{UserID: userID, Email: email, Role: role}, true
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
