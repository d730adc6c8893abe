package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	SaltRound int

	JWTKey           string
	JWTIssuer        string
	JWTAudience      string
	JWTExpiryMinutes int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults.
// The JWT settings have no defaults: tokens signed against a guessed secret or
// validated against a guessed issuer are worthless, so missing values are fatal.
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "5122"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		JWTKey:           mustEnv("JWT_KEY"),
		JWTIssuer:        mustEnv("JWT_ISSUER"),
		JWTAudience:      mustEnv("JWT_AUDIENCE"),
		JWTExpiryMinutes: getEnvInt("JWT_EXPIRY_MINUTES", 60),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// mustEnv retrieves a required environment variable or aborts startup
func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s not configured", key)
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
