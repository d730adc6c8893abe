package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/nitinsharma1818/Edusync/config"
	"github.com/nitinsharma1818/Edusync/database"
	assessmentRoutes "github.com/nitinsharma1818/Edusync/routers/assessmentRoutes"
	authRoutes "github.com/nitinsharma1818/Edusync/routers/authRoutes"
	courseRoutes "github.com/nitinsharma1818/Edusync/routers/courseRoutes"
	resultRoutes "github.com/nitinsharma1818/Edusync/routers/resultRoutes"
	userRoutes "github.com/nitinsharma1818/Edusync/routers/userRoutes"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	assessmentRoutes.SetupAssessmentRoutes(app)
	resultRoutes.SetupResultRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
