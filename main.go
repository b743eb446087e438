// @title           MediaLoc CRM API
// @version         1.0
// @description     Role based CRM for localization projects. Sales executives track accounts, projects, tasks and updates; delivery statuses carry QVO or DT production fields.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"

	"github.com/gin-gonic/gin"

	_ "github.com/medialoc/crm-go/docs"

	"github.com/medialoc/crm-go/config"
	"github.com/medialoc/crm-go/db"
	"github.com/medialoc/crm-go/middleware"
	"github.com/medialoc/crm-go/minio"
	"github.com/medialoc/crm-go/routes"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and run migrations
	db.Init()

	// Initialize object storage for update attachments
	minio.InitMinio()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
