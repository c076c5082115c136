package server

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "taxfile-api/docs"
	"taxfile-api/internal/handlers"
	"taxfile-api/internal/logger"
	"taxfile-api/internal/middleware"
)

// Handler definitions
var (
	taxHandler *handlers.TaxHandler
)

// InitializeHandlers wires handler dependencies from the environment.
// IRS_EFIN feeds response metadata only and is optional; nothing in the
// environment affects calculation or validation results.
func InitializeHandlers() {
	commonServices := handlers.NewCommonServices(os.Getenv("IRS_EFIN"))
	taxHandler = handlers.NewTaxHandler(commonServices)
}

// InitializeRoutes registers middleware and the API surface
func InitializeRoutes(router *gin.Engine) {
	if logger.Log == nil {
		logger.InitLogger("")
	}

	router.Use(configureCORS())
	router.Use(middleware.CorrelationID())

	rateLimiter := middleware.NewRateLimiter(rateLimitPerSecond(), rateLimitBurst())
	router.Use(rateLimiter.Middleware())

	// Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		tax := v1.Group("/tax")
		{
			tax.POST("/calculate", taxHandler.CalculateTaxReturn)
			tax.GET("/calculate", taxHandler.GetStandardDeductions)
			tax.GET("/brackets", taxHandler.GetTaxBrackets)
			tax.POST("/validate", taxHandler.ValidateTaxReturn)
		}
	}
}

func rateLimitPerSecond() int {
	// Calculation is microseconds of arithmetic; the default is generous.
	return 50
}

func rateLimitBurst() int {
	return 100
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.CorrelationIDHeader}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
