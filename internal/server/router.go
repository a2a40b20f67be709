// Package server assembles the HTTP router.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "theark/internal/docs" // Import swagger docs
	"theark/internal/handlers"
	"theark/internal/middleware"
	"theark/internal/services"
	"theark/internal/validator"
)

// Deps are the collaborators the router wires into its handlers.
type Deps struct {
	AuthService   services.AuthServicer
	LedgerService services.LedgerServicer
	SecureCookie  bool
	// Now is the clock used for form defaults and the default month.
	Now func() time.Time
}

// NewRouter builds the Gin engine with every route of the application.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	validator.Register()

	authHandler := handlers.NewAuthHandler(deps.AuthService, deps.SecureCookie)
	entryHandler := handlers.NewEntryHandler(deps.LedgerService, deps.Now)
	taxonomyHandler := handlers.NewTaxonomyHandler(deps.Now)
	dashboardHandler := handlers.NewDashboardHandler(deps.LedgerService, deps.Now)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.AccessGate(deps.AuthService))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	router.GET("/", authHandler.LoginPage)
	router.GET("/api/health", handlers.Health)
	router.POST("/api/login", authHandler.Login)
	router.POST("/api/login/logout", authHandler.Logout)
	router.POST("/api/logout", authHandler.Logout)

	// Routes under /app are guarded by the access gate
	router.GET(middleware.ProtectedPrefix, dashboardHandler.GetDashboard)

	api := router.Group(middleware.ProtectedPrefix + "/api")
	api.GET("/taxonomy", taxonomyHandler.GetTaxonomy)
	api.GET("/forms/expense", taxonomyHandler.ExpenseForm)
	api.GET("/forms/income", taxonomyHandler.IncomeForm)
	api.POST("/entries", entryHandler.CreateEntry)
	api.GET("/entries", entryHandler.ListEntries)
	api.GET("/summary", entryHandler.GetSummary)

	return router
}
