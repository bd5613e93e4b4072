package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fiscus/internal/config"
	"fiscus/internal/database"
	"fiscus/internal/handlers"
	"fiscus/internal/logger"
	"fiscus/internal/middleware"
	"fiscus/internal/services"
	"fiscus/internal/validator"

	_ "fiscus/internal/docs" // Import swagger docs
)

// @title           Fiscus API
// @version         1.0
// @description     Fiscus is a personal budgeting application: monthly budgets per category, transactions recorded against them, and savings goals.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	budgetService := services.NewBudgetService(db)
	goalService := services.NewGoalService(db)
	budgetGuard := services.NewBudgetGuard(db, goalService)
	transactionService := services.NewTransactionService(db)
	incomeService := services.NewIncomeService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, budgetGuard)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	goalHandler := handlers.NewGoalHandler(goalService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.PUT("/:id/spent", budgetHandler.CorrectSpent)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.POST("/:id/transactions", budgetHandler.RecordTransaction)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Goal routes
	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	// Income routes
	incomes := protected.Group("/incomes")
	incomes.POST("", incomeHandler.CreateIncome)
	incomes.GET("", incomeHandler.GetIncomes)
	incomes.GET("/:id", incomeHandler.GetIncome)
	incomes.PUT("/:id", incomeHandler.UpdateIncome)
	incomes.DELETE("/:id", incomeHandler.DeleteIncome)

	log.Infof("Starting Fiscus backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
