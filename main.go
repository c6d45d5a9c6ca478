package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nida-ullah/finance-app/app/config"
	"github.com/nida-ullah/finance-app/app/database"
	"github.com/nida-ullah/finance-app/app/routes/accounts"
	"github.com/nida-ullah/finance-app/app/routes/alerts"
	"github.com/nida-ullah/finance-app/app/routes/auth"
	"github.com/nida-ullah/finance-app/app/routes/categories"
	"github.com/nida-ullah/finance-app/app/routes/expenses"
	"github.com/nida-ullah/finance-app/app/routes/projects"
	"github.com/nida-ullah/finance-app/app/routes/reports"
	"github.com/nida-ullah/finance-app/app/routes/transactions"
)

// customErrorHandler renders every error as a JSON envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := config.GetDB().Ping(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unhealthy"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	accounts.SetupAccountsRoutes(app)
	projects.SetupProjectsRoutes(app)
	expenses.SetupExpensesRoutes(app)
	categories.SetupCategoriesRoutes(app)
	transactions.SetupTransactionsRoutes(app)
	alerts.SetupAlertsRoutes(app)
	reports.SetupReportsRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
