package reports

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/routes/auth"
)

func SetupReportsRoutes(app *fiber.App) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetReportAPI)
}
