package alerts

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/routes/auth"
)

func SetupAlertsRoutes(app *fiber.App) {
	api := app.Group("/api/alerts")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetAlertsAPI)
	api.Patch("/:id/read", MarkAlertReadAPI)
}
