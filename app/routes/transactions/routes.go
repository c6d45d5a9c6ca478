package transactions

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/routes/auth"
)

func SetupTransactionsRoutes(app *fiber.App) {
	api := app.Group("/api/transactions")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTransactionsAPI)
}
