package expenses

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/routes/auth"
)

func SetupExpensesRoutes(app *fiber.App) {
	api := app.Group("/api/expenses")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetExpensesAPI)
	api.Post("/", CreateExpenseAPI)
}
