package accounts

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/routes/auth"
)

func SetupAccountsRoutes(app *fiber.App) {
	api := app.Group("/api/account")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetMainAccountAPI)
	api.Post("/deposit", DepositAPI)
}
