package projects

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/routes/auth"
)

func SetupProjectsRoutes(app *fiber.App) {
	api := app.Group("/api/projects")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetProjectsAPI)
	api.Post("/", CreateProjectAPI)
	api.Get("/balances", GetProjectBalancesAPI)
	api.Post("/allocate", AllocateFundsAPI)
	api.Post("/transfer", TransferFundsAPI)
	api.Get("/:id", GetProjectAPI)
	api.Put("/:id", UpdateProjectAPI)
	api.Delete("/:id", DeleteProjectAPI)
}
