package categories

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/routes/auth"
)

func SetupCategoriesRoutes(app *fiber.App) {
	api := app.Group("/api/categories")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetCategoriesAPI)
	api.Post("/", CreateCategoryAPI)
	api.Put("/:id", UpdateCategoryAPI)
	api.Delete("/:id", DeleteCategoryAPI)
}
