package categories

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/config"
	"github.com/nida-ullah/finance-app/app/database"
	"github.com/nida-ullah/finance-app/app/models"
)

func GetCategoriesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	categories, err := GetCategoriesByUser(config.GetDB(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load categories"})
	}
	return c.JSON(categories)
}

func CreateCategoryAPI(c *fiber.Ctx) error {
	var cat models.Category
	if err := c.BodyParser(&cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if cat.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category name is required"})
	}
	if cat.Type == "" {
		cat.Type = models.CategoryExpense
	}
	if cat.Color == "" {
		cat.Color = "#3498db"
	}
	cat.UserID = c.Locals("user_id").(string)

	if err := CreateCategory(config.GetDB(), &cat); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create category"})
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func UpdateCategoryAPI(c *fiber.Ctx) error {
	var cat models.Category
	if err := c.BodyParser(&cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	cat.ID = c.Params("id")
	cat.UserID = c.Locals("user_id").(string)

	if err := UpdateCategory(config.GetDB(), &cat); err != nil {
		if errors.Is(err, database.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update category"})
	}
	return c.JSON(cat)
}

func DeleteCategoryAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := DeleteCategory(config.GetDB(), userID, c.Params("id")); err != nil {
		if errors.Is(err, database.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete category"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
