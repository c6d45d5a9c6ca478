package expenses

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/config"
	"github.com/nida-ullah/finance-app/app/database"
	"github.com/shopspring/decimal"
)

func GetExpensesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	filters := ExpenseFilters{
		CategoryID: c.Query("category"),
		ProjectID:  c.Query("project"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
	}

	expenses, err := ListExpenses(config.GetDB(), userID, filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load expenses"})
	}
	return c.JSON(expenses)
}

// CreateExpenseAPI records spending against a project: the project budget is
// decremented, the expense and its audit transaction are written, and budget
// alerts are derived from the post-spend state, all atomically.
func CreateExpenseAPI(c *fiber.Ctx) error {
	type CreateExpenseRequest struct {
		ProjectID   string          `json:"project_id"`
		CategoryID  *string         `json:"category_id"`
		Amount      decimal.Decimal `json:"amount"`
		Description string          `json:"description"`
		Tags        string          `json:"tags"`
		ReceiptURL  string          `json:"receipt_url"`
	}

	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.ProjectID == "" || req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Project and description are required"})
	}

	expense, err := database.Spend(config.GetDB(), database.SpendParams{
		UserID:      c.Locals("user_id").(string),
		ProjectID:   req.ProjectID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
		Tags:        req.Tags,
		ReceiptURL:  req.ReceiptURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, database.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, database.ErrInsufficientBudget):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Insufficient project budget"})
		case errors.Is(err, database.ErrProjectNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		case errors.Is(err, database.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add expense"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(expense)
}
