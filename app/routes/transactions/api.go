package transactions

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/config"
)

// GetTransactionsAPI returns the caller's audit trail with optional
// type/project/date filters plus per-type totals.
func GetTransactionsAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	filters := TransactionFilters{
		Type:      c.Query("type"),
		ProjectID: c.Query("project_id"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Limit:     limit,
	}

	db := config.GetDB()
	txns, err := ListTransactions(db, userID, filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load transactions"})
	}

	summary, err := GetTransactionSummary(db, userID, filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load transaction summary"})
	}

	return c.JSON(fiber.Map{
		"transactions": txns,
		"summary":      summary,
	})
}
