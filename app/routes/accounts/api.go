package accounts

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/config"
	"github.com/nida-ullah/finance-app/app/database"
	"github.com/shopspring/decimal"
)

func GetMainAccountAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	account, err := database.GetMainAccountByUserID(config.GetDB(), userID)
	if err != nil {
		if errors.Is(err, database.ErrAccountNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Main account not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(account)
}

// DepositAPI adds funds to the caller's main account.
func DepositAPI(c *fiber.Ctx) error {
	type DepositRequest struct {
		Amount      decimal.Decimal `json:"amount"`
		Description string          `json:"description"`
	}

	var req DepositRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	userID := c.Locals("user_id").(string)
	balance, err := database.Deposit(config.GetDB(), userID, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, database.ErrAccountNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Main account not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add funds"})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Funds added successfully",
		"balance": balance,
	})
}
