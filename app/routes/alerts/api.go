package alerts

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/config"
	"github.com/nida-ullah/finance-app/app/database"
)

func GetAlertsAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	unreadOnly := c.Query("unread_only") == "true"

	db := config.GetDB()
	alerts, err := GetAlertsByUser(db, userID, unreadOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load alerts"})
	}

	unread, total, err := CountAlerts(db, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count alerts"})
	}

	return c.JSON(fiber.Map{
		"alerts":       alerts,
		"unread_count": unread,
		"total_count":  total,
	})
}

func MarkAlertReadAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := MarkAlertRead(config.GetDB(), userID, c.Params("id")); err != nil {
		if errors.Is(err, database.ErrAlertNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Alert not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update alert"})
	}

	return c.JSON(fiber.Map{"message": "Alert marked as read"})
}
