package reports

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/config"
	"github.com/nida-ullah/finance-app/app/database"
)

// GetReportAPI dispatches on the report type. The window is the last
// `period` days (default 30), ending now.
func GetReportAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	reportType := c.Query("type", "overview")

	period := 30
	if v := c.Query("period"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid period"})
		}
		period = n
	}

	end := time.Now()
	start := end.AddDate(0, 0, -period)
	db := config.GetDB()

	switch reportType {
	case "overview":
		report, err := database.GetOverviewReport(db, userID, start, end, period)
		if err != nil {
			if errors.Is(err, database.ErrAccountNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Main account not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build overview report"})
		}
		return c.JSON(report)

	case "categories":
		rows, err := database.GetCategoryReport(db, userID, start, end)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build category report"})
		}
		return c.JSON(fiber.Map{"categories": rows})

	case "projects":
		rows, err := database.GetProjectReport(db, userID, start, end)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build project report"})
		}
		return c.JSON(fiber.Map{"projects": rows})

	case "trends":
		report, err := database.GetTrendsReport(db, userID, start, end)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build trends report"})
		}
		return c.JSON(report)

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid report type"})
	}
}
