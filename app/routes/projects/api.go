package projects

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nida-ullah/finance-app/app/config"
	"github.com/nida-ullah/finance-app/app/database"
	"github.com/nida-ullah/finance-app/app/models"
	"github.com/shopspring/decimal"
)

var defaultLowBudgetThreshold = decimal.NewFromFloat(50.00)

func GetProjectsAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	projects, err := GetProjectsByUser(config.GetDB(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load projects"})
	}
	return c.JSON(projects)
}

func CreateProjectAPI(c *fiber.Ctx) error {
	type CreateProjectRequest struct {
		Name               string              `json:"name"`
		BudgetLimit        decimal.NullDecimal `json:"budget_limit"`
		LowBudgetThreshold decimal.NullDecimal `json:"low_budget_threshold"`
		Description        string              `json:"description"`
	}

	var req CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Project name is required"})
	}

	threshold := defaultLowBudgetThreshold
	if req.LowBudgetThreshold.Valid {
		threshold = req.LowBudgetThreshold.Decimal
	}

	project := &models.Project{
		UserID:             c.Locals("user_id").(string),
		Name:               req.Name,
		Budget:             decimal.Zero,
		BudgetLimit:        req.BudgetLimit,
		LowBudgetThreshold: threshold,
		Description:        req.Description,
	}

	if err := CreateProject(config.GetDB(), project); err != nil {
		if errors.Is(err, database.ErrProjectExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create project"})
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

func GetProjectAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	project, err := GetProjectByID(config.GetDB(), userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(project)
}

func UpdateProjectAPI(c *fiber.Ctx) error {
	type UpdateProjectRequest struct {
		Name               string              `json:"name"`
		BudgetLimit        decimal.NullDecimal `json:"budget_limit"`
		LowBudgetThreshold decimal.NullDecimal `json:"low_budget_threshold"`
		Description        string              `json:"description"`
	}

	var req UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	userID := c.Locals("user_id").(string)
	project, err := GetProjectByID(config.GetDB(), userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if req.Name != "" {
		project.Name = req.Name
	}
	if req.BudgetLimit.Valid {
		project.BudgetLimit = req.BudgetLimit
	}
	if req.LowBudgetThreshold.Valid {
		project.LowBudgetThreshold = req.LowBudgetThreshold.Decimal
	}
	if req.Description != "" {
		project.Description = req.Description
	}

	if err := UpdateProject(config.GetDB(), project); err != nil {
		if errors.Is(err, database.ErrProjectExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update project"})
	}
	return c.JSON(project)
}

// DeleteProjectAPI removes a project. Any remaining budget is refunded to
// the main account first so money is not destroyed by the delete.
func DeleteProjectAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	refunded, err := database.RefundProject(config.GetDB(), userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete project"})
	}

	return c.JSON(fiber.Map{
		"message":  "Project deleted",
		"refunded": refunded,
	})
}

func GetProjectBalancesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	balances, summary, err := GetProjectBalances(config.GetDB(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load project balances"})
	}

	return c.JSON(fiber.Map{
		"projects": balances,
		"summary":  summary,
	})
}

// AllocateFundsAPI moves funds from the main account into a project.
func AllocateFundsAPI(c *fiber.Ctx) error {
	type AllocateRequest struct {
		ProjectID string          `json:"project_id"`
		Amount    decimal.Decimal `json:"amount"`
	}

	var req AllocateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	userID := c.Locals("user_id").(string)
	err := database.Allocate(config.GetDB(), userID, req.ProjectID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, database.ErrInsufficientFunds):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Insufficient funds"})
		case errors.Is(err, database.ErrProjectNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		case errors.Is(err, database.ErrAccountNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Main account not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to allocate funds"})
		}
	}

	return c.JSON(fiber.Map{"message": "Funds allocated successfully"})
}

// TransferFundsAPI moves funds between two projects of the caller.
func TransferFundsAPI(c *fiber.Ctx) error {
	type TransferRequest struct {
		FromProjectID string          `json:"from_project_id"`
		ToProjectID   string          `json:"to_project_id"`
		Amount        decimal.Decimal `json:"amount"`
		Description   string          `json:"description"`
	}

	var req TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	userID := c.Locals("user_id").(string)
	referenceID, err := database.Transfer(config.GetDB(), userID, req.FromProjectID, req.ToProjectID, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, database.ErrSameProject):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, database.ErrInsufficientBudget):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Insufficient funds in source project"})
		case errors.Is(err, database.ErrProjectNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "One or both projects not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to transfer funds"})
		}
	}

	return c.JSON(fiber.Map{
		"message":      "Funds transferred successfully",
		"reference_id": referenceID,
		"amount":       req.Amount,
	})
}
