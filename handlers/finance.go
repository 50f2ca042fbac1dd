package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"wellvest-go-be/models"
)

// AddTransaction applies the optimistic insert and returns the transaction
// with its client id; the remote create reconciles in the background.
func (h *Handler) AddTransaction(c *fiber.Ctx) error {
	st, ok := h.session(c)
	if !ok {
		return unauthorized(c)
	}

	var t models.Transaction
	if err := c.BodyParser(&t); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if t.Amount.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must be non-negative"})
	}
	if t.Type != models.TypeIncome && t.Type != models.TypeExpense {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "type must be income or expense"})
	}

	saved := st.AddTransaction(context.Background(), t)
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// UpdateTransaction applies a partial edit. Unknown ids are a silent no-op,
// mirroring the store contract.
func (h *Handler) UpdateTransaction(c *fiber.Ctx) error {
	st, ok := h.session(c)
	if !ok {
		return unauthorized(c)
	}

	var updates models.TransactionUpdate
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if updates.Amount != nil && updates.Amount.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must be non-negative"})
	}

	st.UpdateTransaction(context.Background(), c.Params("id"), updates)
	return c.JSON(fiber.Map{"message": "transaction updated"})
}

// DeleteTransaction removes the transaction locally and remotely.
func (h *Handler) DeleteTransaction(c *fiber.Ctx) error {
	st, ok := h.session(c)
	if !ok {
		return unauthorized(c)
	}
	st.DeleteTransaction(context.Background(), c.Params("id"))
	return c.JSON(fiber.Map{"message": "transaction deleted"})
}

// AddSavingsGoal creates a goal optimistically.
func (h *Handler) AddSavingsGoal(c *fiber.Ctx) error {
	st, ok := h.session(c)
	if !ok {
		return unauthorized(c)
	}

	var g models.SavingsGoal
	if err := c.BodyParser(&g); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if !g.Target.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "target must be positive"})
	}

	saved := st.AddSavingsGoal(context.Background(), g)
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// UpdateSavingsGoal applies a partial edit.
func (h *Handler) UpdateSavingsGoal(c *fiber.Ctx) error {
	st, ok := h.session(c)
	if !ok {
		return unauthorized(c)
	}

	var updates models.SavingsGoalUpdate
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	st.UpdateSavingsGoal(context.Background(), c.Params("id"), updates)
	return c.JSON(fiber.Map{"message": "goal updated"})
}

// DeleteSavingsGoal removes the goal locally and remotely.
func (h *Handler) DeleteSavingsGoal(c *fiber.Ctx) error {
	st, ok := h.session(c)
	if !ok {
		return unauthorized(c)
	}
	st.DeleteSavingsGoal(context.Background(), c.Params("id"))
	return c.JSON(fiber.Map{"message": "goal deleted"})
}

type progressRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// AddGoalProgress adds to a goal's progress, clamped at its target.
func (h *Handler) AddGoalProgress(c *fiber.Ctx) error {
	st, ok := h.session(c)
	if !ok {
		return unauthorized(c)
	}

	var req progressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Amount.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must be non-negative"})
	}

	st.AddGoalProgress(context.Background(), c.Params("id"), req.Amount)
	return c.JSON(fiber.Map{"message": "progress added"})
}
