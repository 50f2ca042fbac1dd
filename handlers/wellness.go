package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"wellvest-go-be/models"
)

// UpdateHealthData shallow-merges the body into the named bucket.
func (h *Handler) UpdateHealthData(c *fiber.Ctx) error {
	st, ok := h.session(c)
	if !ok {
		return unauthorized(c)
	}

	category := models.HealthCategory(c.Params("category"))
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := st.UpdateHealthData(context.Background(), category, data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(st.HealthData(category))
}

// UpdateSettings merges a partial settings edit and returns the result.
func (h *Handler) UpdateSettings(c *fiber.Ctx) error {
	st, ok := h.session(c)
	if !ok {
		return unauthorized(c)
	}

	var updates models.SettingsUpdate
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return c.JSON(st.UpdateSettings(context.Background(), updates))
}

// ToggleDarkMode flips the dark mode flag.
func (h *Handler) ToggleDarkMode(c *fiber.Ctx) error {
	st, ok := h.session(c)
	if !ok {
		return unauthorized(c)
	}
	return c.JSON(fiber.Map{"dark_mode": st.ToggleDarkMode(context.Background())})
}
