package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"wellvest-go-be/models"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	UserMessage  models.ChatMessage `json:"user_message"`
	ModelMessage models.ChatMessage `json:"model_message"`
}

// Chat records the user's message, asks the companion for a reply (which
// falls back to a static apology when inference keeps failing), and records
// that reply too. Both sides of the turn go through the store so the 100
// message cap and remote persistence apply.
func (h *Handler) Chat(c *fiber.Ctx) error {
	st, ok := h.session(c)
	if !ok {
		return unauthorized(c)
	}
	if h.companion == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "chat companion is not configured"})
	}

	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
	}

	history := st.ChatMessages()
	userMsg := st.AddChatMessage(context.Background(), models.ChatMessage{
		Role: models.RoleUser,
		Text: req.Message,
	})

	reply := h.companion.Send(c.UserContext(), history, req.Message)
	modelMsg := st.AddChatMessage(context.Background(), models.ChatMessage{
		Role: models.RoleModel,
		Text: reply,
	})

	return c.JSON(chatResponse{UserMessage: userMsg, ModelMessage: modelMsg})
}

// ClearChat empties the conversation.
func (h *Handler) ClearChat(c *fiber.Ctx) error {
	st, ok := h.session(c)
	if !ok {
		return unauthorized(c)
	}
	st.ClearChatHistory(context.Background())
	return c.JSON(fiber.Map{"message": "chat history cleared"})
}
