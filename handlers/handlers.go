// Package handlers exposes the session store over HTTP for the mobile client.
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"wellvest-go-be/ai"
	"wellvest-go-be/auth"
	"wellvest-go-be/store"
)

// Handler wires the session registry and the chat companion into fiber
// routes.
type Handler struct {
	sessions  *Sessions
	companion *ai.Companion // nil when no inference backend is configured
	log       *zap.Logger
}

// New creates the handler set.
func New(sessions *Sessions, companion *ai.Companion, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{sessions: sessions, companion: companion, log: log}
}

// Register mounts every route on the router. The router is expected to run
// the auth middleware already.
func (h *Handler) Register(api fiber.Router) {
	api.Get("/state", h.GetState)
	api.Post("/sync", h.Sync)
	api.Post("/logout", h.Logout)
	api.Delete("/data", h.ClearData)

	api.Post("/transactions", h.AddTransaction)
	api.Patch("/transactions/:id", h.UpdateTransaction)
	api.Delete("/transactions/:id", h.DeleteTransaction)

	api.Post("/goals", h.AddSavingsGoal)
	api.Patch("/goals/:id", h.UpdateSavingsGoal)
	api.Delete("/goals/:id", h.DeleteSavingsGoal)
	api.Post("/goals/:id/progress", h.AddGoalProgress)

	api.Put("/health-data/:category", h.UpdateHealthData)

	api.Post("/chat", h.Chat)
	api.Delete("/chat", h.ClearChat)

	api.Patch("/settings", h.UpdateSettings)
	api.Post("/settings/dark-mode", h.ToggleDarkMode)
}

// session resolves the request's user id to its store. The auth middleware
// guarantees an id is present; ok is false only when it was skipped.
func (h *Handler) session(c *fiber.Ctx) (*store.Store, bool) {
	userID, err := auth.UserIDFrom(c)
	if err != nil {
		return nil, false
	}
	return h.sessions.Get(userID), true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
}

// GetState returns the full state snapshot the client renders from.
func (h *Handler) GetState(c *fiber.Ctx) error {
	st, ok := h.session(c)
	if !ok {
		return unauthorized(c)
	}
	return c.JSON(st.Snapshot())
}

// Sync triggers a bulk reload from the remote service and returns the fresh
// snapshot, or the store's error state when the sync failed.
func (h *Handler) Sync(c *fiber.Ctx) error {
	st, ok := h.session(c)
	if !ok {
		return unauthorized(c)
	}
	if err := st.SyncAll(c.UserContext()); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": st.Err()})
	}
	return c.JSON(st.Snapshot())
}

// Logout resets the in-memory session and drops it from the registry, so the
// next request from this user gets a freshly seeded store instead of the
// logged-out one.
func (h *Handler) Logout(c *fiber.Ctx) error {
	userID, err := auth.UserIDFrom(c)
	if err != nil {
		return unauthorized(c)
	}
	h.sessions.Get(userID).Logout()
	h.sessions.Drop(userID)
	return c.JSON(fiber.Map{"message": "logged out"})
}

// ClearData resets the session, wipes local durable storage, and drops the
// session from the registry like Logout does.
func (h *Handler) ClearData(c *fiber.Ctx) error {
	userID, err := auth.UserIDFrom(c)
	if err != nil {
		return unauthorized(c)
	}
	h.sessions.Get(userID).ClearAllData()
	h.sessions.Drop(userID)
	return c.JSON(fiber.Map{"message": "all data cleared"})
}
