// Package remote defines the contract the store uses to reach the remote
// persistence service. The store never talks to the database directly; it only
// sees this interface, so tests can substitute a fake and record every call.
package remote

import (
	"context"
	"errors"

	"wellvest-go-be/models"
)

// ErrNotFound indicates a record does not exist remotely.
var ErrNotFound = errors.New("record not found")

// Service is the uniform CRUD surface of the remote persistence service.
// Add operations ignore any client-generated temporary id and return the
// record with its server-assigned id; the store patches its local copy with
// that id once the call is acknowledged.
type Service interface {
	AddTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id string, updates models.TransactionUpdate) error
	DeleteTransaction(ctx context.Context, userID, id string) error
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)

	AddSavingsGoal(ctx context.Context, g models.SavingsGoal) (models.SavingsGoal, error)
	UpdateSavingsGoal(ctx context.Context, userID, id string, updates models.SavingsGoalUpdate) error
	DeleteSavingsGoal(ctx context.Context, userID, id string) error
	ListSavingsGoals(ctx context.Context, userID string) ([]models.SavingsGoal, error)

	// SaveHealthData stores the full merged payload for one bucket.
	SaveHealthData(ctx context.Context, userID string, category models.HealthCategory, payload map[string]any) error
	ListHealthEntries(ctx context.Context, userID string) ([]models.HealthEntry, error)

	AddChatMessage(ctx context.Context, m models.ChatMessage) (models.ChatMessage, error)
	ListChatMessages(ctx context.Context, userID string) ([]models.ChatMessage, error)
	ClearChatMessages(ctx context.Context, userID string) error

	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	UpdateProfileSettings(ctx context.Context, userID string, settings models.Settings) error
}
