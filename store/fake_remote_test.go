package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"wellvest-go-be/models"
	"wellvest-go-be/remote"
)

// fakeRemote is an in-memory remote.Service that records every call and can
// be told to fail.
type fakeRemote struct {
	mu sync.Mutex

	// failWrites makes every mutating call return an error; listErr makes
	// every list call fail; addGate, when set, blocks Add* calls until the
	// gate channel is closed.
	failWrites bool
	listErr    error
	addGate    chan struct{}

	nextID int

	// Data served by the list calls.
	transactions []models.Transaction
	goals        []models.SavingsGoal
	entries      []models.HealthEntry
	messages     []models.ChatMessage
	profile      *models.Profile

	// Recorded calls.
	addedTransactions   []models.Transaction
	updatedTransactions []string
	deletedTransactions []string
	updatedGoals        map[string]models.SavingsGoalUpdate
	savedHealth         map[models.HealthCategory]map[string]any
	settingsPushes      []models.Settings
	chatClears          int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		updatedGoals: map[string]models.SavingsGoalUpdate{},
		savedHealth:  map[models.HealthCategory]map[string]any{},
	}
}

var errRemoteDown = errors.New("remote unavailable")

func (f *fakeRemote) serverID() string {
	f.nextID++
	return fmt.Sprintf("server-%d", f.nextID)
}

func (f *fakeRemote) waitGate() {
	f.mu.Lock()
	gate := f.addGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
}

func (f *fakeRemote) AddTransaction(_ context.Context, t models.Transaction) (models.Transaction, error) {
	f.waitGate()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return models.Transaction{}, errRemoteDown
	}
	t.ID = f.serverID()
	f.addedTransactions = append(f.addedTransactions, t)
	return t, nil
}

func (f *fakeRemote) UpdateTransaction(_ context.Context, _, id string, _ models.TransactionUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errRemoteDown
	}
	f.updatedTransactions = append(f.updatedTransactions, id)
	return nil
}

func (f *fakeRemote) DeleteTransaction(_ context.Context, _, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errRemoteDown
	}
	f.deletedTransactions = append(f.deletedTransactions, id)
	return nil
}

func (f *fakeRemote) ListTransactions(_ context.Context, _ string) ([]models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Transaction(nil), f.transactions...), nil
}

func (f *fakeRemote) AddSavingsGoal(_ context.Context, g models.SavingsGoal) (models.SavingsGoal, error) {
	f.waitGate()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return models.SavingsGoal{}, errRemoteDown
	}
	g.ID = f.serverID()
	return g, nil
}

func (f *fakeRemote) UpdateSavingsGoal(_ context.Context, _, id string, updates models.SavingsGoalUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errRemoteDown
	}
	f.updatedGoals[id] = updates
	return nil
}

func (f *fakeRemote) DeleteSavingsGoal(_ context.Context, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errRemoteDown
	}
	return nil
}

func (f *fakeRemote) ListSavingsGoals(_ context.Context, _ string) ([]models.SavingsGoal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.SavingsGoal(nil), f.goals...), nil
}

func (f *fakeRemote) SaveHealthData(_ context.Context, _ string, category models.HealthCategory, payload map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errRemoteDown
	}
	f.savedHealth[category] = payload
	return nil
}

func (f *fakeRemote) ListHealthEntries(_ context.Context, _ string) ([]models.HealthEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.HealthEntry(nil), f.entries...), nil
}

func (f *fakeRemote) AddChatMessage(_ context.Context, m models.ChatMessage) (models.ChatMessage, error) {
	f.waitGate()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return models.ChatMessage{}, errRemoteDown
	}
	m.ID = f.serverID()
	return m, nil
}

func (f *fakeRemote) ListChatMessages(_ context.Context, _ string) ([]models.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.ChatMessage(nil), f.messages...), nil
}

func (f *fakeRemote) ClearChatMessages(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errRemoteDown
	}
	f.chatClears++
	return nil
}

func (f *fakeRemote) GetProfile(_ context.Context, _ string) (models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return models.Profile{}, f.listErr
	}
	if f.profile == nil {
		return models.Profile{}, remote.ErrNotFound
	}
	return *f.profile, nil
}

func (f *fakeRemote) UpdateProfileSettings(_ context.Context, _ string, settings models.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errRemoteDown
	}
	f.settingsPushes = append(f.settingsPushes, settings)
	return nil
}

var _ remote.Service = (*fakeRemote)(nil)
