package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellvest-go-be/models"
)

func TestSyncReplacesLocalCollections(t *testing.T) {
	fake := newFakeRemote()
	fake.failWrites = true // T1 never reaches the remote
	s := newTestStore(t, fake)
	ctx := context.Background()

	s.AddTransaction(ctx, models.Transaction{
		ID: "tx_local", Title: "T1", Amount: dec("10"), Type: models.TypeIncome,
	})
	s.Flush()
	require.Len(t, s.Transactions(), 1)

	fake.mu.Lock()
	fake.failWrites = false
	fake.transactions = []models.Transaction{{
		ID: "server-55", UserID: testUserID, Title: "T2",
		Amount: dec("40"), Type: models.TypeExpense,
	}}
	fake.mu.Unlock()

	require.NoError(t, s.SyncAll(ctx))

	// Remote wins wholesale: the unsynced local transaction is gone.
	txns := s.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, "server-55", txns[0].ID)
	assert.Equal(t, "T2", txns[0].Title)
	assert.True(t, s.Balance().Equal(dec("-40")), "balance recomputed from the fresh list")
	assert.False(t, s.IsLoading())
	assert.Empty(t, s.Err())
}

func TestSyncIsAllOrNothing(t *testing.T) {
	fake := newFakeRemote()
	s := newTestStore(t, fake)
	ctx := context.Background()

	s.AddTransaction(ctx, models.Transaction{Amount: dec("5"), Type: models.TypeIncome})
	s.Flush()

	fake.mu.Lock()
	fake.transactions = []models.Transaction{{ID: "server-9", Amount: dec("99"), Type: models.TypeIncome}}
	fake.listErr = errRemoteDown
	fake.mu.Unlock()

	err := s.SyncAll(ctx)
	require.Error(t, err)

	// Nothing was applied, and the failure is surfaced once, at the top.
	assert.Len(t, s.Transactions(), 1)
	assert.True(t, s.Balance().Equal(dec("5")))
	assert.NotEmpty(t, s.Err())
	assert.False(t, s.IsLoading())
}

func TestSyncRebucketsHealthEntries(t *testing.T) {
	fake := newFakeRemote()
	s := newTestStore(t, fake)

	fake.mu.Lock()
	fake.entries = []models.HealthEntry{
		{Category: models.CategoryMentalHealth, Payload: map[string]any{"mood": "low", "sleep": 6}},
		{Category: models.CategoryMentalHealth, Payload: map[string]any{"mood": "ok"}},
		{Category: models.CategoryCycleData, Payload: map[string]any{"day": 12}},
		{Category: "unknown", Payload: map[string]any{"x": 1}},
	}
	fake.mu.Unlock()

	require.NoError(t, s.SyncAll(context.Background()))

	// Later entries win per key; unknown categories are dropped.
	assert.Equal(t, map[string]any{"mood": "ok", "sleep": 6}, s.HealthData(models.CategoryMentalHealth))
	assert.Equal(t, map[string]any{"day": 12}, s.HealthData(models.CategoryCycleData))
	assert.Empty(t, s.HealthData(models.CategoryMensHealth))
}

func TestSyncRemoteSettingsWin(t *testing.T) {
	fake := newFakeRemote()
	var darkModeCalls []bool
	s := newTestStore(t, fake, WithDarkModeHook(func(enabled bool) {
		darkModeCalls = append(darkModeCalls, enabled)
	}))

	remoteSettings := models.Settings{
		DarkMode: true, Notifications: false, Biometrics: true,
		Language: "fr", Currency: "EUR",
	}
	fake.mu.Lock()
	fake.profile = &models.Profile{
		UserID: testUserID, Name: "Ada", Email: "ada@example.com",
		Settings: &remoteSettings,
	}
	fake.mu.Unlock()

	require.NoError(t, s.SyncAll(context.Background()))

	assert.Equal(t, remoteSettings, s.Settings(), "remote settings overwrite local entirely")
	require.NotEmpty(t, darkModeCalls)
	assert.True(t, darkModeCalls[len(darkModeCalls)-1], "dark mode side effect reapplied")

	user := s.User()
	assert.Equal(t, "Ada", user.Name)
	assert.True(t, user.IsAuthenticated)
}

func TestSyncWithoutProfileKeepsLocalSettings(t *testing.T) {
	fake := newFakeRemote()
	s := newTestStore(t, fake)

	lang := "pt"
	s.UpdateSettings(context.Background(), models.SettingsUpdate{Language: &lang})
	s.Flush()

	require.NoError(t, s.SyncAll(context.Background()))
	assert.Equal(t, "pt", s.Settings().Language)
}

func TestSyncRequiresUser(t *testing.T) {
	s := New(newFakeRemote())
	err := s.SyncAll(context.Background())
	assert.ErrorIs(t, err, ErrNoUser)
}

func TestSyncCapsChatHistory(t *testing.T) {
	fake := newFakeRemote()
	s := newTestStore(t, fake)

	fake.mu.Lock()
	for i := 0; i < maxChatHistory+20; i++ {
		fake.messages = append(fake.messages, models.ChatMessage{
			ID: tempID("msg"), Role: models.RoleUser, Text: "m", Timestamp: time.Now(),
		})
	}
	fake.mu.Unlock()

	require.NoError(t, s.SyncAll(context.Background()))
	assert.Len(t, s.ChatMessages(), maxChatHistory)
}
