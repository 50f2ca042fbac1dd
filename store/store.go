// Package store holds the UI-facing copy of all application state: user,
// transactions, savings goals, health data, chat history, and settings.
//
// Every mutating operation follows the same shape: apply the change to local
// state synchronously, then reconcile with the remote persistence service in
// the background. Remote failures are logged and never roll back the local
// change; drift is healed by the next SyncAll, which replaces local
// collections wholesale with the remote copies.
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wellvest-go-be/models"
	"wellvest-go-be/remote"
)

// maxChatHistory caps the chat collection; the oldest messages are evicted
// first.
const maxChatHistory = 100

// Local storage keys.
const (
	keySettings = "settings"
	keyState    = "state"
)

// LocalStore is the durable key-value storage for settings and the persisted
// state slice. May be absent (nil) for purely in-memory sessions.
type LocalStore interface {
	Get(key string, out any) (bool, error)
	Put(key string, value any) error
	Wipe() error
}

// PersistedState is the slice of the store written to local storage and
// reloaded verbatim at startup, before any remote sync runs.
type PersistedState struct {
	User         models.User                              `json:"user"`
	Transactions []models.Transaction                     `json:"transactions"`
	SavingsGoals []models.SavingsGoal                     `json:"savings_goals"`
	HealthData   map[models.HealthCategory]map[string]any `json:"health_data"`
	Settings     models.Settings                          `json:"settings"`
}

// Store is the single source of truth for one user session.
type Store struct {
	remote     remote.Service
	local      LocalStore
	log        *zap.Logger
	onDarkMode func(enabled bool)

	mu    sync.Mutex
	epoch uint64
	tasks sync.WaitGroup

	user         models.User
	transactions *indexed[models.Transaction]
	balance      decimal.Decimal
	goals        *indexed[models.SavingsGoal]
	health       map[models.HealthCategory]map[string]any
	chat         *indexed[models.ChatMessage]
	settings     models.Settings
	loading      bool
	lastError    string
}

// Option configures a Store.
type Option func(*Store)

// WithLocalStore attaches durable local storage.
func WithLocalStore(local LocalStore) Option {
	return func(s *Store) { s.local = local }
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithDarkModeHook registers the side effect applied whenever the dark mode
// flag changes hands. The hook runs outside the store lock.
func WithDarkModeHook(fn func(enabled bool)) Option {
	return func(s *Store) { s.onDarkMode = fn }
}

// New creates an empty store bound to the remote persistence service.
func New(svc remote.Service, opts ...Option) *Store {
	s := &Store{
		remote:   svc,
		log:      zap.NewNop(),
		settings: models.DefaultSettings(),
	}
	s.transactions = newIndexed(transactionID, setTransactionID)
	s.goals = newIndexed(savingsGoalID, setSavingsGoalID)
	s.chat = newIndexed(chatMessageID, setChatMessageID)
	s.health = emptyBuckets()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func transactionID(t models.Transaction) string { return t.ID }

func setTransactionID(t *models.Transaction, id string) { t.ID = id }

func savingsGoalID(g models.SavingsGoal) string { return g.ID }

func setSavingsGoalID(g *models.SavingsGoal, id string) { g.ID = id }

func chatMessageID(m models.ChatMessage) string { return m.ID }

func setChatMessageID(m *models.ChatMessage, id string) { m.ID = id }

func emptyBuckets() map[models.HealthCategory]map[string]any {
	buckets := make(map[models.HealthCategory]map[string]any, len(models.HealthCategories))
	for _, c := range models.HealthCategories {
		buckets[c] = map[string]any{}
	}
	return buckets
}

// tempID builds a client-generated temporary id, replaced by the
// server-assigned id once the create is acknowledged.
func tempID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}

// spawn runs a reconciliation task tracked by Flush.
func (s *Store) spawn(fn func()) {
	s.tasks.Add(1)
	go func() {
		defer s.tasks.Done()
		fn()
	}()
}

// Flush blocks until every in-flight reconciliation task has settled. Used by
// tests and graceful shutdown.
func (s *Store) Flush() {
	s.tasks.Wait()
}

// SetUser installs the signed-in user, e.g. from a sign-in response.
func (s *Store) SetUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.persistStateLocked()
}

// Authenticate marks the session as belonging to userID. Profile fields
// restored from local storage (name, email, avatar) are kept; only the id and
// the authentication flag are set, until the next sync refreshes the rest.
func (s *Store) Authenticate(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.ID = userID
	s.user.IsAuthenticated = true
	s.persistStateLocked()
}

// User returns the current user.
func (s *Store) User() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsLoading reports whether a bulk sync is in progress.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error string surfaced by the last bulk sync, if any.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Logout resets all in-memory state and persists the reset; in-flight
// reconciliation results from before the reset are discarded.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.persistStateLocked()
	s.persistSettingsLocked()
}

// ClearAllData resets all in-memory state and wipes local durable storage.
func (s *Store) ClearAllData() {
	s.mu.Lock()
	s.resetLocked()
	local := s.local
	s.mu.Unlock()
	if local == nil {
		return
	}
	if err := local.Wipe(); err != nil {
		s.log.Warn("failed to wipe local storage", zap.Error(err))
	}
}

// resetLocked empties every collection and bumps the epoch so that late
// reconciliation results are dropped. Only id patches and the sync commit
// re-enter local state after a remote call and therefore carry the epoch;
// update/delete/settings tasks touch no local state on completion, they only
// log.
func (s *Store) resetLocked() {
	s.epoch++
	s.user = models.User{}
	s.transactions.Replace(nil)
	s.balance = decimal.Zero
	s.goals.Replace(nil)
	s.health = emptyBuckets()
	s.chat.Replace(nil)
	s.settings = models.DefaultSettings()
	s.loading = false
	s.lastError = ""
}

// LoadLocal restores the persisted slice from local storage. Call once at
// startup, before any remote sync runs.
func (s *Store) LoadLocal() error {
	if s.local == nil {
		return nil
	}

	var state PersistedState
	found, err := s.local.Get(keyState, &state)
	if err != nil {
		return fmt.Errorf("load persisted state: %w", err)
	}

	s.mu.Lock()
	if found {
		s.user = state.User
		s.transactions.Replace(state.Transactions)
		s.balance = computeBalance(state.Transactions)
		s.goals.Replace(state.SavingsGoals)
		s.health = emptyBuckets()
		for category, data := range state.HealthData {
			if !models.ValidHealthCategory(category) {
				continue
			}
			for k, v := range data {
				s.health[category][k] = v
			}
		}
		s.settings = state.Settings
	}

	var settings models.Settings
	if ok, err := s.local.Get(keySettings, &settings); err == nil && ok {
		s.settings = settings
	}
	enabled := s.settings.DarkMode
	s.mu.Unlock()

	s.notifyDarkMode(enabled)
	return nil
}

// persistStateLocked writes the persisted slice to local storage. Failures are
// logged; local persistence never blocks a mutation.
func (s *Store) persistStateLocked() {
	if s.local == nil {
		return
	}
	state := PersistedState{
		User:         s.user,
		Transactions: s.transactions.Items(),
		SavingsGoals: s.goals.Items(),
		HealthData:   copyBuckets(s.health),
		Settings:     s.settings,
	}
	if err := s.local.Put(keyState, state); err != nil {
		s.log.Warn("failed to persist state locally", zap.Error(err))
	}
}

func (s *Store) persistSettingsLocked() {
	if s.local == nil {
		return
	}
	if err := s.local.Put(keySettings, s.settings); err != nil {
		s.log.Warn("failed to persist settings locally", zap.Error(err))
	}
}

func (s *Store) notifyDarkMode(enabled bool) {
	if s.onDarkMode != nil {
		s.onDarkMode(enabled)
	}
}

func computeBalance(txns []models.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txns {
		balance = balance.Add(t.Signed())
	}
	return balance
}

func copyBuckets(src map[models.HealthCategory]map[string]any) map[models.HealthCategory]map[string]any {
	out := make(map[models.HealthCategory]map[string]any, len(src))
	for category, data := range src {
		bucket := make(map[string]any, len(data))
		for k, v := range data {
			bucket[k] = v
		}
		out[category] = bucket
	}
	return out
}

// Snapshot is a read-only copy of the full store state for the presentation
// layer.
type Snapshot struct {
	User         models.User                              `json:"user"`
	Balance      decimal.Decimal                          `json:"balance"`
	Transactions []models.Transaction                     `json:"transactions"`
	SavingsGoals []models.SavingsGoal                     `json:"savings_goals"`
	HealthData   map[models.HealthCategory]map[string]any `json:"health_data"`
	ChatMessages []models.ChatMessage                     `json:"chat_messages"`
	Settings     models.Settings                          `json:"settings"`
	IsLoading    bool                                     `json:"is_loading"`
	Error        string                                   `json:"error,omitempty"`
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		User:         s.user,
		Balance:      s.balance,
		Transactions: s.transactions.Items(),
		SavingsGoals: s.goals.Items(),
		HealthData:   copyBuckets(s.health),
		ChatMessages: s.chat.Items(),
		Settings:     s.settings,
		IsLoading:    s.loading,
		Error:        s.lastError,
	}
}
