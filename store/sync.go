package store

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wellvest-go-be/models"
	"wellvest-go-be/remote"
)

// ErrNoUser is returned when a bulk sync is requested for an anonymous
// session.
var ErrNoUser = errors.New("no signed-in user")

// SyncAll pulls every remote collection in parallel and, only if all fetches
// succeed, replaces the local collections wholesale. This is the
// reconciliation point that heals drift from earlier unacknowledged failures:
// remote wins, unsynced local entries are gone, and the balance is recomputed
// from scratch over the fresh transaction list. On any fetch failure nothing
// is applied and a generic error string is surfaced.
func (s *Store) SyncAll(ctx context.Context) error {
	s.mu.Lock()
	userID := s.user.ID
	if userID == "" {
		s.mu.Unlock()
		return ErrNoUser
	}
	epoch := s.epoch
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()

	var (
		txns         []models.Transaction
		goals        []models.SavingsGoal
		entries      []models.HealthEntry
		msgs         []models.ChatMessage
		profile      models.Profile
		profileFound bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txns, err = s.remote.ListTransactions(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.remote.ListSavingsGoals(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.remote.ListHealthEntries(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		msgs, err = s.remote.ListChatMessages(gctx, userID)
		return err
	})
	g.Go(func() error {
		p, err := s.remote.GetProfile(gctx, userID)
		if errors.Is(err, remote.ErrNotFound) {
			// A fresh account has no profile row yet; not a sync failure.
			return nil
		}
		if err != nil {
			return err
		}
		profile = p
		profileFound = true
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error("bulk sync failed", zap.Error(err))
		s.mu.Lock()
		s.loading = false
		s.lastError = "failed to sync with server"
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.loading = false
	if epoch != s.epoch {
		// The session was reset while the sync was in flight; the results no
		// longer belong to anyone.
		s.mu.Unlock()
		return nil
	}

	s.transactions.Replace(txns)
	s.balance = computeBalance(txns)
	s.goals.Replace(goals)
	s.health = bucketHealthEntries(entries)
	s.chat.Replace(msgs)
	s.chat.TrimFront(maxChatHistory)

	darkMode := s.settings.DarkMode
	if profileFound {
		s.user = models.User{
			ID:              userID,
			Name:            profile.Name,
			Email:           profile.Email,
			Phone:           profile.Phone,
			AvatarURL:       profile.AvatarURL,
			IsAuthenticated: true,
		}
		if profile.Settings != nil {
			// Remote wins: local settings are overwritten entirely.
			s.settings = *profile.Settings
			s.persistSettingsLocked()
			darkMode = s.settings.DarkMode
		}
	}
	s.persistStateLocked()
	s.mu.Unlock()

	s.notifyDarkMode(darkMode)
	return nil
}
