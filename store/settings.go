package store

import (
	"context"

	"go.uber.org/zap"

	"wellvest-go-be/models"
)

// UpdateSettings merges the partial edit into settings, persists them locally,
// applies the dark mode side effect, and — only when a user id is present —
// mirrors the full settings object to the remote profile.
func (s *Store) UpdateSettings(ctx context.Context, updates models.SettingsUpdate) models.Settings {
	s.mu.Lock()
	updates.Apply(&s.settings)
	s.persistSettingsLocked()
	s.persistStateLocked()
	settings := s.settings
	userID := s.user.ID
	s.mu.Unlock()

	s.notifyDarkMode(settings.DarkMode)

	if userID != "" {
		s.spawn(func() {
			if err := s.remote.UpdateProfileSettings(ctx, userID, settings); err != nil {
				s.log.Warn("settings failed to sync", zap.Error(err))
			}
		})
	}
	return settings
}

// ToggleDarkMode flips the dark mode flag through UpdateSettings and returns
// the new value.
func (s *Store) ToggleDarkMode(ctx context.Context) bool {
	s.mu.Lock()
	next := !s.settings.DarkMode
	s.mu.Unlock()
	return s.UpdateSettings(ctx, models.SettingsUpdate{DarkMode: &next}).DarkMode
}

// Settings returns the current settings.
func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}
