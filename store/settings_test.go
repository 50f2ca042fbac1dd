package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellvest-go-be/models"
)

func TestSettingsMirroredOnlyWhenSignedIn(t *testing.T) {
	fake := newFakeRemote()
	s := New(fake) // anonymous session
	ctx := context.Background()

	dark := true
	s.UpdateSettings(ctx, models.SettingsUpdate{DarkMode: &dark})
	s.Flush()
	assert.Empty(t, fake.settingsPushes, "no remote mirror without a user id")
	assert.True(t, s.Settings().DarkMode, "local merge still applies")

	s.SetUser(models.User{ID: testUserID})
	currency := "GBP"
	s.UpdateSettings(ctx, models.SettingsUpdate{Currency: &currency})
	s.Flush()

	require.Len(t, fake.settingsPushes, 1)
	pushed := fake.settingsPushes[0]
	assert.True(t, pushed.DarkMode, "the full settings object is pushed, not the delta")
	assert.Equal(t, "GBP", pushed.Currency)
}

func TestUpdateSettingsMerges(t *testing.T) {
	s := newTestStore(t, newFakeRemote())
	ctx := context.Background()

	lang := "es"
	got := s.UpdateSettings(ctx, models.SettingsUpdate{Language: &lang})
	assert.Equal(t, "es", got.Language)
	assert.True(t, got.Notifications, "untouched defaults survive the merge")
	assert.Equal(t, "USD", got.Currency)
	s.Flush()
}

func TestToggleDarkMode(t *testing.T) {
	var seen []bool
	s := newTestStore(t, newFakeRemote(), WithDarkModeHook(func(enabled bool) {
		seen = append(seen, enabled)
	}))
	ctx := context.Background()

	assert.True(t, s.ToggleDarkMode(ctx))
	assert.False(t, s.ToggleDarkMode(ctx))
	assert.Equal(t, []bool{true, false}, seen)
	s.Flush()
}
