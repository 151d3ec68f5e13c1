package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gsettings "github.com/vhdirk/gsettings-gen"
)

// TestGeneratedDefaults checks that getters serve schema defaults before
// any explicit write.
func TestGeneratedDefaults(t *testing.T) {
	settings := NewSettings()

	assert.False(t, settings.IsMaximized())
	assert.Equal(t, int32(600), settings.WindowWidth())
	assert.Equal(t, int32(400), settings.WindowHeight())
	assert.Equal(t, 0.75, settings.Volume())
	assert.Empty(t, settings.RecentFiles())
	assert.Equal(t, "default", settings.ProfileName())

	source, err := settings.PreferredAudioSource()
	require.NoError(t, err)
	assert.Equal(t, PreferredAudioSourceMicrophone, source)
}

// TestGeneratedSetThenGet covers the write-then-read scenario for a
// boolean key.
func TestGeneratedSetThenGet(t *testing.T) {
	settings := NewSettings()

	require.False(t, settings.IsMaximized())
	require.NoError(t, settings.SetIsMaximized(true))
	assert.True(t, settings.IsMaximized())

	require.NoError(t, settings.SetRecentFiles([]string{"a.txt", "b.txt"}))
	assert.Equal(t, []string{"a.txt", "b.txt"}, settings.RecentFiles())
}

// TestChoiceKey covers the closed-variant behavior of choice keys.
func TestChoiceKey(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		settings := NewSettings()

		require.NoError(t, settings.SetPreferredAudioSource(PreferredAudioSourceDesktopAudio))
		source, err := settings.PreferredAudioSource()
		require.NoError(t, err)
		assert.Equal(t, PreferredAudioSourceDesktopAudio, source)
	})

	t.Run("StringRoundTripLaw", func(t *testing.T) {
		for _, raw := range []string{"microphone", "desktop-audio"} {
			v, err := PreferredAudioSourceFromString(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, v.String())
		}
	})

	t.Run("ForgedValueRejected", func(t *testing.T) {
		settings := NewSettings()

		err := settings.SetPreferredAudioSource(PreferredAudioSource(99))
		require.Error(t, err)

		var unknown *gsettings.UnknownVariantError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "preferred-audio-source", unknown.Key)

		// The stored value is untouched.
		source, err := settings.PreferredAudioSource()
		require.NoError(t, err)
		assert.Equal(t, PreferredAudioSourceMicrophone, source)
	})

	t.Run("UnknownStoredValue", func(t *testing.T) {
		// Simulate a schema edited after data was written: the store
		// holds a string that is no longer a declared choice.
		store := gsettings.NewStore("io.github.vhdirk.Example")
		store.Register("preferred-audio-source", "bluetooth")
		settings := NewSettingsWithStore(store)

		_, err := settings.PreferredAudioSource()
		require.Error(t, err)

		var unknown *gsettings.UnknownVariantError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "preferred-audio-source", unknown.Key)
		assert.Equal(t, "bluetooth", unknown.Value)
	})
}

// TestNotWritableKey checks that setter failures surface the store's
// permission model as a recoverable error.
func TestNotWritableKey(t *testing.T) {
	settings := NewSettings()
	require.NoError(t, settings.Store().SetWritable("window-width", false))

	err := settings.SetWindowWidth(1024)
	require.Error(t, err)
	assert.ErrorIs(t, err, gsettings.ErrNotWritable)

	// The stored value is untouched.
	assert.Equal(t, int32(600), settings.WindowWidth())
}

// TestConnectChanged checks change subscriptions fired by generated setters.
func TestConnectChanged(t *testing.T) {
	settings := NewSettings()

	var fired int
	cancel := settings.ConnectWindowWidthChanged(func() { fired++ })

	require.NoError(t, settings.SetWindowWidth(800))
	assert.Equal(t, 1, fired)

	// Writing the same value again is not a change.
	require.NoError(t, settings.SetWindowWidth(800))
	assert.Equal(t, 1, fired)

	cancel()
	require.NoError(t, settings.SetWindowWidth(900))
	assert.Equal(t, 1, fired)
}
