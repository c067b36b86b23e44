package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewBotSecrets_Fallbacks verifies the getters that never fail on an
// empty store.
func TestNewBotSecrets_Fallbacks(t *testing.T) {
	s := NewBotSecrets()

	prefix, err := s.BotPrefix.Get()
	require.NoError(t, err)
	assert.Equal(t, "!", prefix)

	botOnly, err := s.BotOnly.Get()
	require.NoError(t, err)
	assert.False(t, botOnly)

	gh, err := s.GitHubURL.Get()
	require.NoError(t, err)
	assert.Equal(t, DefaultGitHubURL, gh)
}

// TestNewBotSecrets_RequiredUnreadable verifies that every field without a
// fallback fails before initialization.
func TestNewBotSecrets_RequiredUnreadable(t *testing.T) {
	s := NewBotSecrets()

	_, err := s.ClientToken.Get()
	assert.ErrorIs(t, err, ErrAccessBeforeInit)
	_, err = s.StartupLogChannelIDs.Get()
	assert.ErrorIs(t, err, ErrAccessBeforeInit)
	_, err = s.AllowBotInputIDs.Get()
	assert.ErrorIs(t, err, ErrAccessBeforeInit)

	_, ok := s.Origin(KeyClientToken)
	assert.False(t, ok)
}

// TestSettings_ReportsAllUnreadable verifies that Settings joins one error per
// unreadable field.
func TestSettings_ReportsAllUnreadable(t *testing.T) {
	s := NewBotSecrets()

	settings, err := s.Settings()
	require.Error(t, err)
	assert.Equal(t, Settings{}, settings)
	assert.ErrorIs(t, err, ErrAccessBeforeInit)

	for _, key := range Keys() {
		switch key {
		case KeyBotPrefix, KeyBotOnly, KeyGitHubURL:
			assert.NotContains(t, err.Error(), key)
		default:
			assert.Contains(t, err.Error(), key)
		}
	}
}

// TestSettings_SnapshotIsDetached verifies that mutating a snapshot slice
// does not reach the store.
func TestSettings_SnapshotIsDetached(t *testing.T) {
	s := NewBotSecrets()
	for _, field := range fieldDefs {
		var v any
		switch field.kind {
		case KindString:
			v = "value-" + field.key
		case KindBool:
			v = true
		case KindIntList:
			v = []int64{1, 2}
		}
		require.NoError(t, field.assign(s, v))
	}

	settings, err := s.Settings()
	require.NoError(t, err)
	assert.True(t, settings.BotOnly)
	assert.Equal(t, "value-BOT_PREFIX", settings.BotPrefix)

	settings.StartupLogChannelIDs[0] = 99

	ids, err := s.StartupLogChannelIDs.Get()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestKeys_Order(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, 14)
	assert.Equal(t, KeyClientToken, keys[0])
	assert.Equal(t, KeyAllowBotInputIDs, keys[len(keys)-1])
}

func TestConfigAccessError_Message(t *testing.T) {
	assert.Equal(t, "API_KEY: no value for configuration found",
		(&ConfigAccessError{Key: "API_KEY", Err: ErrMissingRequired}).Error())
	assert.Equal(t, "a.json: failed to parse configuration file",
		(&ConfigAccessError{Path: "a.json", Err: ErrParseFailure}).Error())
	assert.Equal(t, "BOT_ONLY (a.json): invalid configuration value",
		(&ConfigAccessError{Key: "BOT_ONLY", Path: "a.json", Err: ErrInvalidValue}).Error())
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "environment", Source{Kind: SourceEnvironment}.String())
	assert.Equal(t, "file a.json", Source{Kind: SourceFile, Path: "a.json"}.String())
	assert.Equal(t, "default", Source{Kind: SourceDefault}.String())
	assert.Equal(t, "unset", Source{}.String())
}
