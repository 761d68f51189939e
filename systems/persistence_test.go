package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cfg "github.com/distracted-programming/tanks/config"
)

func TestApplySavedSettings(t *testing.T) {
	oldNet, oldGame := cfg.Network, cfg.Game
	t.Cleanup(func() { cfg.Network, cfg.Game = oldNet, oldGame })

	ApplySavedSettings(&SavedSettings{PlayerName: "ada", Host: "10.0.0.2", Tank: "heavy"})

	assert.Equal(t, "ada", cfg.Network.PlayerName)
	assert.Equal(t, "10.0.0.2", cfg.Network.Host)
	assert.Equal(t, oldNet.Port, cfg.Network.Port, "zero port keeps the configured one")
	assert.Equal(t, "heavy", cfg.Game.Tank)

	ApplySavedSettings(nil)
	assert.Equal(t, "ada", cfg.Network.PlayerName)
}

func TestSettingsWithoutPersistence(t *testing.T) {
	gdataInitialized = false
	gdataManager = nil

	saved, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, SaveSettings(&SavedSettings{PlayerName: "x"}))
}
