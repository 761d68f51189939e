package systems

import (
	"encoding/json"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"

	cfg "github.com/distracted-programming/tanks/config"
	"github.com/distracted-programming/tanks/shared/logging"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	PlayerName string `json:"playerName"`
	Host       string `json:"host"`
	Port       int    `json:"port"`
	Tank       string `json:"tank"`
	Fullscreen bool   `json:"fullscreen"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

var persistLog = logging.For("persistence")

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tanks",
	})
	if err != nil {
		persistLog.Warn().Err(err).Msg("could not initialize persistence")
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		persistLog.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		persistLog.Warn().Err(err).Msg("could not parse saved settings")
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		persistLog.Warn().Err(err).Msg("could not serialize settings")
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		persistLog.Warn().Err(err).Msg("could not save settings")
		return err
	}
	return nil
}

// SaveCurrentSettings stores what the connect screen last used.
func SaveCurrentSettings() {
	_ = SaveSettings(CurrentSettings())
}

// CurrentSettings snapshots the persisted part of the configuration.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		PlayerName: cfg.Network.PlayerName,
		Host:       cfg.Network.Host,
		Port:       cfg.Network.Port,
		Tank:       cfg.Game.Tank,
		Fullscreen: ebiten.IsFullscreen(),
	}
}

// ApplySavedSettings overlays saved values on the configuration. Empty
// fields keep the configured value.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.PlayerName != "" {
		cfg.Network.PlayerName = saved.PlayerName
	}
	if saved.Host != "" {
		cfg.Network.Host = saved.Host
	}
	if saved.Port > 0 {
		cfg.Network.Port = saved.Port
	}
	if saved.Tank != "" {
		cfg.Game.Tank = saved.Tank
	}
}

// ApplySavedWindow restores window state. Call before ebiten.RunGame.
func ApplySavedWindow(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}
