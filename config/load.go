package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the optional override file looked up in the config directory.
const FileName = "tanks.cfg.json"

// Load overlays tanks.cfg.json from configDir and TANKS_* environment
// variables on top of the built-in defaults. A missing file is not an error.
func Load(configDir string) error {
	setDefaults("game", map[string]any{
		"tank":       Game.Tank,
		"level":      Game.Level,
		"map_file":   Game.MapFile,
		"fill_tile":  Game.FillTile,
		"respawn":    Game.Respawn,
		"log_level":  Game.LogLevel,
		"show_debug": Game.ShowDebug,
	})
	setDefaults("combat", map[string]any{
		"collision_speed_multiplier": Combat.CollisionSpeedMultiplier,
		"collision_cooldown":         Combat.CollisionCooldown,
		"collision_damage":           Combat.CollisionDamage,
		"tank_radius":                Combat.TankRadius,
	})
	setDefaults("network", map[string]any{
		"host":            Network.Host,
		"port":            Network.Port,
		"player_name":     Network.PlayerName,
		"connect_timeout": Network.ConnectTimeout,
		"event_buffer":    Network.EventBuffer,
	})
	setDefaults("editor", map[string]any{
		"tiles":          Editor.Tiles,
		"rotation_angle": Editor.RotationAngle,
		"save_file":      Editor.SaveFile,
		"tps":            Editor.TPS,
	})

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)
	viper.SetEnvPrefix("tanks")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	sections := struct {
		Game    *GameConfig    `mapstructure:"game"`
		Combat  *CombatConfig  `mapstructure:"combat"`
		Network *NetworkConfig `mapstructure:"network"`
		Editor  *EditorConfig  `mapstructure:"editor"`
	}{&Game, &Combat, &Network, &Editor}
	if err := viper.Unmarshal(&sections); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if len(Editor.Tiles) == 0 {
		return fmt.Errorf("editor config: tiles must not be empty")
	}
	return nil
}

func setDefaults(section string, values map[string]any) {
	for k, v := range values {
		viper.SetDefault(section+"."+k, v)
	}
}
