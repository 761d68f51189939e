package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/combat"
	"github.com/distracted-programming/tanks/shared/netconfig"
)

// Default is the only render layer; draw order follows AddRenderer order.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// GameConfig picks what a client plays with.
type GameConfig struct {
	Tank      string  `mapstructure:"tank"`
	Level     string  `mapstructure:"level"`
	MapFile   string  `mapstructure:"map_file"` // optional editor map used instead of Level
	FillTile  string  `mapstructure:"fill_tile"`
	Respawn   float64 `mapstructure:"respawn"` // seconds before a destroyed local tank returns
	LogLevel  string  `mapstructure:"log_level"`
	ShowDebug bool    `mapstructure:"show_debug"`
}

// CombatConfig holds match-wide tank rules.
type CombatConfig struct {
	CollisionSpeedMultiplier float64 `mapstructure:"collision_speed_multiplier"`
	CollisionCooldown        float64 `mapstructure:"collision_cooldown"` // seconds
	CollisionDamage          float64 `mapstructure:"collision_damage"`
	TankRadius               float64 `mapstructure:"tank_radius"` // hit radius used for projectile checks
}

// Rules converts the configuration to simulation rules.
func (c CombatConfig) Rules() combat.Rules {
	r := combat.DefaultRules()
	r.CollisionSpeedMultiplier = c.CollisionSpeedMultiplier
	r.CollisionCooldown = c.CollisionCooldown
	r.CollisionDamage = c.CollisionDamage
	return r
}

// NetworkConfig holds connection settings for the client.
type NetworkConfig struct {
	Host           string  `mapstructure:"host"`
	Port           int     `mapstructure:"port"`
	PlayerName     string  `mapstructure:"player_name"`
	ConnectTimeout float64 `mapstructure:"connect_timeout"` // seconds
	EventBuffer    int     `mapstructure:"event_buffer"`
}

// UIConfig contains HUD sizes and colours.
type UIConfig struct {
	HPBarWidth   float64
	HPBarHeight  float64
	HPBarOffset  float64 // distance above the tank centre
	ShieldOffset float64

	HPBarBgColor     color.RGBA
	HPBarFgColor     color.RGBA
	ShieldBarFgColor color.RGBA
	ShieldRingColor  color.RGBA
	HUDTextColor     color.RGBA

	TankWidth      float64
	TankLength     float64
	TurretLength   float64
	TurretWidth    float64
	SpawnMarkerLen float64

	HUDFontSize   float64
	LabelFontSize float64

	PlayerColors [netconfig.MaxPlayers]color.RGBA
}

// EditorConfig configures the map editor.
type EditorConfig struct {
	Tiles         []string `mapstructure:"tiles"`
	RotationAngle float64  `mapstructure:"rotation_angle"`
	SaveFile      string   `mapstructure:"save_file"`
	TPS           int      `mapstructure:"tps"`

	CursorColor      color.RGBA `mapstructure:"-"`
	MirrorColor      color.RGBA `mapstructure:"-"`
	SpawnMarkerColor color.RGBA `mapstructure:"-"`
}

// Global configuration instances
var C *Config
var Game GameConfig
var Combat CombatConfig
var Network NetworkConfig
var UI UIConfig
var Editor EditorConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  netconfig.WorldWidth,
		Height: netconfig.WorldHeight,
		TPS:    60,
	}

	Game = GameConfig{
		Tank:     "light",
		Level:    "arena",
		FillTile: "grass",
		Respawn:  3,
		LogLevel: "info",
	}

	Combat = CombatConfig{
		CollisionSpeedMultiplier: 0.5,
		CollisionCooldown:        1.0,
		CollisionDamage:          5,
		TankRadius:               16,
	}

	Network = NetworkConfig{
		Host:           "localhost",
		Port:           netconfig.DefaultPort,
		PlayerName:     "player",
		ConnectTimeout: 5,
		EventBuffer:    256,
	}

	UI = UIConfig{
		HPBarWidth:   40,
		HPBarHeight:  5,
		HPBarOffset:  30,
		ShieldOffset: 37,

		HPBarBgColor:     color.RGBA{R: 40, G: 40, B: 40, A: 200},
		HPBarFgColor:     color.RGBA{R: 60, G: 220, B: 80, A: 255},
		ShieldBarFgColor: color.RGBA{R: 80, G: 160, B: 255, A: 255},
		ShieldRingColor:  color.RGBA{R: 80, G: 160, B: 255, A: 110},
		HUDTextColor:     White,

		TankWidth:      26,
		TankLength:     32,
		TurretLength:   22,
		TurretWidth:    5,
		SpawnMarkerLen: 18,

		HUDFontSize:   14,
		LabelFontSize: 10,

		PlayerColors: [netconfig.MaxPlayers]color.RGBA{
			{R: 200, G: 60, B: 60, A: 255},
			{R: 60, G: 110, B: 210, A: 255},
			{R: 220, G: 190, B: 50, A: 255},
			{R: 150, G: 70, B: 200, A: 255},
		},
	}

	Editor = EditorConfig{
		Tiles:         []string{"grass", "wall", "sand", "mud", "ice", "water"},
		RotationAngle: 45,
		SaveFile:      "save.json",
		TPS:           60,

		CursorColor:      color.RGBA{R: 255, G: 255, B: 255, A: 220},
		MirrorColor:      color.RGBA{R: 255, G: 200, B: 0, A: 200},
		SpawnMarkerColor: color.RGBA{R: 255, G: 60, B: 60, A: 255},
	}
}
