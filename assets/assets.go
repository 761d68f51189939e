package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/distracted-programming/tanks/board"
	"github.com/distracted-programming/tanks/combat"
	"github.com/distracted-programming/tanks/shared/leveldata"
	"github.com/distracted-programming/tanks/shared/netconfig"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:resources
	resourceFS embed.FS
)

const (
	levelsDir    = "levels"
	resourcesDir = "resources"
)

// TileProfile is the attribute bundle of a tile resource.
type TileProfile struct {
	Name           string   `mapstructure:"name"`
	BlocksMovement bool     `mapstructure:"blocks_movement"`
	MoveSpeed      float64  `mapstructure:"move_speed"`
	Color          [3]uint8 `mapstructure:"color"`
}

// Tile converts the profile to a board cell.
func (p TileProfile) Tile() board.Tile {
	return board.Tile{Name: p.Name, BlocksMovement: p.BlocksMovement, MoveSpeed: p.MoveSpeed}
}

func (p TileProfile) RGBA() color.RGBA {
	return color.RGBA{p.Color[0], p.Color[1], p.Color[2], 0xff}
}

// LoadResource reads the JSON attribute bundle stored under name, e.g.
// "tanks/light". A missing resource is an error.
func LoadResource(name string) (*viper.Viper, error) {
	data, err := resourceFS.ReadFile(path.Join(resourcesDir, name+".json"))
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", name, err)
	}
	v := viper.New()
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parse resource %s: %w", name, err)
	}
	return v, nil
}

func decodeResource[T any](name string) (T, error) {
	var out T
	v, err := LoadResource(name)
	if err != nil {
		return out, err
	}
	if err := v.Unmarshal(&out); err != nil {
		return out, fmt.Errorf("decode resource %s: %w", name, err)
	}
	return out, nil
}

// LoadLoadout resolves a tank resource together with the turret, ammo and
// shield it references.
func LoadLoadout(tank string) (combat.Loadout, error) {
	var l combat.Loadout
	var err error
	if l.Tank, err = decodeResource[combat.TankProfile]("tanks/" + tank); err != nil {
		return l, err
	}
	if l.Turret, err = decodeResource[combat.TurretProfile]("turrets/" + l.Tank.Turret); err != nil {
		return l, fmt.Errorf("tank %s: %w", tank, err)
	}
	if l.Ammo, err = decodeResource[combat.AmmoProfile]("ammo/" + l.Turret.Ammo); err != nil {
		return l, fmt.Errorf("tank %s: %w", tank, err)
	}
	if l.Shield, err = decodeResource[combat.ShieldProfile]("shields/" + l.Tank.Shield); err != nil {
		return l, fmt.Errorf("tank %s: %w", tank, err)
	}
	if err := l.Validate(); err != nil {
		return l, err
	}
	return l, nil
}

// LoadTile reads one tile resource.
func LoadTile(name string) (TileProfile, error) {
	return decodeResource[TileProfile]("tiles/" + name)
}

// LoadTiles reads the named tile resources, in order.
func LoadTiles(names []string) ([]TileProfile, error) {
	out := make([]TileProfile, 0, len(names))
	for _, n := range names {
		p, err := LoadTile(n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// TileNames lists every embedded tile resource.
func TileNames() []string {
	return resourceNames("tiles")
}

// TankNames lists every embedded tank resource.
func TankNames() []string {
	return resourceNames("tanks")
}

func resourceNames(kind string) []string {
	entries, err := resourceFS.ReadDir(path.Join(resourcesDir, kind))
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".json" {
			names = append(names, strings.TrimSuffix(e.Name(), ".json"))
		}
	}
	sort.Strings(names)
	return names
}

// Palette builds a name lookup over tile profiles.
func Palette(tiles []TileProfile) board.Palette {
	p := make(board.Palette, len(tiles))
	for _, t := range tiles {
		p[t.Name] = t.Tile()
	}
	return p
}

// Levels returns the embedded levels filesystem rooted above the levels dir.
func Levels() fs.FS { return levelFS }

// LoadLevel parses an embedded level by stem name, e.g. "arena".
func LoadLevel(name string) (*leveldata.LevelData, error) {
	return leveldata.LoadLevel(levelFS, path.Join(levelsDir, name+".tmx"))
}

// LoadAllLevels parses every embedded level.
func LoadAllLevels() (map[string]*leveldata.LevelData, []string, error) {
	return leveldata.LoadAllLevels(levelFS, levelsDir)
}

// Colors maps tile names to their draw colour.
func Colors(tiles []TileProfile) map[string]color.RGBA {
	c := make(map[string]color.RGBA, len(tiles))
	for _, t := range tiles {
		c[t.Name] = t.RGBA()
	}
	return c
}

// Map is a playable board with its spawn points and tile colours.
type Map struct {
	Board  *board.Board
	Spawns []board.SpawnPoint
	Colors map[string]color.RGBA
}

// LoadMap reads the editor map at mapFile, or the embedded level when
// mapFile is empty. Cells a level leaves unpainted get fillTile.
func LoadMap(level, mapFile, fillTile string) (Map, error) {
	tiles, err := LoadTiles(TileNames())
	if err != nil {
		return Map{}, err
	}
	palette := Palette(tiles)
	m := Map{Colors: Colors(tiles)}

	if mapFile != "" {
		f, err := os.Open(mapFile)
		if err != nil {
			return Map{}, fmt.Errorf("open map: %w", err)
		}
		defer f.Close()
		m.Board, m.Spawns, err = board.Decode(f, netconfig.TileSize, palette)
		if err != nil {
			return Map{}, fmt.Errorf("map %s: %w", mapFile, err)
		}
		return m, nil
	}

	fill, ok := palette[fillTile]
	if !ok {
		return Map{}, fmt.Errorf("fill tile %q: no such tile", fillTile)
	}
	data, err := LoadLevel(level)
	if err != nil {
		return Map{}, err
	}
	m.Board, m.Spawns = board.FromLevel(data, fill)
	return m, nil
}
