package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces are font.Face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/board"
	"github.com/distracted-programming/tanks/combat"
	"github.com/distracted-programming/tanks/components"
	cfg "github.com/distracted-programming/tanks/config"
	"github.com/distracted-programming/tanks/fonts"
	"github.com/distracted-programming/tanks/shared/gamemath"
	"github.com/distracted-programming/tanks/tags"
)

var (
	gridLineColor = color.RGBA{R: 0, G: 0, B: 0, A: 40}
	unknownTile   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	boardDrawOp   = &ebiten.DrawImageOptions{}
)

// DrawBoard draws the tile grid from a cached image, rebuilding it when the
// board is marked dirty.
func DrawBoard(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Board.First(ecs.World)
	if !ok {
		return
	}
	bd := components.Board.Get(entry)
	if bd.Image == nil || bd.Dirty {
		renderBoard(bd)
	}
	boardDrawOp.GeoM.Reset()
	screen.DrawImage(bd.Image, boardDrawOp)
}

func renderBoard(bd *components.BoardData) {
	b := bd.Board
	w, h := b.Bounds()
	if bd.Image == nil {
		bd.Image = ebiten.NewImage(int(w), int(h))
	}
	bd.Image.Clear()

	s := float32(b.Scale)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c, ok := bd.Colors[b.At(x, y).Name]
			if !ok {
				c = unknownTile
			}
			vector.FillRect(bd.Image, float32(x)*s, float32(y)*s, s, s, c, false)
			vector.StrokeRect(bd.Image, float32(x)*s, float32(y)*s, s, s, 1, gridLineColor, false)
		}
	}
	bd.Dirty = false
}

// DrawSpawnPoints marks every spawn cell with its heading.
func DrawSpawnPoints(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Board.First(ecs.World)
	if !ok {
		return
	}
	bd := components.Board.Get(entry)
	for _, sp := range bd.Spawns {
		drawSpawnMarker(screen, bd.Board, sp)
	}
}

func drawSpawnMarker(screen *ebiten.Image, b *board.Board, sp board.SpawnPoint) {
	cx, cy := b.CellCenter(sp.X, sp.Y)
	r := float32(b.Scale) / 4
	c := cfg.Editor.SpawnMarkerColor
	vector.StrokeCircle(screen, float32(cx), float32(cy), r, 2, c, true)

	d := gamemath.Heading(sp.Angle).Scale(cfg.UI.SpawnMarkerLen)
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx+d.X), float32(cy+d.Y), 2, c, true)
}

// DrawTanks draws every tank as a rotated hull with its turret, shield
// bubble and name.
func DrawTanks(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Tank.Each(ecs.World, func(entry *donburi.Entry) {
		td := components.Tank.Get(entry)
		t := td.Tank
		if !t.Alive() {
			return
		}

		body := playerColor(t.PlayerNo)
		if flash := components.Flash.Get(entry); flash.Duration > 0 {
			body = lerpColor(body, cfg.White, float64(flash.Duration)/flashFrames)
		}
		drawHull(screen, t, body)
		drawTurret(screen, t)

		if t.Shield.Active {
			fx := components.ShieldFX.Get(entry)
			ring := cfg.UI.ShieldRingColor
			ring.A = uint8(float32(ring.A) * fx.Alpha)
			r := float32(cfg.Combat.TankRadius) + 6
			vector.StrokeCircle(screen, float32(t.X), float32(t.Y), r, 3, ring, true)
		}

		face := fonts.Label.Get()
		bounds := text.BoundString(face, td.Name)
		text.Draw(screen, td.Name, face,
			int(t.X)-bounds.Dx()/2,
			int(t.Y+cfg.Combat.TankRadius)+bounds.Dy()+4,
			cfg.UI.HUDTextColor)
	})
}

func drawHull(screen *ebiten.Image, t *combat.Tank, c color.RGBA) {
	half := gamemath.Heading(t.Angle).Scale(cfg.UI.TankLength / 2)
	front := gamemath.Vector{X: t.X + half.X, Y: t.Y + half.Y}
	rear := gamemath.Vector{X: t.X - half.X, Y: t.Y - half.Y}
	vector.StrokeLine(screen,
		float32(rear.X), float32(rear.Y), float32(front.X), float32(front.Y),
		float32(cfg.UI.TankWidth), c, true)

	// bright mark at the front so the heading reads without a sprite
	nose := gamemath.Heading(t.Angle).Scale(cfg.UI.TankLength/2 - 3)
	vector.DrawFilledCircle(screen, float32(t.X+nose.X), float32(t.Y+nose.Y), 3, cfg.Yellow, true)
}

func drawTurret(screen *ebiten.Image, t *combat.Tank) {
	d := gamemath.Heading(t.Turret.AbsoluteAngle).Scale(cfg.UI.TurretLength)
	dark := lerpColor(playerColor(t.PlayerNo), color.RGBA{A: 255}, 0.4)
	vector.StrokeLine(screen,
		float32(t.X), float32(t.Y), float32(t.X+d.X), float32(t.Y+d.Y),
		float32(cfg.UI.TurretWidth), dark, true)
	vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), float32(cfg.UI.TankWidth)/3, dark, true)
}

// DrawProjectiles draws every live projectile as a dot in its owner's colour.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Projectile.Each(ecs.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry).Projectile
		r := float32(math.Max(p.Ammo.Radius, 1.5))
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, playerColor(combat.OwnerOf(p.ID)), true)
	})
}

// DrawHPBars draws the visible health and shield bars above their tanks.
func DrawHPBars(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.HPBar.Each(ecs.World, func(entry *donburi.Entry) {
		if !components.Visibility.Get(entry).Visible {
			return
		}
		bd := components.HPBar.Get(entry)
		owner := bd.Bar.Owner
		if owner == nil || !owner.Alive() {
			return
		}

		offset, fg := cfg.UI.HPBarOffset, cfg.UI.HPBarFgColor
		if bd.Bar.Kind == combat.ShieldBar {
			offset, fg = cfg.UI.ShieldOffset, cfg.UI.ShieldBarFgColor
		}
		w, h := float32(cfg.UI.HPBarWidth), float32(cfg.UI.HPBarHeight)
		x := float32(owner.X) - w/2
		y := float32(owner.Y - offset)

		vector.FillRect(screen, x, y, w, h, cfg.UI.HPBarBgColor, false)
		vector.FillRect(screen, x, y, w*float32(bd.Shown), h, fg, false)
	})
}

func playerColor(playerNo int) color.RGBA {
	colors := cfg.UI.PlayerColors
	if playerNo < 0 {
		return cfg.White
	}
	return colors[playerNo%len(colors)]
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = gamemath.Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
