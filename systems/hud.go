package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces are font.Face
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/distracted-programming/tanks/components"
	cfg "github.com/distracted-programming/tanks/config"
	"github.com/distracted-programming/tanks/fonts"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
)

// NewHUDRenderer draws the local tank's status in the top-left corner and a
// countdown while it is waiting to respawn.
func NewHUDRenderer(s *Session) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		face := fonts.HUD.Get()
		battle := getBattle(e)
		lines := hudLines(s, battle)

		vector.FillRect(screen, 0, 0, 230, float32(hudMargin+len(lines)*hudLineHeight), cfg.BlackOverlay, false)
		for i, line := range lines {
			text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight-4, cfg.UI.HUDTextColor)
		}

		if battle == nil || battle.RespawnIn <= 0 {
			return
		}
		title := fonts.Title.Get()
		msg := fmt.Sprintf("Respawn in %.1f", battle.RespawnIn)
		bounds := text.BoundString(title, msg)
		text.Draw(screen, msg, title, (cfg.C.Width-bounds.Dx())/2, cfg.C.Height/2, cfg.LightRed)
	}
}

// hudLines builds the status text.
func hudLines(s *Session, battle *components.BattleData) []string {
	var lines []string
	if battle != nil {
		lines = append(lines, fmt.Sprintf("Player %d  %s", s.LocalPlayer()+1, battle.Connection))
	}

	t, ok := s.LocalTank()
	if !ok {
		lines = append(lines, "Destroyed")
	} else {
		lines = append(lines, fmt.Sprintf("HP %.0f/%.0f", t.HP, t.Stats.MaxHP))
		switch {
		case t.Shield.Active:
			lines = append(lines, fmt.Sprintf("Shield %.0f", t.Shield.HP))
		case t.Shield.CurrentCooldown > 0:
			lines = append(lines, fmt.Sprintf("Shield in %.1fs", t.Shield.CurrentCooldown))
		default:
			lines = append(lines, "Shield ready")
		}
	}

	if battle != nil {
		lines = append(lines, fmt.Sprintf("Deaths %d  Players %d", battle.Deaths, len(s.Players())))
	}
	if cfg.Game.ShowDebug {
		lines = append(lines, fmt.Sprintf("TPS %.0f FPS %.0f Shells %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), s.ProjectileCount()))
	}
	return lines
}
