package systems

import (
	"fmt"

	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/fonts"
	"github.com/automoto/unexplored/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces come from fonts
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin  = 10
	hudPadding = 6
)

// DrawHUD renders the score and weapon state in the top-left corner, plus the
// frame rate in dev builds.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	level, ok := currentLevel(e)
	if !ok {
		return
	}

	weapon := "Unarmed"
	if player, ok := tags.Player.First(e.World); ok {
		if components.Player.Get(player).Rig.Body().EquippedOneHanded {
			weapon = "Pistol"
		}
	}
	label := fmt.Sprintf("Score %d   %s", level.Score, weapon)
	if cfg.Debug.Dev {
		label += fmt.Sprintf("   %.0f FPS", ebiten.ActualFPS())
	}
	face := fonts.HUD.Get()
	bounds := text.BoundString(face, label) //nolint:staticcheck

	vector.FillRect(screen,
		hudMargin, hudMargin,
		float32(bounds.Dx()+hudPadding*2), float32(bounds.Dy()+hudPadding*2),
		cfg.UI.HUDTextBg, false)
	text.Draw(screen, label, face, //nolint:staticcheck
		hudMargin+hudPadding-bounds.Min.X, hudMargin+hudPadding-bounds.Min.Y,
		cfg.UI.HUDTextColor)
}
