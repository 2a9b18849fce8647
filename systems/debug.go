package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collision overlay. Only dev builds can turn it on.
func UpdateDebug(e *ecs.ECS) {
	if !cfg.Debug.Dev {
		return
	}
	if GetAction(getOrCreateInput(e), cfg.ActionDebug).JustPressed {
		d := getOrCreateDebug(e)
		d.Enabled = !d.Enabled
	}
}

// DrawDebug outlines every collision object in view and prints the tick rate.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !getOrCreateDebug(e).Enabled {
		return
	}
	camera, ok := cameraPosition(e)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if !visible(camera, screen, obj.X, obj.Y, obj.W, obj.H) {
				continue
			}

			var c color.RGBA
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = cfg.UI.DebugSolid
			case obj.HasTags(tags.ResolvLadder):
				c = cfg.UI.DebugLadder
			case obj.HasTags(tags.ResolvPlayer):
				c = cfg.UI.DebugPlayer
			case obj.HasTags(tags.ResolvProjectile):
				c = cfg.UI.DebugProjectile
			default:
				c = cfg.Yellow
			}
			strokeRect(screen, obj.X-camera.X, obj.Y-camera.Y, obj.W, obj.H, c)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()), 4, screen.Bounds().Dy()-16)
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

func getOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
	}
	return components.Debug.Get(entry)
}
