package systems

import (
	"math"

	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/fonts"
	"github.com/automoto/unexplored/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces come from fonts
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMessage shows the first hint within reach of the player.
func UpdateMessage(e *ecs.ECS) {
	state := getOrCreateMessageState(e)

	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.Active = nil
		}
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	px, py := components.Object.Get(playerEntry).Centre()

	var shown *donburi.Entry
	tags.Hint.Each(e.World, func(entry *donburi.Entry) {
		if shown != nil {
			return
		}
		hint := components.Hint.Get(entry)
		if math.Hypot(px-hint.X, py-hint.Y) <= cfg.Message.ActivationRadius {
			shown = entry
		}
	})
	if shown == nil {
		return
	}

	hint := *components.Hint.Get(shown)
	state.Active = &hint
	state.DisplayTimer = cfg.Message.DisplayDuration
	// Each hint shows once per level.
	shown.Remove()
}

// DrawMessage renders the active hint at the top centre of the screen.
func DrawMessage(e *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(e)
	if state.Active == nil {
		return
	}

	face := fonts.HUD.Get()
	bounds := text.BoundString(face, state.Active.Text) //nolint:staticcheck

	padding := float32(cfg.Message.BoxPadding)
	boxWidth := float32(bounds.Dx()) + padding*2
	boxHeight := float32(bounds.Dy()) + padding*2
	boxX := (float32(screen.Bounds().Dx()) - boxWidth) / 2
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Message.BoxColor, false)

	textX := int(boxX+padding) - bounds.Min.X
	textY := int(boxY+padding) - bounds.Min.Y
	text.Draw(screen, state.Active.Text, face, textX, textY, cfg.Message.TextColor) //nolint:staticcheck
}

// ResetMessageState clears the active hint.
func ResetMessageState(e *ecs.ECS) {
	state := getOrCreateMessageState(e)
	state.Active = nil
	state.DisplayTimer = 0
}

func getOrCreateMessageState(e *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
