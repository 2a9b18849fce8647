package systems

import (
	cfg "github.com/automoto/unexplored/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu returns the keyboard and gamepad shortcuts for the menu
// screens. The buttons themselves are handled by the screen's UI.
func NewUpdateMenu(onSelect, onBack func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			onSelect()
			return
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			onBack()
		}
	}
}
