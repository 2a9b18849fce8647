package components

import (
	"github.com/automoto/unexplored/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is a static or looping image drawn centred on the entity's object.
type SpriteData struct {
	Frames []*ebiten.Image
	Clock  *animations.Clock
	Scale  float64
}

// Image returns the frame for the current clock tick.
func (s *SpriteData) Image() *ebiten.Image {
	if len(s.Frames) == 0 {
		return nil
	}
	if s.Clock == nil {
		return s.Frames[0]
	}
	return s.Frames[s.Clock.Frame()]
}

var Sprite = donburi.NewComponentType[SpriteData]()
