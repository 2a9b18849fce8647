package systems

import (
	"github.com/automoto/unexplored/assets/animations"
	cfg "github.com/automoto/unexplored/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Effect is a one-shot animation with no physics, removed after its last frame.
type Effect struct {
	Frames []*ebiten.Image
	X, Y   float64 // centre
	Scale  float64
	clock  *animations.Clock
}

func (e *Effect) Image() *ebiten.Image {
	return e.Frames[e.clock.Frame()]
}

func (e *Effect) Tick() int {
	return e.clock.Tick()
}

type queuedEffect struct {
	x, y, scale float64
}

// EffectSystem owns every live effect.
type EffectSystem struct {
	hold        int
	frames      []*ebiten.Image
	impactScale float64
	barrelScale float64

	live   []*Effect
	queued []queuedEffect
	ready  []queuedEffect
}

// NewEffectSystem builds the system around the explosion strip shared by
// terrain impacts and barrel explosions.
func NewEffectSystem(c cfg.EffectConfig, explosion []*ebiten.Image) *EffectSystem {
	hold := c.UpdatesPerFrame
	if hold <= 0 {
		hold = 1
	}
	return &EffectSystem{
		hold:        hold,
		frames:      explosion,
		impactScale: c.ImpactScale,
		barrelScale: c.BarrelScale,
	}
}

// Spawn starts an effect at tick 0. Empty sequences are ignored.
func (s *EffectSystem) Spawn(frames []*ebiten.Image, x, y, scale float64) *Effect {
	if len(frames) == 0 {
		return nil
	}
	e := &Effect{
		Frames: frames,
		X:      x,
		Y:      y,
		Scale:  scale,
		clock:  animations.NewClock(len(frames), s.hold),
	}
	s.live = append(s.live, e)
	return e
}

// SpawnImpact places the small explosion where a projectile hit terrain.
func (s *EffectSystem) SpawnImpact(x, y float64) {
	s.Spawn(s.frames, x, y, s.impactScale)
}

// QueueExplosion schedules a barrel explosion. It appears on the tick after
// the one it was queued in.
func (s *EffectSystem) QueueExplosion(x, y float64) {
	s.queued = append(s.queued, queuedEffect{x: x, y: y, scale: s.barrelScale})
}

// Update advances every effect once and drops those that ran past their
// final frame. Effects never loop.
func (s *EffectSystem) Update() {
	kept := s.live[:0]
	for _, e := range s.live {
		e.clock.Advance()
		if e.clock.Looped {
			continue
		}
		kept = append(kept, e)
	}
	clear(s.live[len(kept):])
	s.live = kept

	for _, q := range s.ready {
		s.Spawn(s.frames, q.x, q.y, q.scale)
	}
	s.ready, s.queued = s.queued, s.ready[:0]
}

func (s *EffectSystem) Effects() []*Effect {
	return s.live
}

func (s *EffectSystem) Len() int {
	return len(s.live)
}

// Clear drops live and pending effects.
func (s *EffectSystem) Clear() {
	clear(s.live)
	s.live = s.live[:0]
	s.queued = s.queued[:0]
	s.ready = s.ready[:0]
}

// NewUpdateEffects returns the system that ages effects and hit flashes.
func NewUpdateEffects(s *EffectSystem) ecs.System {
	return func(e *ecs.ECS) {
		s.Update()
		UpdateFlash(e)
	}
}
