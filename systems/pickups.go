package systems

import (
	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePickups returns the system that floats coins and collects the ones
// the player touches.
func NewUpdatePickups(sound SoundPlayer) ecs.System {
	return func(e *ecs.ECS) {
		bobCoins(e, 1/float32(cfg.TPS))

		playerEntry, ok := tags.Player.First(e.World)
		if !ok {
			return
		}
		playerObj := components.Object.Get(playerEntry)
		level, ok := currentLevel(e)
		if !ok {
			return
		}

		var collected []*donburi.Entry
		tags.Coin.Each(e.World, func(entry *donburi.Entry) {
			if playerObj.Overlaps(components.Object.Get(entry).Object) {
				collected = append(collected, entry)
			}
		})
		for _, entry := range collected {
			level.Score += components.Coin.Get(entry).Points
			removeWithObject(entry)
			sound.Play(cfg.SoundCoin)
		}
	}
}

func bobCoins(e *ecs.ECS, dt float32) {
	tags.Coin.Each(e.World, func(entry *donburi.Entry) {
		bob := components.Bob.Get(entry)
		coin := components.Coin.Get(entry)
		obj := components.Object.Get(entry)

		if bob.Tween == nil {
			bob.Tween = newBobTween(0, -cfg.Pickup.BobHeight)
			bob.Rising = true
		}
		offset, done := bob.Tween.Update(dt)
		bob.Offset = float64(offset)
		if done {
			if bob.Rising {
				bob.Tween = newBobTween(-cfg.Pickup.BobHeight, 0)
			} else {
				bob.Tween = newBobTween(0, -cfg.Pickup.BobHeight)
			}
			bob.Rising = !bob.Rising
		}
		obj.Y = coin.BaseY + bob.Offset
		obj.Update()

		if sprite := components.Sprite.Get(entry); sprite.Clock != nil {
			sprite.Clock.Advance()
		}
	})
}

func newBobTween(from, to float64) *gween.Tween {
	return gween.New(float32(from), float32(to), cfg.Pickup.BobSeconds, ease.InOutSine)
}

// removeWithObject deletes an entity and takes its collision object out of the space.
func removeWithObject(entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	entry.Remove()
}

func currentLevel(e *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil, false
	}
	level := components.Level.Get(entry)
	return level, level.CurrentLevel != nil
}
