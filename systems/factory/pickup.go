package factory

import (
	"github.com/automoto/unexplored/archetypes"
	"github.com/automoto/unexplored/assets"
	"github.com/automoto/unexplored/assets/animations"
	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Sprites are the images level objects are drawn with. A nil or empty entry
// leaves the object invisible.
type Sprites struct {
	Coin   []*ebiten.Image
	Barrel []*ebiten.Image
}

// LoadSprites cuts the object images from the embedded sheets.
func LoadSprites() Sprites {
	return Sprites{
		Coin:   assets.MustFrames("objects/coin.png", 16, 16, 6),
		Barrel: []*ebiten.Image{assets.GetObjectImage("barrel.png")},
	}
}

func CreateCoin(ecs *ecs.ECS, c assets.CoinSpawn, frames []*ebiten.Image) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)
	addObject(ecs, coin, resolv.NewObject(c.X, c.Y, c.Width, c.Height, tags.ResolvCoin))

	components.Coin.SetValue(coin, components.CoinData{
		Points: c.Points,
		BaseY:  c.Y,
	})
	sprite := components.SpriteData{Frames: frames, Scale: 1}
	if len(frames) > 1 {
		sprite.Clock = animations.NewClock(len(frames), cfg.Effect.UpdatesPerFrame)
	}
	components.Sprite.SetValue(coin, sprite)
	return coin
}

func CreateDestructible(ecs *ecs.ECS, d assets.DestructibleSpawn, frames []*ebiten.Image) *donburi.Entry {
	barrel := archetypes.Destructible.Spawn(ecs)
	addObject(ecs, barrel, resolv.NewObject(d.X, d.Y, d.Width, d.Height, tags.ResolvDestructible))

	hp := d.HP
	if hp <= 0 {
		hp = 1
	}
	components.Destructible.SetValue(barrel, components.DestructibleData{
		HP:        hp,
		Explosive: d.Explosive,
	})
	components.Sprite.SetValue(barrel, components.SpriteData{Frames: frames, Scale: 1})
	return barrel
}
