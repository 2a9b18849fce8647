package systems

import (
	"math"

	"github.com/automoto/unexplored/assets"
	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// Anything this far outside the view is still drawn so sprites do not pop at
// the edges.
const cullPadding = 64.0

func cameraPosition(e *ecs.ECS) (dmath.Vec2, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return dmath.Vec2{}, false
	}
	return components.Camera.Get(cameraEntry).Position, true
}

func visible(camera dmath.Vec2, screen *ebiten.Image, x, y, w, h float64) bool {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return x+w >= camera.X-cullPadding && x <= camera.X+width+cullPadding &&
		y+h >= camera.Y-cullPadding && y <= camera.Y+height+cullPadding
}

// NewDrawLevel returns the renderer for the parallax layers and the tile map.
// Either layer may be nil.
func NewDrawLevel(far, near *ebiten.Image) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		camera, ok := cameraPosition(e)
		if !ok {
			return
		}
		drawParallax(screen, far, camera, cfg.Parallax.Far)
		drawParallax(screen, near, camera, cfg.Parallax.Near)

		level, ok := currentLevel(e)
		if !ok || level.CurrentLevel.Background == nil {
			return
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-camera.X, -camera.Y)
		screen.DrawImage(level.CurrentLevel.Background, drawOp)
	}
}

// drawParallax repeats a layer horizontally, scrolled at factor times the
// camera speed.
func drawParallax(screen, layer *ebiten.Image, camera dmath.Vec2, factor float64) {
	if layer == nil {
		return
	}
	lw := float64(layer.Bounds().Dx())
	if lw <= 0 {
		return
	}
	offsetX := -math.Mod(camera.X*factor, lw)
	if offsetX > 0 {
		offsetX -= lw
	}
	offsetY := -math.Floor(camera.Y * factor)

	for x := offsetX; x < float64(screen.Bounds().Dx()); x += lw {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(math.Floor(x), offsetY)
		screen.DrawImage(layer, drawOp)
	}
}

// DrawPlayer renders the rig limbs back to front, then the held weapon.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraPosition(e)
	if !ok {
		return
	}
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		r := components.Player.Get(entry).Rig
		scale := r.Scale()

		for _, limb := range r.Limbs() {
			drawRotated(screen, limb.Texture(), limb.X-camera.X, limb.Y-camera.Y, limb.Angle, scale)
		}
		if tex, x, y, angle, ok := r.Weapon(); ok {
			drawRotated(screen, tex, x-camera.X, y-camera.Y, angle, scale)
		}
	})
}

// drawRotated draws img centred on (x, y) in screen pixels.
func drawRotated(screen, img *ebiten.Image, x, y, angle, scale float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	drawOp.GeoM.Rotate(angle)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

// DrawSprites renders coins and destructibles centred on their collision box.
// A flashing sprite goes through the flash shader.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraPosition(e)
	if !ok {
		return
	}

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if !visible(camera, screen, o.X, o.Y, o.W, o.H) {
			return
		}
		sprite := components.Sprite.Get(entry)
		img := sprite.Image()
		if img == nil {
			return
		}

		scale := sprite.Scale
		if scale == 0 {
			scale = 1
		}
		cx, cy := o.Centre()
		w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

		flashing := entry.HasComponent(components.Flash) && components.Flash.Get(entry).Duration > 0
		if flashing && assets.FlashShader != nil {
			shaderOp.GeoM.Reset()
			shaderOp.GeoM.Translate(-w/2, -h/2)
			shaderOp.GeoM.Scale(scale, scale)
			shaderOp.GeoM.Translate(cx-camera.X, cy-camera.Y)
			shaderOp.Images[0] = img
			shaderOp.Uniforms = map[string]any{"Amount": float32(1)}
			screen.DrawRectShader(img.Bounds().Dx(), img.Bounds().Dy(), assets.FlashShader, shaderOp)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-w/2, -h/2)
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Translate(cx-camera.X, cy-camera.Y)
		screen.DrawImage(img, drawOp)
	})
}

// NewDrawProjectiles returns the renderer for live projectiles, each rotated
// to its heading.
func NewDrawProjectiles(ps *ProjectileSystem, img *ebiten.Image, scale float64) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		camera, ok := cameraPosition(e)
		if !ok {
			return
		}
		for _, pr := range ps.Projectiles() {
			drawRotated(screen, img, pr.X-camera.X, pr.Y-camera.Y, pr.Angle, scale)
		}
	}
}

// NewDrawEffects returns the renderer for running effects.
func NewDrawEffects(es *EffectSystem) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		camera, ok := cameraPosition(e)
		if !ok {
			return
		}
		for _, fx := range es.Effects() {
			drawRotated(screen, fx.Image(), fx.X-camera.X, fx.Y-camera.Y, 0, fx.Scale)
		}
	}
}

// NewDrawReticle returns the renderer for the aim reticle at the cursor. The
// system cursor is hidden while the reticle is shown.
func NewDrawReticle(img *ebiten.Image) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if img == nil || GetOrCreatePause(e).IsPaused {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
			return
		}
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
		input := getOrCreateInput(e)
		drawRotated(screen, img, float64(input.CursorX), float64(input.CursorY), 0, 1)
	}
}
