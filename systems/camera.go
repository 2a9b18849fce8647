package systems

import (
	"math"

	"github.com/automoto/unexplored/assets"
	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CameraController keeps the tracked box inside a margin band of the view.
// The view only scrolls when the box crosses one of the four margins.
type CameraController struct {
	Width, Height float64
	Margins       cfg.CameraConfig

	// Top-left corner of the view in world pixels, always whole numbers.
	ViewLeft, ViewTop float64
}

func NewCameraController(width, height float64, margins cfg.CameraConfig) *CameraController {
	return &CameraController{
		Width:   width,
		Height:  height,
		Margins: margins,
	}
}

// Update runs the four margin checks independently, so a diagonal move can
// scroll both axes in the same tick. It reports whether the view moved.
func (c *CameraController) Update(b assets.Rect) bool {
	changed := false

	if left := c.ViewLeft + c.Margins.LeftMargin; b.X < left {
		c.ViewLeft -= left - b.X
		changed = true
	}
	if right := c.ViewLeft + c.Width - c.Margins.RightMargin; b.X+b.Width > right {
		c.ViewLeft += b.X + b.Width - right
		changed = true
	}
	if top := c.ViewTop + c.Margins.TopMargin; b.Y < top {
		c.ViewTop -= top - b.Y
		changed = true
	}
	if bottom := c.ViewTop + c.Height - c.Margins.BottomMargin; b.Y+b.Height > bottom {
		c.ViewTop += b.Y + b.Height - bottom
		changed = true
	}

	if changed {
		c.ViewLeft = math.Floor(c.ViewLeft)
		c.ViewTop = math.Floor(c.ViewTop)
	}
	return changed
}

// Snap centres the view on a box, used on spawn and respawn.
func (c *CameraController) Snap(b assets.Rect) {
	c.ViewLeft = math.Floor(b.X + b.Width/2 - c.Width/2)
	c.ViewTop = math.Floor(b.Y + b.Height/2 - c.Height/2)
}

// NewUpdateCamera returns the system that tracks the player and publishes the
// view origin to the camera component.
func NewUpdateCamera(ctrl *CameraController) ecs.System {
	return func(e *ecs.ECS) {
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		camera := components.Camera.Get(cameraEntry)

		if playerEntry, ok := tags.Player.First(e.World); ok {
			ctrl.Update(playerBounds(playerEntry))
		}

		camera.Position.X = ctrl.ViewLeft
		camera.Position.Y = ctrl.ViewTop
		updateScreenShake(cameraEntry, camera)
	}
}

func playerBounds(entry *donburi.Entry) assets.Rect {
	obj := components.Object.Get(entry)
	return assets.Rect{X: obj.X, Y: obj.Y, Width: obj.W, Height: obj.H}
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Oscillate on both axes. Whole pixels keep the tiles crisp.
	camera.Position.X += math.Round(math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity)
	camera.Position.Y += math.Round(math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity)

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
