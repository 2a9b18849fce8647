package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FadeController darkens the screen to black and back. Scene changes happen
// in the callback, while the screen is fully covered.
type FadeController struct {
	seconds float32
	tween   *gween.Tween
	alpha   float32
	onBlack func()
	out     bool
}

func NewFadeController(seconds float32) *FadeController {
	if seconds <= 0 {
		seconds = 0.01
	}
	return &FadeController{seconds: seconds}
}

// FadeOut starts darkening the screen. then runs once the screen is black,
// after which the screen fades back in. A fade already running is replaced.
func (f *FadeController) FadeOut(then func()) {
	f.tween = gween.New(f.alpha, 1, f.seconds, ease.InQuad)
	f.onBlack = then
	f.out = true
}

// FadeIn starts from a black screen and reveals the scene.
func (f *FadeController) FadeIn() {
	f.alpha = 1
	f.tween = gween.New(1, 0, f.seconds, ease.OutQuad)
	f.onBlack = nil
	f.out = false
}

// Update advances the fade by dt seconds.
func (f *FadeController) Update(dt float32) {
	if f.tween == nil {
		return
	}
	alpha, done := f.tween.Update(dt)
	f.alpha = alpha
	if !done {
		return
	}
	f.tween = nil
	if !f.out {
		return
	}

	then := f.onBlack
	f.onBlack = nil
	if then != nil {
		then()
	}
	// The callback may have started another fade out.
	if f.tween == nil {
		f.FadeIn()
	}
}

// Active reports whether a fade is running.
func (f *FadeController) Active() bool {
	return f.tween != nil
}

// Covering reports whether the screen is fading out. Gameplay input is
// ignored meanwhile.
func (f *FadeController) Covering() bool {
	return f.tween != nil && f.out
}

func (f *FadeController) Alpha() float32 {
	return f.alpha
}

func (f *FadeController) Draw(screen *ebiten.Image) {
	if f.alpha <= 0 {
		return
	}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()),
		color.RGBA{A: uint8(f.alpha * 255)}, false)
}
