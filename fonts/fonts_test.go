package fonts

import (
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(20, 48); err != nil {
		t.Fatalf("expected fonts to load, got %v", err)
	}
	for _, name := range []FontName{HUD, Bold, Title, Small} {
		if name.Get() == basicfont.Face7x13 {
			t.Errorf("expected %s to be a truetype face", name)
		}
	}

	hud := HUD.Get().Metrics().Height
	title := Title.Get().Metrics().Height
	if title <= hud {
		t.Errorf("expected title line height above %v, got %v", hud, title)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("expected an error for invalid ttf data")
	}
	if err := LoadFont("regular", goregular.TTF); err != nil {
		t.Errorf("expected goregular to parse, got %v", err)
	}
}

func TestUnknownFontFallsBack(t *testing.T) {
	if got := FontName("missing").Get(); got != basicfont.Face7x13 {
		t.Errorf("expected the bitmap fallback, got %T", got)
	}
}
