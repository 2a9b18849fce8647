package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsAreValid(t *testing.T) {
	s := Defaults()
	if err := s.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if s.Player.WalkSpeed != 4.6 || s.Player.RunSpeed != 9.3 {
		t.Errorf("expected walk 4.6 and run 9.3, got %v and %v", s.Player.WalkSpeed, s.Player.RunSpeed)
	}
	if s.Rig.UpdatesPerFrame != 10 || s.Effect.UpdatesPerFrame != 5 {
		t.Errorf("expected 10 and 5 updates per frame, got %d and %d", s.Rig.UpdatesPerFrame, s.Effect.UpdatesPerFrame)
	}
	if s.Projectile.InheritMomentum {
		t.Error("expected projectiles not to inherit momentum by default")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "unexplored.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadLayersFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
player:
  run_speed: 12
camera:
  left_margin: 300
projectile:
  inherit_momentum: true
audio:
  muted: false
`)
	s, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if s.Player.RunSpeed != 12 {
		t.Errorf("expected run speed 12, got %v", s.Player.RunSpeed)
	}
	if s.Player.WalkSpeed != 4.6 {
		t.Errorf("expected untouched walk speed 4.6, got %v", s.Player.WalkSpeed)
	}
	if s.Camera.LeftMargin != 300 || s.Camera.RightMargin != 400 {
		t.Errorf("expected margins 300/400, got %v/%v", s.Camera.LeftMargin, s.Camera.RightMargin)
	}
	if !s.Projectile.InheritMomentum {
		t.Error("expected inherit_momentum from file")
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "audio:\n  muted: false\ndebug:\n  dev: false\n")
	s, err := Load(path, Overrides{Mute: true, Dev: true, Level: "levels/level01.tmx"})
	if err != nil {
		t.Fatal(err)
	}
	if !s.Audio.Muted {
		t.Error("expected -mute to win over the file")
	}
	if !s.Debug.Dev || !s.Debug.SkipMenu {
		t.Errorf("expected dev and skip menu, got %+v", s.Debug)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Overrides{}); err == nil {
		t.Error("expected an error for a missing file")
	}
	path := writeConfig(t, "player:\n  walk_speed: [fast\n")
	if _, err := Load(path, Overrides{}); err == nil {
		t.Error("expected an error for malformed yaml")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero rig rate", func(s *Settings) { s.Rig.UpdatesPerFrame = 0 }},
		{"zero gun rate", func(s *Settings) { s.Rig.GunUpdatesPerFrame = 0 }},
		{"zero effect rate", func(s *Settings) { s.Effect.UpdatesPerFrame = 0 }},
		{"negative speed", func(s *Settings) { s.Player.WalkSpeed = -1 }},
		{"zero projectile speed", func(s *Settings) { s.Projectile.Speed = 0 }},
		{"zero cull", func(s *Settings) { s.Projectile.CullDistance = 0 }},
		{"negative margin", func(s *Settings) { s.Camera.TopMargin = -5 }},
		{"band too narrow", func(s *Settings) { s.Camera.LeftMargin, s.Camera.RightMargin = 470, 470 }},
		{"band too short", func(s *Settings) { s.Camera.TopMargin, s.Camera.BottomMargin = 250, 250 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			err := s.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestApplySetsGlobals(t *testing.T) {
	t.Cleanup(func() { Defaults().Apply() })

	s := Defaults()
	s.Camera.LeftMargin = 123
	s.Display.Width = 1280
	s.Apply()

	if Camera.LeftMargin != 123 {
		t.Errorf("expected live left margin 123, got %v", Camera.LeftMargin)
	}
	if C.Width != 1280 {
		t.Errorf("expected live width 1280, got %d", C.Width)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	path := writeConfig(t, "player:\n  run_speed: 9.3\n")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	other := filepath.Join(filepath.Dir(path), "notes.txt")
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("player:\n  run_speed: 11\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		changed, err := w.Drain()
		if err != nil {
			t.Fatalf("unexpected watcher error: %v", err)
		}
		if changed {
			break
		}
		select {
		case <-deadline:
			t.Fatal("expected a change event for the config file")
		case <-time.After(20 * time.Millisecond):
		}
	}

	if err := w.Close(); err != nil {
		t.Errorf("expected clean close, got %v", err)
	}
	if _, ok := <-w.Done(); ok {
		t.Error("expected the watch loop to have exited")
	}
}
