package systems

import (
	"testing"

	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/rig"
)

// A registry without an audio context must accept every call silently.
func TestSilentRegistry(t *testing.T) {
	a := NewAudioRegistry(nil, cfg.Sound, cfg.Audio)
	a.Preload()
	a.Play(cfg.SoundFire)
	a.PlayMusic(cfg.Sound.Music)
	a.PauseMusic()
	a.ResumeMusic()
	a.FadeOutMusic()
	a.Update()
	a.StopMusic()

	a.SetMuted(true)
	if !a.Muted() {
		t.Error("expected the registry muted")
	}
	a.SetMuted(false)
	if a.Muted() {
		t.Error("expected the registry unmuted")
	}
}

func TestCueSound(t *testing.T) {
	tests := []struct {
		cue  rig.Cue
		want cfg.SoundID
	}{
		{rig.CueFootstepWalk, cfg.SoundFootstepWalk},
		{rig.CueFootstepRun, cfg.SoundFootstepRun},
		{rig.CueJump, cfg.SoundJump},
		{rig.CueFire, cfg.SoundFire},
		{rig.Cue(-1), cfg.SoundNone},
	}
	for _, tt := range tests {
		if got := CueSound(tt.cue); got != tt.want {
			t.Errorf("cue %d: expected sound %d, got %d", tt.cue, tt.want, got)
		}
	}
}
