package systems

import (
	"github.com/automoto/unexplored/assets"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/logger"
	"github.com/automoto/unexplored/rig"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

// SoundPlayer plays a sound effect and returns immediately.
type SoundPlayer interface {
	Play(id cfg.SoundID)
}

// AudioRegistry maps sound IDs to decoded clips and owns the music player.
// A registry without an audio context stays silent.
type AudioRegistry struct {
	loader *assets.AudioLoader
	sounds cfg.SoundConfig

	music    *audio.Player
	musicKey string

	musicVolume float64
	sfxVolume   float64
	muted       bool

	fadeTimer    int
	fadeDuration int
	fadeStart    float64
}

func NewAudioRegistry(ctx *audio.Context, sounds cfg.SoundConfig, settings cfg.AudioConfig) *AudioRegistry {
	a := &AudioRegistry{
		sounds:       sounds,
		musicVolume:  settings.DefaultMusicVol,
		sfxVolume:    settings.DefaultSFXVol,
		muted:        settings.Muted,
		fadeDuration: settings.MusicFadeDuration,
	}
	if ctx != nil {
		a.loader = assets.NewAudioLoader(ctx)
	}
	return a
}

// Preload decodes every sound effect up front so the first play does not stall.
func (a *AudioRegistry) Preload() {
	if a.loader == nil {
		return
	}
	for id, path := range a.sounds.SFXPaths {
		if err := a.loader.PreloadSFX(path); err != nil {
			logger.Log.Warn("sound effect unavailable",
				zap.Int("sound", int(id)),
				zap.String("path", path),
				zap.Error(err))
		}
	}
}

func (a *AudioRegistry) Play(id cfg.SoundID) {
	if a.loader == nil || a.muted || a.sfxVolume <= 0 {
		return
	}
	path, ok := a.sounds.SFXPaths[id]
	if !ok {
		return
	}
	player, err := a.loader.LoadSFX(path)
	if err != nil {
		logger.Log.Debug("failed to play sound", zap.String("path", path), zap.Error(err))
		return
	}

	volume := a.sfxVolume
	if mult, ok := a.sounds.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// PlayCues turns the rig's sound cues into sound effects.
func (a *AudioRegistry) PlayCues(cues []rig.Cue) {
	for _, c := range cues {
		a.Play(CueSound(c))
	}
}

// CueSound maps a rig cue to its sound effect.
func CueSound(c rig.Cue) cfg.SoundID {
	switch c {
	case rig.CueFootstepWalk:
		return cfg.SoundFootstepWalk
	case rig.CueFootstepRun:
		return cfg.SoundFootstepRun
	case rig.CueJump:
		return cfg.SoundJump
	case rig.CueFire:
		return cfg.SoundFire
	}
	return cfg.SoundNone
}

// PlayMusic starts a looping track. Asking for the current track is a no-op.
func (a *AudioRegistry) PlayMusic(path string) {
	if a.loader == nil || a.musicKey == path {
		return
	}
	a.StopMusic()

	player, err := a.loader.LoadMusic(path)
	if err != nil {
		logger.Log.Warn("music unavailable", zap.String("path", path), zap.Error(err))
		return
	}
	player.SetVolume(a.effectiveMusicVolume())
	player.Play()

	a.music = player
	a.musicKey = path
}

func (a *AudioRegistry) effectiveMusicVolume() float64 {
	if a.muted {
		return 0
	}
	return a.musicVolume
}

// Update runs the music fade out. Call it once per tick.
func (a *AudioRegistry) Update() {
	if a.fadeTimer <= 0 {
		return
	}
	a.fadeTimer--
	if a.music != nil && a.fadeDuration > 0 {
		a.music.SetVolume(a.fadeStart * float64(a.fadeTimer) / float64(a.fadeDuration))
	}
	if a.fadeTimer == 0 {
		a.StopMusic()
	}
}

// FadeOutMusic starts a music fade out transition
func (a *AudioRegistry) FadeOutMusic() {
	if a.music == nil || a.fadeDuration <= 0 {
		a.StopMusic()
		return
	}
	a.fadeTimer = a.fadeDuration
	a.fadeStart = a.effectiveMusicVolume()
}

// StopMusic immediately stops the current music
func (a *AudioRegistry) StopMusic() {
	if a.music != nil {
		_ = a.music.Close()
		a.music = nil
	}
	a.musicKey = ""
	a.fadeTimer = 0
}

func (a *AudioRegistry) PauseMusic() {
	if a.music != nil {
		a.music.Pause()
	}
}

func (a *AudioRegistry) ResumeMusic() {
	if a.music != nil {
		a.music.Play()
	}
}

// SetMuted silences both music and sound effects.
func (a *AudioRegistry) SetMuted(muted bool) {
	a.muted = muted
	if a.music != nil && a.fadeTimer == 0 {
		a.music.SetVolume(a.effectiveMusicVolume())
	}
}

func (a *AudioRegistry) Muted() bool {
	return a.muted
}
