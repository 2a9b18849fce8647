package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement
	SoundFootstepWalk
	SoundFootstepRun
	SoundJump
	// Weapon
	SoundFire
	SoundImpact
	SoundExplosion
	// Pickups and progress
	SoundCoin
	SoundCheckpoint
	// UI
	SoundMenuSelect
)

type AudioConfig struct {
	SampleRate        int     `yaml:"-"`
	DefaultMusicVol   float64 `yaml:"music_volume"`
	DefaultSFXVol     float64 `yaml:"sfx_volume"`
	MusicFadeDuration int     `yaml:"music_fade_duration"` // frames
	Muted             bool    `yaml:"muted"`
}

// SoundConfig maps sound IDs to embedded file paths.
type SoundConfig struct {
	Music             string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Sound = SoundConfig{
		Music: "audio/music/theme.wav",
		SFXPaths: map[SoundID]string{
			SoundFootstepWalk: "audio/sfx/walk.wav",
			SoundFootstepRun:  "audio/sfx/run.wav",
			SoundJump:         "audio/sfx/jump.wav",
			SoundFire:         "audio/sfx/fire.wav",
			SoundImpact:       "audio/sfx/impact.wav",
			SoundExplosion:    "audio/sfx/explosion.wav",
			SoundCoin:         "audio/sfx/coin.wav",
			SoundCheckpoint:   "audio/sfx/checkpoint.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundFootstepWalk: 0.6,
			SoundFootstepRun:  0.7,
			SoundExplosion:    1.3,
		},
	}
}
