package config

import "image/color"

// TPS is the fixed simulation rate.
const TPS = 60

// Config holds the logical screen the game renders at.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayerConfig contains movement tuning for the rig body.
type PlayerConfig struct {
	WalkSpeed  float64 `yaml:"walk_speed"`
	RunSpeed   float64 `yaml:"run_speed"`
	JumpSpeed  float64 `yaml:"jump_speed"`
	ClimbSpeed float64 `yaml:"climb_speed"`

	// JumpProbe is how far below the feet a floor or ladder still counts as standing.
	JumpProbe float64 `yaml:"jump_probe"`

	// Collision box around the rig centre, in world pixels.
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`

	// Used when a level has no PlayerSpawn object. Feet position.
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	// FallMargin is how far below the map the player may drop before a reset.
	FallMargin float64 `yaml:"fall_margin"`
}

// RigConfig drives the limb animation clocks.
type RigConfig struct {
	Scale              float64 `yaml:"scale"`
	UpdatesPerFrame    int     `yaml:"updates_per_frame"`
	GunUpdatesPerFrame int     `yaml:"gun_updates_per_frame"`
}

type ProjectileConfig struct {
	Speed float64 `yaml:"speed"`
	// MuzzleDistance is measured in art pixels and scaled with the rig.
	MuzzleDistance float64 `yaml:"muzzle_distance"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	// CullDistance applies per axis, relative to the player.
	CullDistance    float64 `yaml:"cull_distance"`
	InheritMomentum bool    `yaml:"inherit_momentum"`
	MomentumFactor  float64 `yaml:"momentum_factor"`
	// MaxStep bounds the distance covered per collision test.
	MaxStep float64 `yaml:"max_step"`
}

type EffectConfig struct {
	UpdatesPerFrame int     `yaml:"updates_per_frame"`
	ImpactScale     float64 `yaml:"impact_scale"`
	BarrelScale     float64 `yaml:"barrel_scale"`
}

type ScreenShakeConfig struct {
	ExplosionIntensity float64 `yaml:"explosion_intensity"`
	ExplosionDuration  int     `yaml:"explosion_duration"`
}

// CameraConfig sets the deadzone band, in screen pixels from each edge.
type CameraConfig struct {
	LeftMargin   float64 `yaml:"left_margin"`
	RightMargin  float64 `yaml:"right_margin"`
	TopMargin    float64 `yaml:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
}

type ParallaxConfig struct {
	Far  float64 `yaml:"far"`
	Near float64 `yaml:"near"`
}

type FadeConfig struct {
	Seconds float32 `yaml:"seconds"`
}

type PickupConfig struct {
	BobHeight  float64 `yaml:"bob_height"`
	BobSeconds float32 `yaml:"bob_seconds"`
	HitFlash   int     `yaml:"hit_flash"`
}

type DebugConfig struct {
	Dev      bool `yaml:"dev"`
	SkipMenu bool `yaml:"skip_menu"`
}

type PauseConfig struct {
	OverlayColor      color.RGBA `yaml:"-"`
	TextColorNormal   color.RGBA `yaml:"-"`
	TextColorSelected color.RGBA `yaml:"-"`
	MenuItemHeight    float64    `yaml:"-"`
	MenuItemGap       float64    `yaml:"-"`
	MenuOptions       []string   `yaml:"-"`
}

type MenuConfig struct {
	BackgroundColor color.RGBA `yaml:"-"`
	TitleColor      color.RGBA `yaml:"-"`
	ButtonIdle      color.RGBA `yaml:"-"`
	ButtonHover     color.RGBA `yaml:"-"`
	ButtonPressed   color.RGBA `yaml:"-"`
	TextColor       color.RGBA `yaml:"-"`
}

type WinConfig struct {
	BackgroundColor color.RGBA `yaml:"-"`
	TitleColor      color.RGBA `yaml:"-"`
	Title           string     `yaml:"title"`
	Message         string     `yaml:"message"`
}

// MessageConfig controls the hint boxes placed in levels.
type MessageConfig struct {
	ActivationRadius float64    `yaml:"activation_radius"`
	DisplayDuration  int        `yaml:"display_duration"`
	BoxPadding       float64    `yaml:"-"`
	BoxColor         color.RGBA `yaml:"-"`
	TextColor        color.RGBA `yaml:"-"`
	TopMargin        float64    `yaml:"-"`
}

type UIConfig struct {
	HUDFontSize   float64    `yaml:"hud_font_size"`
	TitleFontSize float64    `yaml:"title_font_size"`
	HUDTextColor  color.RGBA `yaml:"-"`
	HUDTextBg     color.RGBA `yaml:"-"`

	DebugSolid      color.RGBA `yaml:"-"`
	DebugLadder     color.RGBA `yaml:"-"`
	DebugPlayer     color.RGBA `yaml:"-"`
	DebugProjectile color.RGBA `yaml:"-"`
}

var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Rig RigConfig
var Projectile ProjectileConfig
var Effect EffectConfig
var ScreenShake ScreenShakeConfig
var Camera CameraConfig
var Parallax ParallaxConfig
var Fade FadeConfig
var Pickup PickupConfig
var Debug DebugConfig
var Pause PauseConfig
var Menu MenuConfig
var Win WinConfig
var Message MessageConfig
var UI UIConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold         = color.RGBA{R: 242, G: 196, B: 48, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	Defaults().Apply()
}

// Defaults is the tuning the game ships with.
func Defaults() Settings {
	return Settings{
		Display: Config{
			Width:  960,
			Height: 540,
			Title:  "Unexplored",
		},
		Player: PlayerConfig{
			WalkSpeed:       4.6,
			RunSpeed:        9.3,
			JumpSpeed:       25,
			ClimbSpeed:      4.6,
			JumpProbe:       4,
			CollisionWidth:  28,
			CollisionHeight: 120,
			SpawnX:          250,
			SpawnY:          896,
		},
		Physics: PhysicsConfig{
			Gravity:      0.91,
			MaxFallSpeed: 30,
			FallMargin:   200,
		},
		Rig: RigConfig{
			Scale:              2,
			UpdatesPerFrame:    10,
			GunUpdatesPerFrame: 3,
		},
		Projectile: ProjectileConfig{
			Speed:           50,
			MuzzleDistance:  16,
			Width:           8,
			Height:          4,
			CullDistance:    2000,
			InheritMomentum: false,
			MomentumFactor:  1,
			MaxStep:         12,
		},
		Effect: EffectConfig{
			UpdatesPerFrame: 5,
			ImpactScale:     1,
			BarrelScale:     3,
		},
		ScreenShake: ScreenShakeConfig{
			ExplosionIntensity: 6,
			ExplosionDuration:  14,
		},
		Camera: CameraConfig{
			LeftMargin:   400,
			RightMargin:  400,
			TopMargin:    180,
			BottomMargin: 180,
		},
		Parallax: ParallaxConfig{
			Far:  0.2,
			Near: 0.5,
		},
		Fade: FadeConfig{
			Seconds: 0.5,
		},
		Pickup: PickupConfig{
			BobHeight:  6,
			BobSeconds: 0.8,
			HitFlash:   6,
		},
		Debug: DebugConfig{},
		Audio: AudioConfig{
			SampleRate:        44100,
			DefaultMusicVol:   0.6,
			DefaultSFXVol:     1.0,
			MusicFadeDuration: 60,
		},
		Pause: PauseConfig{
			OverlayColor:      BlackOverlay,
			TextColorNormal:   White,
			TextColorSelected: BrightOrange,
			MenuItemHeight:    30,
			MenuItemGap:       15,
			MenuOptions:       []string{"Resume", "Main Menu"},
		},
		Menu: MenuConfig{
			BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
			TitleColor:      Orange,
			ButtonIdle:      DarkBlue,
			ButtonHover:     LightBlue,
			ButtonPressed:   BrightOrange,
			TextColor:       White,
		},
		Win: WinConfig{
			BackgroundColor: color.RGBA{R: 10, G: 30, B: 20, A: 255},
			TitleColor:      BrightGreen,
			Title:           "You made it!",
			Message:         "Score: %d",
		},
		Message: MessageConfig{
			ActivationRadius: 120,
			DisplayDuration:  240,
			BoxPadding:       8,
			BoxColor:         color.RGBA{A: 200},
			TextColor:        White,
			TopMargin:        30,
		},
		UI: UIConfig{
			HUDFontSize:     20,
			TitleFontSize:   48,
			HUDTextColor:    White,
			HUDTextBg:       color.RGBA{A: 140},
			DebugSolid:      color.RGBA{R: 255, A: 160},
			DebugLadder:     color.RGBA{G: 200, B: 255, A: 160},
			DebugPlayer:     color.RGBA{G: 255, A: 200},
			DebugProjectile: color.RGBA{R: 255, G: 255, A: 255},
		},
	}
}
