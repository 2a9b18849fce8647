package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports tuning the game cannot run with.
var ErrInvalidConfig = errors.New("config: invalid")

// Settings is a snapshot of every tunable section. The globals in this package
// are its live copy, set by Apply.
type Settings struct {
	Display     Config            `yaml:"display"`
	Player      PlayerConfig      `yaml:"player"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Rig         RigConfig         `yaml:"rig"`
	Projectile  ProjectileConfig  `yaml:"projectile"`
	Effect      EffectConfig      `yaml:"effect"`
	ScreenShake ScreenShakeConfig `yaml:"screen_shake"`
	Camera      CameraConfig      `yaml:"camera"`
	Parallax    ParallaxConfig    `yaml:"parallax"`
	Fade        FadeConfig        `yaml:"fade"`
	Pickup      PickupConfig      `yaml:"pickup"`
	Debug       DebugConfig       `yaml:"debug"`
	Audio       AudioConfig       `yaml:"audio"`
	Pause       PauseConfig       `yaml:"-"`
	Menu        MenuConfig        `yaml:"-"`
	Win         WinConfig         `yaml:"win"`
	Message     MessageConfig     `yaml:"message"`
	UI          UIConfig          `yaml:"ui"`
}

// Apply makes s the live configuration.
func (s Settings) Apply() {
	display := s.Display
	C = &display
	Player = s.Player
	Physics = s.Physics
	Rig = s.Rig
	Projectile = s.Projectile
	Effect = s.Effect
	ScreenShake = s.ScreenShake
	Camera = s.Camera
	Parallax = s.Parallax
	Fade = s.Fade
	Pickup = s.Pickup
	Debug = s.Debug
	Audio = s.Audio
	Pause = s.Pause
	Menu = s.Menu
	Win = s.Win
	Message = s.Message
	UI = s.UI
}

// Load layers defaults < YAML file < flag overrides and validates the result.
// An empty path skips the file. Nothing is applied; call Apply on success.
func Load(path string, o Overrides) (Settings, error) {
	s := Defaults()
	if path != "" {
		if err := loadFromFile(&s, path); err != nil {
			return Settings{}, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}
	o.apply(&s)
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func loadFromFile(s *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, s)
}

// Validate rejects values that would stall the clocks or trap the camera.
func (s Settings) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(s.Display.Width > 0 && s.Display.Height > 0, "display size %dx%d", s.Display.Width, s.Display.Height)
	check(s.Rig.Scale > 0, "rig scale %v", s.Rig.Scale)
	check(s.Rig.UpdatesPerFrame > 0, "rig updates_per_frame %d", s.Rig.UpdatesPerFrame)
	check(s.Rig.GunUpdatesPerFrame > 0, "rig gun_updates_per_frame %d", s.Rig.GunUpdatesPerFrame)
	check(s.Effect.UpdatesPerFrame > 0, "effect updates_per_frame %d", s.Effect.UpdatesPerFrame)
	check(s.Player.WalkSpeed > 0 && s.Player.RunSpeed > 0, "player speeds must be positive")
	check(s.Player.CollisionWidth > 0 && s.Player.CollisionHeight > 0, "player collision box %vx%v",
		s.Player.CollisionWidth, s.Player.CollisionHeight)
	check(s.Projectile.Speed > 0, "projectile speed %v", s.Projectile.Speed)
	check(s.Projectile.CullDistance > 0, "projectile cull_distance %v", s.Projectile.CullDistance)
	check(s.Projectile.MaxStep > 0, "projectile max_step %v", s.Projectile.MaxStep)
	check(s.Fade.Seconds > 0, "fade seconds %v", s.Fade.Seconds)

	cam := s.Camera
	check(cam.LeftMargin >= 0 && cam.RightMargin >= 0 && cam.TopMargin >= 0 && cam.BottomMargin >= 0,
		"camera margins must not be negative")
	bandW := float64(s.Display.Width) - cam.LeftMargin - cam.RightMargin
	bandH := float64(s.Display.Height) - cam.TopMargin - cam.BottomMargin
	check(bandW >= s.Player.CollisionWidth, "camera band %v wide cannot hold the player", bandW)
	check(bandH >= s.Player.CollisionHeight, "camera band %v tall cannot hold the player", bandH)

	return errors.Join(errs...)
}
