package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/automoto/unexplored/assets"
	"github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/fonts"
	"github.com/automoto/unexplored/logger"
	"github.com/automoto/unexplored/rig"
	"github.com/automoto/unexplored/scenes"
	"github.com/automoto/unexplored/systems"
	"github.com/automoto/unexplored/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
	fade  *systems.FadeController
	audio *systems.AudioRegistry

	watcher   *config.Watcher
	overrides config.Overrides
	quit      bool
}

// ChangeScene fades to black, swaps the scene and fades back in. Requests
// made while the screen is already darkening are dropped.
func (g *Game) ChangeScene(scene interface{}) {
	next, ok := scene.(Scene)
	if !ok || g.fade.Covering() {
		return
	}
	g.fade.FadeOut(func() {
		g.scene = next
		logger.Log.Debug("scene changed", zap.String("scene", fmt.Sprintf("%T", next)))
	})
}

func NewGame(o config.Overrides, levels []assets.Level, levelIndex int, parts *rig.Parts[*ebiten.Image]) *Game {
	g := &Game{
		fade:      systems.NewFadeController(config.Fade.Seconds),
		overrides: o,
	}

	var ctx *audio.Context
	if !o.Mute {
		ctx = audio.NewContext(config.Audio.SampleRate)
	}
	g.audio = systems.NewAudioRegistry(ctx, config.Sound, config.Audio)
	g.audio.Preload()

	services := &scenes.Services{
		Changer:    g,
		Audio:      g.audio,
		Levels:     levels,
		LevelIndex: levelIndex,
		RigParts:   parts,
		Quit:       func() { g.quit = true },
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(services)
	} else {
		g.scene = scenes.NewMenuScene(services)
	}
	g.fade.FadeIn()

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.reloadConfig()
	g.audio.Update()
	g.fade.Update(1 / float32(config.TPS))

	// The outgoing scene freezes while the screen darkens.
	if !g.fade.Covering() {
		g.scene.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	g.fade.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// reloadConfig applies edits to the config file in dev mode. A file that no
// longer validates is reported and the running tuning is kept.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Drain()
	if err != nil {
		logger.Log.Warn("config watch failed", zap.Error(err))
	}
	if !changed {
		return
	}
	s, err := config.Load(g.overrides.ConfigPath, g.overrides)
	if err != nil {
		logger.Log.Warn("config reload rejected", zap.Error(err))
		return
	}
	s.Apply()
	if g.audio.Muted() != config.Audio.Muted {
		g.audio.SetMuted(config.Audio.Muted)
	}
	logger.Log.Info("config reloaded", zap.String("path", g.overrides.ConfigPath))
}

// levelIndex finds the level named on the command line by path or file name.
func levelIndex(levels []assets.Level, name string) (int, bool) {
	if name == "" {
		return 0, true
	}
	for i, l := range levels {
		if l.Name == name || path.Base(l.Name) == path.Base(name) {
			return i, true
		}
	}
	return 0, false
}

func main() {
	var o config.Overrides
	o.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := logger.Init(o.LogLevel, o.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	settings, err := config.Load(o.ConfigPath, o)
	if err != nil {
		logger.Log.Fatal("invalid configuration", zap.Error(err))
	}
	settings.Apply()

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize); err != nil {
		logger.Log.Fatal("fonts", zap.Error(err))
	}

	levels := assets.NewLevelLoader().MustLoadLevels()
	index, ok := levelIndex(levels, o.Level)
	if !ok {
		logger.Log.Fatal("unknown level", zap.String("level", o.Level))
	}

	// Every pose the rig can reach must have art before the window opens.
	parts, err := factory.LoadRigParts(assets.Images())
	if err == nil {
		_, err = factory.NewRig(parts)
	}
	if err != nil {
		logger.Log.Fatal("player rig is incomplete", zap.Error(err))
	}

	game := NewGame(o, levels, index, parts)
	if config.Debug.Dev && o.ConfigPath != "" {
		w, err := config.NewWatcher(o.ConfigPath)
		if err != nil {
			logger.Log.Warn("config hot reload disabled", zap.Error(err))
		} else {
			game.watcher = w
			defer w.Close()
		}
	}

	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(o.Fullscreen)

	logger.Log.Info("starting",
		zap.Int("width", config.C.Width),
		zap.Int("height", config.C.Height),
		zap.Int("levels", len(levels)),
		zap.Bool("dev", config.Debug.Dev))

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.Error("game stopped", zap.Error(err))
	}
}
