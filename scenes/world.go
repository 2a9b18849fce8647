package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/unexplored/assets"
	"github.com/automoto/unexplored/components"
	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/logger"
	"github.com/automoto/unexplored/systems"
	"github.com/automoto/unexplored/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const spaceCellSize = 16

type PlatformerScene struct {
	ecs      *ecs.ECS
	services *Services
	once     sync.Once
}

func NewPlatformerScene(s *Services) *PlatformerScene {
	return &PlatformerScene{services: s}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	audio := ps.services.Audio

	if err := assets.LoadShaders(); err != nil {
		logger.Log.Warn("hit flash shader unavailable", zap.Error(err))
	}

	e := ecs.NewECS(donburi.NewWorld())
	ps.ecs = e

	// Create the level entity and load level data FIRST.
	levelEntry := factory.CreateLevel(e, ps.services.Levels, ps.services.LevelIndex)
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		logger.Log.Fatal("no level to play")
	}

	// Now create the space for collision detection using the level's dimensions.
	spaceEntry := factory.CreateSpace(e, level.Width, level.Height, spaceCellSize, spaceCellSize)
	space := components.Space.Get(spaceEntry)

	factory.CreateCamera(e)
	factory.PopulateLevel(e, level, factory.LoadSprites())

	r, err := factory.NewRig(ps.services.RigParts)
	if err != nil {
		logger.Log.Fatal("player rig is incomplete", zap.Error(err))
	}
	spawnX, spawnY := cfg.Player.SpawnX, cfg.Player.SpawnY
	if level.Spawn.Found {
		spawnX, spawnY = level.Spawn.X, level.Spawn.Y
	}
	player := factory.CreatePlayer(e, spawnX, spawnY, r)

	// Snap camera to the player's start position to prevent panning from (0,0)
	camera := systems.NewCameraController(float64(cfg.C.Width), float64(cfg.C.Height), cfg.Camera)
	obj := components.Object.Get(player)
	camera.Snap(assets.Rect{X: obj.X, Y: obj.Y, Width: obj.W, Height: obj.H})

	images := assets.Images()
	effects := systems.NewEffectSystem(cfg.Effect, assets.MustFrames("vfx/explosion.png", 32, 32, 8))
	destructibles := systems.NewDestructibleSystem(e, effects, audio)
	projectiles := systems.NewProjectileSystem(cfg.Projectile, cfg.Rig.Scale, space, effects, destructibles, audio)
	respawner := &systems.Respawner{Projectiles: projectiles, Effects: effects, Camera: camera}

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdatePause(audio, ps.exitToMenu))
	e.AddSystem(systems.UpdateDebug)

	// Game systems wrapped with pause and level complete checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateRig(projectiles, audio)))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateProjectiles(projectiles)))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateEffects(effects)))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdatePickups(audio)))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateCheckpoints(audio)))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateMessage))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateRespawn(respawner)))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateGoal(ps.win)))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateCamera(camera)))

	// Add renderers
	e.AddRenderer(cfg.Default, systems.NewDrawLevel(
		images.MustLoadImage("backgrounds/far.png"),
		images.MustLoadImage("backgrounds/near.png"),
	))
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.NewDrawProjectiles(projectiles, images.MustLoadImage("objects/bullet.png"), cfg.Rig.Scale))
	e.AddRenderer(cfg.Default, systems.NewDrawEffects(effects))
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Overlay, systems.DrawHUD)
	e.AddRenderer(cfg.Overlay, systems.DrawMessage)
	e.AddRenderer(cfg.Overlay, systems.NewDrawReticle(images.MustLoadImage("ui/reticle.png")))
	e.AddRenderer(cfg.Overlay, systems.DrawPause)

	audio.PlayMusic(cfg.Sound.Music)
	logger.Log.Info("level started",
		zap.String("level", level.Name),
		zap.Float64("spawn_x", spawnX),
		zap.Float64("spawn_y", spawnY))
}

func (ps *PlatformerScene) exitToMenu() {
	ps.services.Changer.ChangeScene(NewMenuScene(ps.services))
}

func (ps *PlatformerScene) win(score int) {
	ps.services.Audio.FadeOutMusic()
	ps.services.Changer.ChangeScene(NewWinScene(ps.services, score))
}
