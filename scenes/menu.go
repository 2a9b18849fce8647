package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/unexplored/config"
	"github.com/automoto/unexplored/logger"
	"github.com/automoto/unexplored/systems"
	"github.com/automoto/unexplored/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs      *ecs.ECS
	services *Services
	menuUI   *ui.MenuUI
	once     sync.Once
}

func NewMenuScene(s *Services) *MenuScene {
	return &MenuScene{services: s}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	if ms.menuUI != nil {
		ms.menuUI.Update()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	if ms.menuUI != nil {
		ms.menuUI.UI.Draw(screen)
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) start() {
	ms.services.Audio.Play(cfg.SoundMenuSelect)
	ms.services.Changer.ChangeScene(NewPlatformerScene(ms.services))
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	// Gameplay hides the cursor behind the reticle.
	ebiten.SetCursorMode(ebiten.CursorModeVisible)

	menuUI, err := ui.NewMenuUI(ms.start, ms.services.Quit)
	if err != nil {
		logger.Log.Error("menu ui unavailable", zap.Error(err))
	}
	ms.menuUI = menuUI

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.start, ms.services.Quit))

	ms.services.Audio.PlayMusic(cfg.Sound.Music)
	logger.Log.Debug("scene ready", zap.String("scene", "menu"))
}
