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

// WinScene shows the final score after the goal is reached.
type WinScene struct {
	ecs      *ecs.ECS
	services *Services
	score    int
	winUI    *ui.WinUI
	once     sync.Once
}

func NewWinScene(s *Services, score int) *WinScene {
	return &WinScene{services: s, score: score}
}

func (ws *WinScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
	if ws.winUI != nil {
		ws.winUI.Update()
	}
}

func (ws *WinScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	if ws.winUI != nil {
		ws.winUI.UI.Draw(screen)
	}
	ws.ecs.Draw(screen)
}

func (ws *WinScene) playAgain() {
	ws.services.Audio.Play(cfg.SoundMenuSelect)
	ws.services.Changer.ChangeScene(NewPlatformerScene(ws.services))
}

func (ws *WinScene) toMenu() {
	ws.services.Audio.Play(cfg.SoundMenuSelect)
	ws.services.Changer.ChangeScene(NewMenuScene(ws.services))
}

func (ws *WinScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())
	// Gameplay hides the cursor behind the reticle.
	ebiten.SetCursorMode(ebiten.CursorModeVisible)

	winUI, err := ui.NewWinUI(ws.score, ws.playAgain, ws.toMenu)
	if err != nil {
		logger.Log.Error("win ui unavailable", zap.Error(err))
	}
	ws.winUI = winUI

	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.NewUpdateMenu(ws.playAgain, ws.toMenu))

	logger.Log.Info("level won", zap.Int("score", ws.score))
}
