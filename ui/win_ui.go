package ui

import (
	"fmt"

	cfg "github.com/automoto/unexplored/config"
	"github.com/ebitenui/ebitenui"
)

// WinUI is shown after the player reaches the goal.
type WinUI struct {
	UI *ebitenui.UI

	OnPlayAgain func()
	OnMenu      func()

	score int
	faces faces
}

func NewWinUI(score int, onPlayAgain, onMenu func()) (*WinUI, error) {
	wui := &WinUI{score: score, OnPlayAgain: onPlayAgain, OnMenu: onMenu}

	f, err := loadFaces(cfg.UI.TitleFontSize)
	if err != nil {
		return nil, err
	}
	wui.faces = f
	wui.buildUI()
	return wui, nil
}

func (wui *WinUI) buildUI() {
	root := rootContainer(cfg.Win.BackgroundColor)
	content := centredColumn()

	content.AddChild(label(cfg.Win.Title, &wui.faces.title, cfg.Win.TitleColor))
	content.AddChild(label(fmt.Sprintf(cfg.Win.Message, wui.score), &wui.faces.normal, cfg.White))

	img := buttonImage(cfg.Menu.ButtonIdle, cfg.Menu.ButtonHover, cfg.Menu.ButtonPressed)
	content.AddChild(button("Play again", &wui.faces.normal, img, cfg.Menu.TextColor, wui.OnPlayAgain))
	content.AddChild(button("Main menu", &wui.faces.normal, img, cfg.Menu.TextColor, wui.OnMenu))

	root.AddChild(content)
	wui.UI = &ebitenui.UI{Container: root}
}

func (wui *WinUI) Update() {
	wui.UI.Update()
}
