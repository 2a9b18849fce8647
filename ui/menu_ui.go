package ui

import (
	cfg "github.com/automoto/unexplored/config"
	"github.com/ebitenui/ebitenui"
)

// MenuUI is the title screen: the game title, Start and Quit.
type MenuUI struct {
	UI *ebitenui.UI

	OnStart func()
	OnQuit  func()

	faces faces
}

func NewMenuUI(onStart, onQuit func()) (*MenuUI, error) {
	mui := &MenuUI{OnStart: onStart, OnQuit: onQuit}

	f, err := loadFaces(cfg.UI.TitleFontSize)
	if err != nil {
		return nil, err
	}
	mui.faces = f
	mui.buildUI()
	return mui, nil
}

func (mui *MenuUI) buildUI() {
	root := rootContainer(cfg.Menu.BackgroundColor)
	content := centredColumn()

	content.AddChild(label(cfg.C.Title, &mui.faces.title, cfg.Menu.TitleColor))

	img := buttonImage(cfg.Menu.ButtonIdle, cfg.Menu.ButtonHover, cfg.Menu.ButtonPressed)
	content.AddChild(button("Start", &mui.faces.normal, img, cfg.Menu.TextColor, mui.OnStart))
	content.AddChild(button("Quit", &mui.faces.normal, img, cfg.Menu.TextColor, mui.OnQuit))
	content.AddChild(label("Enter: Start   Esc: Quit", &mui.faces.small, cfg.Menu.TextColor))

	root.AddChild(content)
	mui.UI = &ebitenui.UI{Container: root}
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
}
