// internal/state/menu_state.go
package state

import (
	"log"
	"log/slog"

	"hex-colony/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var menuLines = []string{
	"HEX COLONY",
	"",
	"Left click a worker to select it, drag to box-select.",
	"Left click an empty cell or right click anywhere to move the selection.",
	"S stops the selection, Esc clears it, P pauses.",
	"",
	"Press Space to start.",
}

// MenuState: стартовый экран с подсказкой по управлению
type MenuState struct {
	sm     *StateMachine
	cfg    config.Config
	logger *slog.Logger
}

func NewMenuState(sm *StateMachine, cfg config.Config, logger *slog.Logger) *MenuState {
	return &MenuState{sm: sm, cfg: cfg, logger: logger}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		cs, err := NewColonyState(m.sm, m.cfg, m.logger)
		if err != nil {
			log.Fatal(err)
		}
		m.sm.Replace(cs)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	y := config.ScreenHeight/2 - len(menuLines)*config.HUDLineHeight/2
	for _, line := range menuLines {
		x := (config.ScreenWidth - text.BoundString(face, line).Dx()) / 2
		text.Draw(screen, line, face, x, y, config.TextLightColor)
		y += config.HUDLineHeight
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
