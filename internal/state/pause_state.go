// internal/state/pause_state.go
package state

import (
	"image/color"

	"hex-colony/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*PauseState)(nil)

// PauseState is pushed over the colony. The simulation underneath is not updated
// while it is on top; its frame still shows through a veil.
type PauseState struct {
	sm *StateMachine
}

func NewPauseState(sm *StateMachine) *PauseState {
	return &PauseState{sm: sm}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), color.RGBA{0, 0, 0, 128}, false)

	const label = "PAUSED"
	face := basicfont.Face7x13
	x := (config.ScreenWidth - text.BoundString(face, label).Dx()) / 2
	text.Draw(screen, label, face, x, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
