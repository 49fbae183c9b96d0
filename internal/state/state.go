// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the game.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine keeps a stack of states. Only the top one is updated; all of them
// are drawn bottom-up, so an overlay such as the pause veil sits on the screen it covers.
type StateMachine struct {
	stack []State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Push puts s on top. The state underneath is suspended, not exited.
func (sm *StateMachine) Push(s State) {
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop exits the top state and resumes the one below it by entering it again.
func (sm *StateMachine) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	top := sm.stack[len(sm.stack)-1]
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
	if len(sm.stack) > 0 {
		sm.stack[len(sm.stack)-1].Enter()
	}
}

// Replace exits every state on the stack and leaves s as the only one.
func (sm *StateMachine) Replace(s State) {
	for len(sm.stack) > 0 {
		top := sm.stack[len(sm.stack)-1]
		sm.stack = sm.stack[:len(sm.stack)-1]
		top.Exit()
	}
	sm.Push(s)
}

func (sm *StateMachine) Update(deltaTime float64) {
	if n := len(sm.stack); n > 0 {
		sm.stack[n-1].Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	for _, s := range sm.stack {
		s.Draw(screen)
	}
}
