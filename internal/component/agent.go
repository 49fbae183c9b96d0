// internal/component/agent.go
package component

import (
	"fmt"

	"hex-colony/pkg/hexmap"

	"github.com/paulmach/orb"
)

// AgentID identifies an agent. IDs are allocated in spawn order and give the
// tie-break ordering used everywhere determinism matters.
type AgentID uint32

// Kind is the closed set of agent kinds.
type Kind uint8

const (
	Queen Kind = iota
	Worker
)

// Movable reports whether agents of this kind may ever receive a movement order.
func (k Kind) Movable() bool {
	switch k {
	case Worker:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	switch k {
	case Queen:
		return "queen"
	case Worker:
		return "worker"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// AgentState is the movement state of an agent.
type AgentState uint8

const (
	Idle AgentState = iota
	Selected
	Reserved
	Transiting
	Blocked
)

func (s AgentState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selected:
		return "selected"
	case Reserved:
		return "reserved"
	case Transiting:
		return "transiting"
	case Blocked:
		return "blocked"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Agent keeps two representations apart: Cell is the authoritative ledger cell,
// Pos is the continuous world position. They are reconciled only on arrival.
type Agent struct {
	ID     AgentID
	Kind   Kind
	Pos    orb.Point
	Cell   hexmap.Hex
	State  AgentState
	Radius float64
	Speed  float64 // world units per second

	// Retries counts consecutive blocked ticks of the current order.
	Retries int
}
