// internal/component/body.go
package component

import (
	"fmt"

	"hex-colony/pkg/hexmap"

	"github.com/paulmach/orb"
)

// BodyKind tags what a collision body belongs to.
type BodyKind uint8

const (
	AgentBody BodyKind = iota
	RockBody
)

// BodyID names a collision body: an agent, or the rock filling a cell.
type BodyID struct {
	Kind  BodyKind
	Agent AgentID
	Cell  hexmap.Hex
}

func AgentBodyID(id AgentID) BodyID {
	return BodyID{Kind: AgentBody, Agent: id}
}

func RockBodyID(h hexmap.Hex) BodyID {
	return BodyID{Kind: RockBody, Cell: h}
}

func (b BodyID) String() string {
	if b.Kind == RockBody {
		return fmt.Sprintf("rock%v", b.Cell)
	}
	return fmt.Sprintf("agent#%d", b.Agent)
}

// Hit is the result of a shape cast that ran into something.
type Hit struct {
	Distance float64 // travel along the cast direction before contact
	Body     BodyID
	Point    orb.Point // contact point in world space
}
