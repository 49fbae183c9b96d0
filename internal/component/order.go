// internal/component/order.go
package component

import (
	"fmt"

	"hex-colony/pkg/hexmap"

	"github.com/google/uuid"
)

// MovementOrder lives from the moment a destination is reserved until arrival or cancellation.
type MovementOrder struct {
	Agent      AgentID
	From       hexmap.Hex
	To         hexmap.Hex
	IssuedTick uint64
	Command    uuid.UUID
}

// NewOrder is the only way orders are built. Immobile kinds are filtered out long
// before this point, so reaching the panic is a programming error.
func NewOrder(a *Agent, to hexmap.Hex, tick uint64, cmd uuid.UUID) MovementOrder {
	if !a.Kind.Movable() {
		panic(fmt.Sprintf("component: movement order for immobile %s %d", a.Kind, a.ID))
	}
	return MovementOrder{
		Agent:      a.ID,
		From:       a.Cell,
		To:         to,
		IssuedTick: tick,
		Command:    cmd,
	}
}
