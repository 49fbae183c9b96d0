// internal/app/commands.go
package app

import (
	"slices"

	"hex-colony/internal/component"
	"hex-colony/internal/event"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type commandKind uint8

const (
	cmdSelect commandKind = iota
	cmdToggle
	cmdClear
	cmdMove
	cmdStop
)

type command struct {
	id    uuid.UUID
	kind  commandKind
	ids   []component.AgentID
	point orb.Point
}

// Select replaces the selection with ids.
func (c *Colony) Select(ids []component.AgentID) uuid.UUID {
	return c.enqueue(command{kind: cmdSelect, ids: slices.Clone(ids)})
}

// Toggle flips the selection state of each of ids.
func (c *Colony) Toggle(ids []component.AgentID) uuid.UUID {
	return c.enqueue(command{kind: cmdToggle, ids: slices.Clone(ids)})
}

// ClearSelection empties the selection.
func (c *Colony) ClearSelection() uuid.UUID {
	return c.enqueue(command{kind: cmdClear})
}

// MoveSelectedTo orders the current selection toward the cell containing p.
// The returned id tags every order and event the command produces.
func (c *Colony) MoveSelectedTo(p orb.Point) uuid.UUID {
	return c.enqueue(command{kind: cmdMove, point: p})
}

// Stop cancels the outstanding orders of ids.
func (c *Colony) Stop(ids []component.AgentID) uuid.UUID {
	return c.enqueue(command{kind: cmdStop, ids: slices.Clone(ids)})
}

func (c *Colony) enqueue(cmd command) uuid.UUID {
	cmd.id = uuid.New()
	c.mu.Lock()
	c.pending = append(c.pending, cmd)
	c.mu.Unlock()
	return cmd.id
}

func (c *Colony) apply(cmd command) {
	switch cmd.kind {
	case cmdSelect:
		c.Selection.Replace(cmd.ids)
	case cmdToggle:
		c.Selection.Toggle(cmd.ids)
	case cmdClear:
		c.Selection.Clear()
	case cmdMove:
		dest := c.World.Layout.WorldToHex(cmd.point)
		orders := c.Assignment.Assign(c.Selection.IDs(), dest, cmd.id)
		c.logger.Debug("move command", "command", cmd.id.String(), "dest", dest.String(), "orders", len(orders))
		if len(orders) == 0 {
			// Nobody could go, so the click is read as a deselect.
			c.Selection.Clear()
		}
	case cmdStop:
		for _, id := range cmd.ids {
			c.Transit.Cancel(id, event.ReasonStopped)
		}
	}
}
