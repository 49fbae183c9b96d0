// internal/app/colony.go
package app

import (
	"fmt"
	"log/slog"
	"sync"

	"hex-colony/internal/component"
	"hex-colony/internal/config"
	"hex-colony/internal/entity"
	"hex-colony/internal/event"
	"hex-colony/internal/system"
	"hex-colony/pkg/hexmap"

	"github.com/paulmach/orb"
)

// Colony holds the simulation state and is the command surface for the input layer.
// Commands may be queued from any goroutine; they take effect in the next Step.
type Colony struct {
	cfg             config.Config
	World           *entity.World
	Selection       *system.SelectionSystem
	Assignment      *system.AssignmentSystem
	Transit         *system.TransitSystem
	Journal         *event.Journal
	EventDispatcher *event.Dispatcher
	logger          *slog.Logger

	mu         sync.Mutex
	pending    []command
	lastEvents []event.Event
}

// NewColony builds the board, spawns the Queen on the origin cell and the workers
// around her, and wires the systems. origin is the world point of the center cell.
func NewColony(cfg config.Config, origin orb.Point, logger *slog.Logger) (*Colony, error) {
	if logger == nil {
		logger = slog.Default()
	}

	hexMap := hexmap.NewHexMap(cfg.Grid.MapRadius)
	rockRadius := 0.0
	if cfg.Rocks.Enabled {
		hexMap.GenerateRocks(hexmap.RockParams{
			Seed:      cfg.Rocks.Seed,
			Threshold: cfg.Rocks.Threshold,
			Frequency: cfg.Rocks.Frequency,
			Octaves:   cfg.Rocks.Octaves,
			KeepClear: cfg.Rocks.KeepClear,
		})
		rockRadius = cfg.Grid.HexSize * cfg.Rocks.RadiusFactor
	}

	world := entity.NewWorld(hexMap, hexmap.NewLayout(cfg.Grid.HexSize, origin))
	if err := spawnColony(world, cfg.Colony); err != nil {
		return nil, err
	}

	eventDispatcher := event.NewDispatcher()
	journal := event.NewJournal(eventDispatcher)
	probe := system.NewWorldProbe(world, cfg.Colony.WorkerRadius, rockRadius)

	c := &Colony{
		cfg:             cfg,
		World:           world,
		Selection:       system.NewSelectionSystem(world),
		Assignment:      system.NewAssignmentSystem(world, journal, cfg.Assignment, logger),
		Transit:         system.NewTransitSystem(world, probe, journal, cfg.Transit, logger),
		Journal:         journal,
		EventDispatcher: eventDispatcher,
		logger:          logger,
	}

	logger.Info("colony created",
		"workers", cfg.Colony.Workers,
		"map_radius", cfg.Grid.MapRadius,
		"rocks", len(hexMap.Rocks()),
		"tick_rate_hz", cfg.Transit.TickRateHz,
	)
	return c, nil
}

func spawnColony(w *entity.World, cfg config.Colony) error {
	if _, err := w.Spawn(component.Queen, hexmap.Origin, cfg.QueenRadius, 0); err != nil {
		return err
	}
	spawned := 0
	for _, h := range hexmap.Spiral(hexmap.Origin, w.Map.Radius)[1:] {
		if spawned == cfg.Workers {
			break
		}
		if !w.Map.IsPassable(h) {
			continue
		}
		if _, err := w.Spawn(component.Worker, h, cfg.WorkerRadius, cfg.WorkerSpeed); err != nil {
			return err
		}
		spawned++
	}
	if spawned < cfg.Workers {
		return fmt.Errorf("spawn workers: board has room for %d of %d", spawned, cfg.Workers)
	}
	return nil
}

// SetProbe replaces the collision capability used by transit.
func (c *Colony) SetProbe(p system.Probe) {
	c.Transit.SetProbe(p)
}

// Config returns the configuration the colony was built with.
func (c *Colony) Config() config.Config {
	return c.cfg
}

// Step runs one fixed tick: queued commands first, then transit. Selected agents
// whose order ended this tick show as Selected again.
func (c *Colony) Step() {
	c.mu.Lock()
	cmds := c.pending
	c.pending = nil
	c.mu.Unlock()

	c.World.Tick++
	c.Journal.Begin(c.World.Tick)
	for _, cmd := range cmds {
		c.apply(cmd)
	}
	c.Transit.Update(c.cfg.Transit.TickDuration())
	c.Selection.Resync()
	c.lastEvents = c.Journal.Events()
}

// Tick returns the number of completed ticks.
func (c *Colony) Tick() uint64 {
	return c.World.Tick
}

// Events returns the events of the last completed tick in emission order.
func (c *Colony) Events() []event.Event {
	out := make([]event.Event, len(c.lastEvents))
	copy(out, c.lastEvents)
	return out
}

// Map returns the board.
func (c *Colony) Map() *hexmap.HexMap {
	return c.World.Map
}

// Layout returns the world-space layout of the board.
func (c *Colony) Layout() hexmap.Layout {
	return c.World.Layout
}
