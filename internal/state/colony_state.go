// internal/state/colony_state.go
package state

import (
	"fmt"
	"log/slog"

	"hex-colony/internal/app"
	"hex-colony/internal/config"
	"hex-colony/internal/event"
	"hex-colony/pkg/render"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

var _ State = (*ColonyState)(nil)

// ColonyState drives the simulation at its fixed tick rate and turns pointer and
// keyboard input into colony commands.
type ColonyState struct {
	sm           *StateMachine
	colony       *app.Colony
	renderer     *render.HexRenderer
	log          *eventLog
	tickDuration float64
	accumulator  float64
	pressed      bool
	pressStart   orb.Point
	cursor       orb.Point
	flashes      []render.Flash
}

func NewColonyState(sm *StateMachine, cfg config.Config, logger *slog.Logger) (*ColonyState, error) {
	origin := orb.Point{float64(config.ScreenWidth) / 2, float64(config.ScreenHeight) / 2}
	colony, err := app.NewColony(cfg, origin, logger)
	if err != nil {
		return nil, err
	}

	mapColors := render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GridLineColor:   config.GridLineColor,
		RockColor:       config.RockColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	agentColors := render.AgentColors{
		QueenColor:     config.QueenColor,
		WorkerColor:    config.WorkerColor,
		BlockedColor:   config.BlockedWorkerColor,
		SelectionColor: config.SelectionColor,
		PathColor:      config.PathColor,
		BoxColor:       config.BoxColor,
		FlashColor:     config.FlashColor,
		TextColor:      config.TextLightColor,
	}
	renderer := render.NewHexRenderer(colony.Map(), colony.Layout(), config.ScreenWidth, config.ScreenHeight, mapColors, agentColors)

	s := &ColonyState{
		sm:           sm,
		colony:       colony,
		renderer:     renderer,
		log:          newEventLog(config.HUDEventsShown),
		tickDuration: cfg.Transit.TickDuration(),
	}
	d := colony.EventDispatcher
	d.Subscribe(event.Blocked, s)
	d.Subscribe(event.OrderCanceled, s)
	d.Subscribe(event.OrderSkipped, s)
	d.SubscribeAll(s.log)
	return s, nil
}

// OnEvent adds a fading marker where an order ran into trouble.
func (s *ColonyState) OnEvent(e event.Event) {
	if e.Type == event.OrderCanceled && e.Reason == event.ReasonStopped {
		return
	}
	s.flashes = append(s.flashes, render.Flash{Point: e.Point, Life: config.FlashDuration})
}

func (s *ColonyState) Enter() {
	// Time spent in another state is not replayed.
	s.accumulator = 0
	s.pressed = false
}

func (s *ColonyState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.Push(NewPauseState(s.sm))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.colony.ClearSelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.colony.Stop(s.colony.Selection.IDs())
	}
	s.handleMouse()

	s.accumulator += deltaTime
	for s.accumulator >= s.tickDuration {
		s.accumulator -= s.tickDuration
		s.colony.Step()
	}
	s.ageFlashes(deltaTime)
}

func (s *ColonyState) handleMouse() {
	x, y := ebiten.CursorPosition()
	s.cursor = orb.Point{float64(x), float64(y)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.pressed = true
		s.pressStart = s.cursor
	}
	if s.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.pressed = false
		if s.dragging() {
			s.colony.Toggle(s.colony.AgentsInBox(s.dragBox(), s.colony.Layout().Size))
		} else {
			s.tap(s.cursor)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.colony.MoveSelectedTo(s.cursor)
	}
}

// tap toggles the agents standing in the tapped cell, or sends the selection there
// when the cell is empty.
func (s *ColonyState) tap(p orb.Point) {
	h := s.colony.Layout().WorldToHex(p)
	if !s.colony.Map().Contains(h) {
		return
	}
	if ids := s.colony.AgentsAt(h); len(ids) > 0 {
		s.colony.Toggle(ids)
		return
	}
	s.colony.MoveSelectedTo(p)
}

func (s *ColonyState) dragging() bool {
	return planar.Distance(s.pressStart, s.cursor) >= config.ClickDragDistance
}

func (s *ColonyState) dragBox() orb.Bound {
	return orb.MultiPoint{s.pressStart, s.cursor}.Bound()
}

func (s *ColonyState) ageFlashes(deltaTime float64) {
	kept := s.flashes[:0]
	for _, f := range s.flashes {
		f.Age += deltaTime
		if f.Age < f.Life {
			kept = append(kept, f)
		}
	}
	s.flashes = kept
}

func (s *ColonyState) Draw(screen *ebiten.Image) {
	var box *orb.Bound
	if s.pressed && s.dragging() {
		b := s.dragBox()
		box = &b
	}
	s.renderer.Draw(screen, s.colony.Agents(), s.flashes, box)

	lines := []string{
		fmt.Sprintf("tick %s  selected %d  moving %d  events %s",
			humanize.Comma(int64(s.colony.Tick())),
			s.colony.Selection.Len(),
			len(s.colony.World.Orders),
			humanize.Comma(int64(s.log.total))),
		"LMB tap: select / move   LMB drag: box select   RMB: move   S: stop   Esc: clear   P: pause",
	}
	lines = append(lines, s.log.recent...)
	s.renderer.DrawHUD(screen, lines, config.HUDMarginX, config.HUDLineHeight)
}

func (s *ColonyState) Exit() {}

// eventLog keeps a running count and the last few events for the HUD.
type eventLog struct {
	total  int
	limit  int
	recent []string
}

func newEventLog(limit int) *eventLog {
	return &eventLog{limit: limit}
}

func (l *eventLog) OnEvent(e event.Event) {
	l.total++
	line := fmt.Sprintf("#%s %-13s agent %d %v", humanize.Comma(int64(e.Tick)), e.Type, e.Agent, e.Cell)
	if e.Reason != "" {
		line += " (" + e.Reason + ")"
	}
	l.recent = append(l.recent, line)
	if len(l.recent) > l.limit {
		l.recent = l.recent[len(l.recent)-l.limit:]
	}
}
