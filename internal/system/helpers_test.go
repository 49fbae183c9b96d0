package system

import (
	"io"
	"log/slog"
	"testing"

	"hex-colony/internal/component"
	"hex-colony/internal/config"
	"hex-colony/internal/entity"
	"hex-colony/internal/event"
	"hex-colony/pkg/hexmap"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

const testHexSize = 20.0

func newWorld(radius int) *entity.World {
	return entity.NewWorld(hexmap.NewHexMap(radius), hexmap.NewLayout(testHexSize, orb.Point{}))
}

func spawnWorker(t *testing.T, w *entity.World, h hexmap.Hex) *component.Agent {
	t.Helper()
	a, err := w.Spawn(component.Worker, h, 5, 100)
	require.NoError(t, err)
	return a
}

func newJournal() *event.Journal {
	j := event.NewJournal(nil)
	j.Begin(1)
	return j
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func transitConfig() config.Transit {
	return config.Transit{
		TickRateHz:        10,
		ClearanceMargin:   0.5,
		ArrivalEpsilon:    2,
		MaxBlockedRetries: 5,
	}
}

func idsOf(agents ...*component.Agent) []component.AgentID {
	out := make([]component.AgentID, len(agents))
	for i, a := range agents {
		out[i] = a.ID
	}
	return out
}

func eventsOf(j *event.Journal, typ event.EventType) []event.Event {
	var out []event.Event
	for _, e := range j.Events() {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

// checkLedger asserts the one-claim-per-cell bookkeeping matches the agent table.
func checkLedger(t *testing.T, w *entity.World) {
	t.Helper()
	owned := map[component.AgentID]int{}
	for _, h := range w.Ledger.Cells() {
		c, _ := w.Ledger.Claim(h)
		owned[c.Owner]++
		if !c.Reserved {
			require.Equal(t, h, w.Agents[c.Owner].Cell, "occupant of %v", h)
		} else {
			o, ok := w.Orders[c.Owner]
			require.True(t, ok, "reservation of %v without order", h)
			require.Equal(t, h, o.To)
		}
	}
	for id := range w.Agents {
		want := 1
		if _, ok := w.Orders[id]; ok {
			want = 2
		}
		require.Equal(t, want, owned[id], "claims of agent %d", id)
	}
}
