package crew

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/assembly/pkg/assembly"
	"github.com/ib-77/assembly/pkg/assembly/core"
	"github.com/ib-77/assembly/pkg/assembly/monitor"
)

func newMonitor(t *testing.T, n int) *monitor.Monitor {
	t.Helper()
	m, err := monitor.New(n, monitor.WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)
	return m
}

func TestDrain_FiveItemsRepeatedWithRandomDelays(t *testing.T) {
	t.Parallel()

	for run := range 100 {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		ctx = core.WithPaceOptions(ctx, 200*time.Microsecond)

		m := newMonitor(t, 5)
		reports, err := Drain(ctx, m, core.StepHandlers{})
		require.NoError(t, err)
		require.NoError(t, ctx.Err(), "run %d did not finish in time", run)

		require.Len(t, reports, 5, "run %d", run)
		for i, r := range reports {
			require.True(t, r.IsGood(), "run %d: %s", run, r)
			require.Equal(t, i, r.Index(), "run %d", run)
		}
		require.NoError(t, m.Close())
		cancel()
	}
}

func TestRun_DefaultCrewFinishesEveryRole(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var mu sync.Mutex
	finished := map[string]int{}
	handlers := core.StepHandlers{
		OnDone: func(_ context.Context, role string, _ int) {
			mu.Lock()
			finished[role]++
			mu.Unlock()
		},
	}

	m := newMonitor(t, 50)
	out, err := Run(ctx, m, handlers)
	require.NoError(t, err)

	count := 0
	for r := range out {
		assert.True(t, r.IsGood())
		count++
	}

	assert.Equal(t, 50, count)
	assert.Equal(t, map[string]int{RolePrimary: 1, RoleSecondary: 2, RoleInspector: 1}, finished)
	assert.NoError(t, m.Close())
}

func TestRun_CustomCrew(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ctx = core.WithCrewOptions(ctx, 2, 3, 2)

	m := newMonitor(t, 200)
	reports, err := Drain(ctx, m, core.StepHandlers{})
	require.NoError(t, err)

	require.Len(t, reports, 200)
	seen := make(map[int]bool)
	for _, r := range reports {
		assert.True(t, r.IsGood())
		assert.False(t, seen[r.Index()], "item %d inspected twice", r.Index())
		seen[r.Index()] = true
	}
}

func TestRun_RejectsEmptyCrew(t *testing.T) {
	t.Parallel()

	m := newMonitor(t, 1)
	for _, opts := range []core.CrewOptions{
		{Primaries: 0, Secondaries: 2, Inspectors: 1},
		{Primaries: 1, Secondaries: 0, Inspectors: 1},
		{Primaries: 1, Secondaries: 2, Inspectors: 0},
	} {
		ctx := core.WithCrewOptions(context.Background(), opts.Primaries, opts.Secondaries, opts.Inspectors)
		_, err := Run(ctx, m, core.StepHandlers{})
		assert.ErrorIs(t, err, ErrEmptyCrew)
	}
}

// stalled never finishes building on its own: producers block until Stop.
type stalled struct {
	mu      sync.Mutex
	cond    *sync.Cond
	stopped bool
}

func newStalled() *stalled {
	s := &stalled{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

func (s *stalled) Len() int { return 1 }

func (s *stalled) wait() assembly.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	for !s.stopped {
		s.cond.Wait()
	}
	return assembly.Done
}

func (s *stalled) ApplyPrimary() assembly.Status   { return s.wait() }
func (s *stalled) ApplySecondary() assembly.Status { return s.wait() }

func (s *stalled) Inspect() (assembly.Report, assembly.Status) { return assembly.Report{}, s.wait() }

func (s *stalled) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.cond.Broadcast()
	s.mu.Unlock()
}

func TestRun_CancelStopsFloor(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	out, err := Run(ctx, newStalled(), core.StepHandlers{})
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-out:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("crew did not stop after cancel")
	}
}

func TestDrain_CancelledMidwayReturnsInspectedSoFar(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	ctx = core.WithPaceOptions(ctx, 5*time.Millisecond)

	m := newMonitor(t, 10_000)
	reports, err := Drain(ctx, m, core.StepHandlers{})
	require.NoError(t, err)

	stats := m.Stats()
	assert.True(t, stats.Stopped)
	assert.Less(t, len(reports), 10_000)
	assert.Equal(t, stats.Inspected, len(reports))
	for i, r := range reports {
		assert.Equal(t, i, r.Index())
	}
	assert.NoError(t, m.Close())
}
