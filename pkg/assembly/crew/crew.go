package crew

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ib-77/assembly/pkg/assembly"
	"github.com/ib-77/assembly/pkg/assembly/core"
)

var ErrEmptyCrew = errors.New("every role needs at least one goroutine")

// Floor is what the crew works against; *monitor.Monitor satisfies it.
type Floor interface {
	Len() int
	ApplyPrimary() assembly.Status
	ApplySecondary() assembly.Status
	Inspect() (assembly.Report, assembly.Status)
	Stop()
}

// Run starts the crew and returns a channel of reports that is closed once
// every goroutine has returned. Cancelling ctx stops the floor.
func Run(ctx context.Context, floor Floor, handlers core.StepHandlers) (<-chan assembly.Report, error) {
	opts := core.GetCrewOptions(ctx, core.DefaultCrew)
	if opts.Primaries <= 0 || opts.Secondaries <= 0 || opts.Inspectors <= 0 {
		return nil, fmt.Errorf("crew %d/%d/%d: %w",
			opts.Primaries, opts.Secondaries, opts.Inspectors, ErrEmptyCrew)
	}

	out := make(chan assembly.Report, floor.Len())
	stop := context.AfterFunc(ctx, floor.Stop)
	wg := &sync.WaitGroup{}

	for range opts.Primaries {
		wg.Add(1)
		go core.Locomotive(ctx, primary{floor: floor}, handlers, wg)
	}
	for range opts.Secondaries {
		wg.Add(1)
		go core.Locomotive(ctx, secondary{floor: floor}, handlers, wg)
	}
	for range opts.Inspectors {
		wg.Add(1)
		go core.Locomotive(ctx, inspector{floor: floor, out: out}, handlers, wg)
	}

	go func() {
		wg.Wait()
		stop()
		close(out)
	}()

	return out, nil
}

// Drain runs the crew to completion and returns every report. With more than
// one inspector the reports may arrive out of index order.
func Drain(ctx context.Context, floor Floor, handlers core.StepHandlers) ([]assembly.Report, error) {
	out, err := Run(ctx, floor, handlers)
	if err != nil {
		return nil, err
	}
	// out is closed once the crew has joined, cancelled or not.
	return core.FromChanMany(context.WithoutCancel(ctx), out), nil
}
