package core

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ib-77/assembly/pkg/assembly"
)

// Role is one goroutine's part in the protocol. Step blocks as needed and
// returns Done once the role has nothing left to do.
type Role interface {
	Name() string
	Step() assembly.Status
}

type StepHandlers struct {
	OnStep func(ctx context.Context, role string, status assembly.Status)
	OnDone func(ctx context.Context, role string, steps int)
}

// Locomotive drives role until it returns Done. Cancellation is not observed
// here: the owner of the monitor stops it, and the role sees Done.
func Locomotive(ctx context.Context, role Role, handlers StepHandlers, wg *sync.WaitGroup) {
	defer wg.Done()

	maxDelay := GetMaxDelay(ctx, 0)
	steps := 0

	for {
		if maxDelay > 0 {
			pause(ctx, maxDelay)
		}

		status := role.Step()
		steps++

		if handlers.OnStep != nil {
			handlers.OnStep(ctx, role.Name(), status)
		}

		if status == assembly.Done {
			if handlers.OnDone != nil {
				handlers.OnDone(ctx, role.Name(), steps)
			}
			return
		}
	}
}

func pause(ctx context.Context, maxDelay time.Duration) {
	d := rand.N(maxDelay)
	if d <= 0 {
		return
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
