package crew

import (
	"github.com/ib-77/assembly/pkg/assembly"
)

const (
	RolePrimary   = "primary"
	RoleSecondary = "secondary"
	RoleInspector = "inspector"
)

type primary struct{ floor Floor }

func (r primary) Name() string { return RolePrimary }

func (r primary) Step() assembly.Status { return r.floor.ApplyPrimary() }

type secondary struct{ floor Floor }

func (r secondary) Name() string { return RoleSecondary }

func (r secondary) Step() assembly.Status { return r.floor.ApplySecondary() }

// inspector forwards every report. out is buffered to the table length, so the
// send never blocks.
type inspector struct {
	floor Floor
	out   chan<- assembly.Report
}

func (r inspector) Name() string { return RoleInspector }

func (r inspector) Step() assembly.Status {
	report, status := r.floor.Inspect()
	if !report.IsEmpty() {
		r.out <- report
	}
	return status
}
