package monitor

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ib-77/assembly/pkg/assembly"
	"github.com/ib-77/assembly/pkg/assembly/check"
)

type Monitor struct {
	mu             sync.Mutex
	primaryReady   *sync.Cond // a primary slot opened on the current item
	secondaryReady *sync.Cond // secondary slots opened on the current item
	inspectReady   *sync.Cond // a built item is waiting for inspection

	items         []assembly.Item
	nextToBuild   int
	nextToInspect int
	stopped       bool
	closed        bool

	stats    Stats
	logger   *slog.Logger
	handlers Handlers
}

// Stats is a snapshot of the monitor's counters.
type Stats struct {
	Items          int
	Built          int
	Inspected      int
	Good           int
	Defective      int
	PrimaryWaits   int
	SecondaryWaits int
	InspectWaits   int
	Stopped        bool
}

// New allocates a table of itemCount empty items.
func New(itemCount int, opts ...Option) (*Monitor, error) {
	if itemCount <= 0 {
		return nil, &assembly.AllocationError{Count: itemCount, Err: assembly.ErrInvalidItemCount}
	}
	if itemCount > MaxItems {
		return nil, &assembly.AllocationError{Count: itemCount,
			Err: fmt.Errorf("table limited to %d items", MaxItems)}
	}

	m := &Monitor{
		items:  make([]assembly.Item, itemCount),
		logger: slog.Default(),
	}
	m.primaryReady = sync.NewCond(&m.mu)
	m.secondaryReady = sync.NewCond(&m.mu)
	m.inspectReady = sync.NewCond(&m.mu)
	m.stats.Items = itemCount

	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Monitor) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// ApplyPrimary adds the primary part to the item being built, waiting while
// that item already has one.
func (m *Monitor) ApplyPrimary() assembly.Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	for !m.buildFinished() && m.items[m.nextToBuild].PrimaryCount >= assembly.PrimaryPerItem {
		m.stats.PrimaryWaits++
		m.primaryReady.Wait()
	}
	if m.buildFinished() {
		return assembly.Done
	}

	m.apply(assembly.Primary)
	if m.advance() {
		m.secondaryReady.Broadcast()
		m.inspectReady.Signal()
	}
	return m.buildStatus()
}

// ApplySecondary adds one secondary part to the item being built, waiting
// while both secondary slots are taken. Two callers may race for the same slot.
func (m *Monitor) ApplySecondary() assembly.Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	for !m.buildFinished() && m.items[m.nextToBuild].SecondaryCount >= assembly.SecondaryPerItem {
		m.stats.SecondaryWaits++
		m.secondaryReady.Wait()
	}
	if m.buildFinished() {
		return assembly.Done
	}

	m.apply(assembly.Secondary)
	if m.advance() {
		m.primaryReady.Signal()
		m.inspectReady.Signal()
	}
	return m.buildStatus()
}

// Inspect verifies the next built item, waiting until one is available. The
// returned report is empty when Done is returned without inspecting anything.
func (m *Monitor) Inspect() (assembly.Report, assembly.Status) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || m.nextToInspect >= len(m.items) {
		return assembly.Report{}, assembly.Done
	}

	for !m.stopped && m.nextToInspect == m.nextToBuild && m.nextToInspect < len(m.items) {
		m.stats.InspectWaits++
		m.inspectReady.Wait()
	}
	if m.closed || m.nextToInspect >= m.nextToBuild {
		return assembly.Report{}, assembly.Done
	}

	index := m.nextToInspect
	report := check.Verify(index, m.items[index])
	m.nextToInspect++
	m.stats.Inspected++

	if report.IsGood() {
		m.stats.Good++
		m.logger.Info("monitor: item good", "index", index, "parts", report.Item().String())
	} else {
		m.stats.Defective++
		m.logger.Warn("monitor: item defective", "index", index,
			"parts", report.Item().String(), "error", report.Err())
	}
	if m.handlers.OnInspected != nil {
		m.handlers.OnInspected(report)
	}

	if m.nextToInspect >= len(m.items) {
		return report, assembly.Done
	}
	return report, assembly.MoreWork
}

// Stop makes every producer return Done and wakes all waiters. The inspector
// still takes items that are already built but no longer waits for new ones.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return
	}
	m.stopped = true
	m.stats.Stopped = true
	m.logger.Info("monitor: stopped", "built", m.nextToBuild, "inspected", m.nextToInspect)
	m.wakeAll()
}

// Close releases the item table. Every role must have returned Done first;
// closing an undrained monitor that was not stopped fails with
// assembly.ErrNotDrained.
func (m *Monitor) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	if !m.stopped && m.nextToInspect < len(m.items) {
		return fmt.Errorf("close monitor (%d/%d inspected): %w",
			m.nextToInspect, len(m.items), assembly.ErrNotDrained)
	}

	m.closed = true
	m.items = nil
	m.wakeAll()
	return nil
}

func (m *Monitor) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// Items returns a copy of the table.
func (m *Monitor) Items() []assembly.Item {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]assembly.Item, len(m.items))
	copy(out, m.items)
	return out
}

// buildFinished: nothing left for producers. Caller holds mu.
func (m *Monitor) buildFinished() bool {
	return m.stopped || m.closed || m.nextToBuild >= len(m.items)
}

func (m *Monitor) buildStatus() assembly.Status {
	if m.buildFinished() {
		return assembly.Done
	}
	return assembly.MoreWork
}

// apply adds one part to the current item. Caller holds mu and has checked
// that a slot of this kind is free.
func (m *Monitor) apply(kind assembly.PartKind) {
	item := &m.items[m.nextToBuild]
	if err := item.Apply(kind); err != nil {
		panic(&assembly.ProtocolViolation{
			Invariant: "part applied to a full item: " + err.Error(),
			Index:     m.nextToBuild,
			Item:      *item,
		})
	}
}

// advance moves nextToBuild past the current item if it is complete and
// reports whether it did. Calling it again right after an advance is a no-op.
// Caller holds mu.
func (m *Monitor) advance() bool {
	if m.nextToBuild >= len(m.items) {
		return false
	}

	item := m.items[m.nextToBuild]
	structural, counted := item.Completeness()
	if structural != counted {
		panic(&assembly.ProtocolViolation{
			Invariant: fmt.Sprintf("structural completeness (%t) != counted completeness (%t)", structural, counted),
			Index:     m.nextToBuild,
			Item:      item,
		})
	}
	if !structural {
		return false
	}

	index := m.nextToBuild
	m.nextToBuild++
	m.stats.Built++
	m.logger.Debug("monitor: item built", "index", index, "parts", item.String())
	if m.handlers.OnBuilt != nil {
		m.handlers.OnBuilt(index, item)
	}

	if m.nextToBuild >= len(m.items) {
		m.wakeAll()
	}
	return true
}

func (m *Monitor) wakeAll() {
	m.primaryReady.Broadcast()
	m.secondaryReady.Broadcast()
	m.inspectReady.Broadcast()
}
