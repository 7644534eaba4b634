package assembly

import "fmt"

// Item is one product under construction. Parts records the order in which
// parts arrived; the counters are maintained alongside so the two views can be
// checked against each other.
type Item struct {
	Parts          [PartsPerItem]PartKind
	PartCount      int
	PrimaryCount   int
	SecondaryCount int
}

// Apply appends a part. It never writes past the last slot.
func (it *Item) Apply(kind PartKind) error {
	if it.PartCount >= PartsPerItem {
		return fmt.Errorf("apply %s: %w", kind, ErrItemFull)
	}

	switch kind {
	case Primary:
		it.PrimaryCount++
	case Secondary:
		it.SecondaryCount++
	default:
		return fmt.Errorf("apply %s: unknown part kind", kind)
	}

	it.Parts[it.PartCount] = kind
	it.PartCount++
	return nil
}

// Completeness reports the structural view (all slots filled) and the counted
// view (recipe multiplicities reached). Both must agree.
func (it Item) Completeness() (structural, counted bool) {
	structural = it.PartCount == PartsPerItem
	counted = it.PrimaryCount == PrimaryPerItem && it.SecondaryCount == SecondaryPerItem
	return structural, counted
}

func (it Item) Complete() bool {
	structural, counted := it.Completeness()
	return structural && counted
}

// Applied returns the parts actually recorded, clamped to the slot count.
func (it Item) Applied() []PartKind {
	n := min(max(it.PartCount, 0), PartsPerItem)
	out := make([]PartKind, n)
	copy(out, it.Parts[:n])
	return out
}

func (it Item) String() string {
	applied := it.Applied()
	b := make([]byte, len(applied))
	for i, k := range applied {
		b[i] = k.Symbol()
	}
	return string(b)
}
