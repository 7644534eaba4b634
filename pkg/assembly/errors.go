package assembly

import (
	"errors"
	"fmt"
	"reflect"
)

// Defects found by inspection.
var (
	ErrCountMismatch    = errors.New("count mismatch")
	ErrSequenceMismatch = errors.New("sequence mismatch")
)

var (
	ErrInvalidItemCount = errors.New("item count must be positive")
	ErrItemFull         = errors.New("item already has all parts")
	ErrNotDrained       = errors.New("monitor closed before inspection finished")
)

// AllocationError is returned when the item table cannot be set up.
type AllocationError struct {
	Count int
	Err   error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocate %d items: %v", e.Count, e.Err)
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}

// ProtocolViolation is the panic value raised when the monitor finds its own
// state contradictory. It always means a synchronization bug.
type ProtocolViolation struct {
	Invariant string
	Index     int
	Item      Item
}

func (v *ProtocolViolation) Error() string {
	return fmt.Sprintf("protocol violation at item %d (%q, parts=%d primary=%d secondary=%d): %s",
		v.Index, v.Item.String(), v.Item.PartCount, v.Item.PrimaryCount, v.Item.SecondaryCount, v.Invariant)
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors flattens an errors.Join result into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
