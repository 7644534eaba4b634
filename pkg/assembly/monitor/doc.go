// Package monitor implements the Assembly Monitor: a fixed table of items
// guarded by one mutex and three condition variables.
//
// Producers call ApplyPrimary and ApplySecondary until they see Done. The
// inspector calls Inspect until it sees Done. Items are built one at a time, in
// order, and inspected in the same order once complete:
//
//	nextToInspect <= nextToBuild <= Len()
//
// Every wait re-checks its predicate in a loop, so any number of goroutines
// may share a role. Stop wakes every waiter and makes producers return Done.
//
// If the monitor ever sees an item whose slot count and part counters disagree
// about completeness it panics with *assembly.ProtocolViolation. That can only
// happen through a locking bug and is not meant to be recovered.
package monitor
