// Package assembly holds the domain types shared by the monitor, the
// verification rules, and the crew harness: part kinds and the recipe, the
// Item under construction, the Status returned by every role step, and the
// inspection Report.
//
// Two error families live here. Defects (ErrCountMismatch,
// ErrSequenceMismatch) describe a bad item and are reported. A
// ProtocolViolation describes a synchronization bug and is raised with panic.
package assembly
