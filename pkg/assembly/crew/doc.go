// Package crew runs the fixed set of role goroutines against one monitor and
// joins them. It is the harness: it decides how many goroutines play each role
// (core.CrewOptions, default 1/2/1) and streams inspection reports back.
//
// Common usage:
// - Run: start the crew, read reports from the returned channel
// - Drain: start the crew and collect every report
package crew
