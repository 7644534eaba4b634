// Package core contains the harness plumbing: the Role a goroutine plays, the
// locomotive that drives a role until it reports Done, crew and pacing options
// carried in the context, and small channel helpers. It holds no protocol
// logic; that lives in package monitor.
package core
