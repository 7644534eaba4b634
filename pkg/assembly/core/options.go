package core

import (
	"context"
	"time"
)

type OptionKey string

const (
	CrewOptionKey OptionKey = "crew_options"
	PaceOptionKey OptionKey = "pace_options"
)

// CrewOptions says how many goroutines play each role.
type CrewOptions struct {
	Primaries   int
	Secondaries int
	Inspectors  int
}

// DefaultCrew is one primary, two secondaries and one inspector.
var DefaultCrew = CrewOptions{Primaries: 1, Secondaries: 2, Inspectors: 1}

type PaceOptions struct {
	MaxDelay time.Duration
}

func WithCrewOptions(ctx context.Context, primaries, secondaries, inspectors int) context.Context {
	return context.WithValue(ctx, CrewOptionKey, CrewOptions{
		Primaries:   primaries,
		Secondaries: secondaries,
		Inspectors:  inspectors,
	})
}

func GetCrewOptions(ctx context.Context, defaultCrew CrewOptions) CrewOptions {
	options, ok := ctx.Value(CrewOptionKey).(CrewOptions)
	if ok {
		return options
	}
	return defaultCrew
}

// WithPaceOptions makes every locomotive sleep a random duration in
// [0, maxDelay) before each step.
func WithPaceOptions(ctx context.Context, maxDelay time.Duration) context.Context {
	return context.WithValue(ctx, PaceOptionKey, PaceOptions{MaxDelay: maxDelay})
}

func GetMaxDelay(ctx context.Context, defaultMaxDelay time.Duration) time.Duration {
	options, ok := ctx.Value(PaceOptionKey).(PaceOptions)
	if ok {
		return options.MaxDelay
	}
	return defaultMaxDelay
}
