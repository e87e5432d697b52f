package engine

import "errors"

var (
	// ErrStaleHandle is returned when an entity handle or back-reference outlived its target
	ErrStaleHandle = errors.New("engine: stale handle")

	// ErrInvalidState is returned for operations not allowed in the current game state
	ErrInvalidState = errors.New("engine: invalid game state")

	// ErrSubsystemsLocked is returned when registering subsystems after the main loop started
	ErrSubsystemsLocked = errors.New("engine: subsystem order is fixed once the main loop runs")

	// ErrDuplicateSubsystem is returned when two subsystems share a name
	ErrDuplicateSubsystem = errors.New("engine: duplicate subsystem name")

	// ErrNoAssets is returned by resource lookups when no asset source is configured
	ErrNoAssets = errors.New("engine: no asset source configured")
)
