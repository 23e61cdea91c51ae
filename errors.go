package npc

import "errors"

var (
	// ErrUnknownSpecies is returned when a type name is not in the catalog.
	ErrUnknownSpecies = errors.New("npc: unknown species")
	// ErrDuplicateSpecies is returned when a species key is registered twice.
	ErrDuplicateSpecies = errors.New("npc: duplicate species")
	// ErrConstructionFailed is returned when a species constructor fails or panics.
	ErrConstructionFailed = errors.New("npc: construction failed")
	// ErrNotFound is returned when an actor or operator lookup misses.
	ErrNotFound = errors.New("npc: not found")
	// ErrNotAuthorized is returned when an ownership or capability check fails.
	ErrNotAuthorized = errors.New("npc: not authorized")
	// ErrInvalidCommandTarget is returned when a stored command has a target
	// type that cannot be dispatched. It indicates a configuration bug.
	ErrInvalidCommandTarget = errors.New("npc: invalid command target")
	// ErrInvalidVisibility is returned for out of range visibility values.
	ErrInvalidVisibility = errors.New("npc: invalid visibility")
	// ErrInvalidScale is returned for explicit scales that are not positive and
	// finite.
	ErrInvalidScale = errors.New("npc: scale must be positive and finite")
	// ErrIndexOutOfRange is returned when removing a command that does not exist.
	ErrIndexOutOfRange = errors.New("npc: command index out of range")
	// ErrUnsupported is returned when a species does not support an operation,
	// such as making a non-ageable species a baby.
	ErrUnsupported = errors.New("npc: unsupported by species")
	// ErrDestroyed is returned when mutating an actor that has been despawned.
	ErrDestroyed = errors.New("npc: actor destroyed")
)
