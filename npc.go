// Package npc provides spawnable, interactive NPC actors for Dragonfly servers.
//
// An actor presents a configurable identity (name, scale, skin, visibility) and
// reacts to players:
//   - Punching an actor is a selection gesture used by the pending-action flow
//     (retrieve an actor's ID, confirm its deletion). Actors never take damage.
//   - Using (right-clicking) an actor runs its command list for the player,
//     gated by a per-player cooldown, and plays its reaction emote.
//   - Every tick an actor may play its passive emote, emit ambient particles and
//     turn towards the nearest player.
//
// # Quick Start
//
//	catalog := npc.NewCatalog()
//	npc.RegisterAll(catalog, host.Constructor())
//
//	mngr := npc.NewBuilder().
//	    Catalog(catalog).
//	    Settings(settings).
//	    Presenter(h).
//	    Directory(h.Directory()).
//	    Dispatcher(h).
//	    Effects(h).
//	    Init()
//
//	actor, err := mngr.Spawn("Cow", owner, npc.SpawnConfig{Name: "{player}'s cow"})
//
// # Collaborators
//
// The package never talks to the network or the world directly. Everything
// world-side goes through narrow interfaces (Presenter, Directory, Dispatcher,
// Effects, Body) implemented by the host package for Dragonfly, and by fakes in
// tests.
package npc

// Version is the npc package version.
const Version = "1.0.0"

// Capability is an elevated permission an operator may hold.
type Capability int

const (
	// CapDeleteOthers allows despawning actors created by other operators.
	CapDeleteOthers Capability = iota
	// CapEditOthers allows editing actors created by other operators.
	CapEditOthers
	// CapBypassCooldown skips the command cooldown entirely.
	CapBypassCooldown
)

// String returns the string representation of the capability.
func (c Capability) String() string {
	switch c {
	case CapDeleteOthers:
		return "DeleteOthers"
	case CapEditOthers:
		return "EditOthers"
	case CapBypassCooldown:
		return "BypassCooldown"
	default:
		return "Unknown"
	}
}
