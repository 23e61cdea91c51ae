package host

import (
	"fmt"
	"sync/atomic"

	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/google/uuid"
)

// session is an online player as seen by the npc manager.
// It wraps the player's EntityHandle, which stays valid across transactions,
// and caches identity so it can be used outside of the player's transaction.
type session struct {
	// handle is the persistent entity handle for the player
	handle *world.EntityHandle

	uuid uuid.UUID
	name string
	xuid string

	// world is the world the player was last seen in
	world atomic.Pointer[world.World]

	// closed indicates the player has quit
	closed atomic.Bool
}

// newSession creates a session for p. It must be called within p's
// transaction.
func newSession(p *player.Player) *session {
	s := &session{
		handle: p.H(),
		uuid:   p.UUID(),
		name:   p.Name(),
		xuid:   p.XUID(),
	}
	s.world.Store(p.Tx().World())
	return s
}

// UUID returns the player's UUID.
func (s *session) UUID() uuid.UUID {
	return s.uuid
}

// Name returns the player's name.
func (s *session) Name() string {
	return s.name
}

// XUID returns the player's XUID.
func (s *session) XUID() string {
	return s.xuid
}

// Message sends a chat message to the player. Delivery happens in a later
// transaction of the player's world, so it is safe to call from anywhere.
func (s *session) Message(a ...any) {
	msg := fmt.Sprint(a...)
	s.exec(func(_ *world.Tx, p *player.Player) {
		p.Message(msg)
	})
}

// player returns the player within tx.
func (s *session) player(tx *world.Tx) (*player.Player, bool) {
	e, ok := s.handle.Entity(tx)
	if !ok {
		return nil, false
	}
	p, ok := e.(*player.Player)
	return p, ok
}

// exec schedules fn in the player's world without waiting for it, so it may
// be called from inside another transaction of the same world.
func (s *session) exec(fn func(tx *world.Tx, p *player.Player)) bool {
	w := s.world.Load()
	if w == nil || s.closed.Load() {
		return false
	}
	w.Exec(func(tx *world.Tx) {
		if p, ok := s.player(tx); ok {
			fn(tx, p)
		}
	})
	return true
}

// String returns a string representation of the session for debugging.
func (s *session) String() string {
	return "session{Name: " + s.name + ", XUID: " + s.xuid + ", UUID: " + s.uuid.String() + "}"
}
