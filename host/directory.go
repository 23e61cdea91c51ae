package host

import (
	"sync"

	"github.com/df-mc/dragonfly/server/world"
	"github.com/google/uuid"
	"github.com/oriumgames/npc"
	"golang.org/x/text/cases"
)

// Directory indexes online players. It implements npc.Directory.
type Directory struct {
	// sessions holds all online sessions by entity handle
	sessions   map[*world.EntityHandle]*session
	sessionsMu sync.RWMutex

	// sessionsByUUID provides UUID-based lookup
	sessionsByUUID   map[uuid.UUID]*session
	sessionsByUUIDMu sync.RWMutex

	// sessionsByName provides case-insensitive name lookup
	sessionsByName   map[string]*session
	sessionsByNameMu sync.RWMutex

	// sessionsByWorld groups sessions by world
	sessionsByWorld   map[*world.World]map[*session]struct{}
	sessionsByWorldMu sync.RWMutex
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		sessions:        make(map[*world.EntityHandle]*session),
		sessionsByUUID:  make(map[uuid.UUID]*session),
		sessionsByName:  make(map[string]*session),
		sessionsByWorld: make(map[*world.World]map[*session]struct{}),
	}
}

// add registers a session.
func (d *Directory) add(s *session) {
	d.sessionsMu.Lock()
	d.sessions[s.handle] = s
	d.sessionsMu.Unlock()

	d.sessionsByUUIDMu.Lock()
	d.sessionsByUUID[s.uuid] = s
	d.sessionsByUUIDMu.Unlock()

	d.sessionsByNameMu.Lock()
	d.sessionsByName[foldName(s.name)] = s
	d.sessionsByNameMu.Unlock()

	d.move(s, nil, s.world.Load())
}

// move updates the world index of a session.
func (d *Directory) move(s *session, from, to *world.World) {
	d.sessionsByWorldMu.Lock()
	defer d.sessionsByWorldMu.Unlock()

	if from != nil && d.sessionsByWorld[from] != nil {
		delete(d.sessionsByWorld[from], s)
		if len(d.sessionsByWorld[from]) == 0 {
			delete(d.sessionsByWorld, from)
		}
	}
	if to != nil {
		if d.sessionsByWorld[to] == nil {
			d.sessionsByWorld[to] = make(map[*session]struct{})
		}
		d.sessionsByWorld[to][s] = struct{}{}
	}
}

// remove unregisters a session.
func (d *Directory) remove(s *session) {
	d.sessionsMu.Lock()
	delete(d.sessions, s.handle)
	d.sessionsMu.Unlock()

	d.sessionsByUUIDMu.Lock()
	if d.sessionsByUUID[s.uuid] == s {
		delete(d.sessionsByUUID, s.uuid)
	}
	d.sessionsByUUIDMu.Unlock()

	d.sessionsByNameMu.Lock()
	if key := foldName(s.name); d.sessionsByName[key] == s {
		delete(d.sessionsByName, key)
	}
	d.sessionsByNameMu.Unlock()

	d.move(s, s.world.Load(), nil)
}

// byHandle returns the session of the player with handle h.
func (d *Directory) byHandle(h *world.EntityHandle) (*session, bool) {
	d.sessionsMu.RLock()
	defer d.sessionsMu.RUnlock()
	s, ok := d.sessions[h]
	return s, ok
}

// inWorld returns the open sessions in w.
func (d *Directory) inWorld(w *world.World) []*session {
	d.sessionsByWorldMu.RLock()
	defer d.sessionsByWorldMu.RUnlock()

	set := d.sessionsByWorld[w]
	out := make([]*session, 0, len(set))
	for s := range set {
		if !s.closed.Load() {
			out = append(out, s)
		}
	}
	return out
}

// all returns every open session.
func (d *Directory) all() []*session {
	d.sessionsMu.RLock()
	defer d.sessionsMu.RUnlock()

	out := make([]*session, 0, len(d.sessions))
	for _, s := range d.sessions {
		if !s.closed.Load() {
			out = append(out, s)
		}
	}
	return out
}

// Online returns the players that could observe a: those in the world of its
// body, or everyone when the body is not a world entity.
func (d *Directory) Online(a *npc.Actor) []npc.Operator {
	var sessions []*session
	if b, ok := a.Body().(*entityBody); ok {
		sessions = d.inWorld(b.w)
	} else {
		sessions = d.all()
	}

	out := make([]npc.Operator, len(sessions))
	for i, s := range sessions {
		out[i] = s
	}
	return out
}

// Operator returns the online player with the given UUID.
func (d *Directory) Operator(id uuid.UUID) (npc.Operator, bool) {
	d.sessionsByUUIDMu.RLock()
	defer d.sessionsByUUIDMu.RUnlock()
	s, ok := d.sessionsByUUID[id]
	if !ok || s.closed.Load() {
		return nil, false
	}
	return s, true
}

// ByName returns the online player with the given name, ignoring case.
func (d *Directory) ByName(name string) (npc.Operator, bool) {
	d.sessionsByNameMu.RLock()
	defer d.sessionsByNameMu.RUnlock()
	s, ok := d.sessionsByName[foldName(name)]
	if !ok || s.closed.Load() {
		return nil, false
	}
	return s, true
}

// Count returns the number of online players.
func (d *Directory) Count() int {
	d.sessionsMu.RLock()
	defer d.sessionsMu.RUnlock()
	return len(d.sessions)
}

func foldName(name string) string {
	return cases.Fold().String(name)
}
