package npc

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Manager is the actor registry and factory.
// It owns every live actor, indexes them by id, owner and body, and runs the
// visibility, interaction and tick flows against its collaborators.
// Multiple Manager instances can coexist, e.g. one per world.
type Manager struct {
	catalog  *Catalog
	settings Settings

	presenter  Presenter
	directory  Directory
	dispatcher Dispatcher
	effects    Effects
	authorizer Authorizer

	log  *slog.Logger
	now  func() time.Time
	lang language.Tag

	// pending holds one armed punch action per operator
	pending *PendingActions

	// persister writes actor payloads to the store in the background
	persister *persister

	nextID atomic.Int64
	closed atomic.Bool

	// actors holds all live actors by id
	actors   map[int64]*Actor
	actorsMu sync.RWMutex

	// actorsByOwner groups actors by the UUID of their creator
	actorsByOwner   map[uuid.UUID]map[int64]*Actor
	actorsByOwnerMu sync.RWMutex

	// actorsByUUID provides persistent-identity lookup
	actorsByUUID   map[uuid.UUID]*Actor
	actorsByUUIDMu sync.RWMutex

	// actorsByBody maps world-side bodies back to actors
	actorsByBody   map[Body]*Actor
	actorsByBodyMu sync.RWMutex
}

// newManager creates a manager with no-op collaborators.
func newManager() *Manager {
	return &Manager{
		catalog:       NewCatalog(),
		settings:      DefaultSettings(),
		presenter:     nopPresenter{},
		directory:     nopDirectory{},
		dispatcher:    nopDispatcher{},
		effects:       nopEffects{},
		authorizer:    denyAll{},
		log:           slog.Default(),
		now:           time.Now,
		lang:          language.English,
		pending:       NewPendingActions(),
		actors:        make(map[int64]*Actor),
		actorsByOwner: make(map[uuid.UUID]map[int64]*Actor),
		actorsByUUID:  make(map[uuid.UUID]*Actor),
		actorsByBody:  make(map[Body]*Actor),
	}
}

// Catalog returns the species catalog.
func (m *Manager) Catalog() *Catalog {
	return m.catalog
}

// Settings returns the behaviour settings.
func (m *Manager) Settings() Settings {
	return m.settings
}

// Pending returns the pending-action queue.
func (m *Manager) Pending() *PendingActions {
	return m.pending
}

// Spawn creates an actor of the species named typeName, owned by owner.
// The name template in cfg is rendered against owner, and owner is told the
// new actor's id.
func (m *Manager) Spawn(typeName string, owner Operator, cfg SpawnConfig) (*Actor, error) {
	if m.closed.Load() {
		return nil, fmt.Errorf("spawn %q: manager closed: %w", typeName, ErrDestroyed)
	}
	sp, err := m.catalog.Lookup(typeName)
	if err != nil {
		return nil, fmt.Errorf("spawn: %w", err)
	}

	cfg.Name = RenderName(cfg.Name, owner)
	a, err := m.spawn(sp, owner.UUID(), uuid.New(), cfg)
	if err != nil {
		return nil, err
	}
	m.persist(a)

	owner.Message(m.sprintf("NPC %s created successfully! ID: %s", a.DisplayName(), itoa(a.id)))
	return a, nil
}

// spawn builds, indexes and presents an actor.
func (m *Manager) spawn(sp *Species, owner, id uuid.UUID, cfg SpawnConfig) (*Actor, error) {
	if cfg.Scale != 0 && !validScale(cfg.Scale) {
		return nil, fmt.Errorf("spawn %s: %w", sp.Key, ErrInvalidScale)
	}
	if !cfg.Visibility.Valid() {
		return nil, fmt.Errorf("spawn %s: %w", sp.Key, ErrInvalidVisibility)
	}

	baby := cfg.Baby && sp.Ageable
	scale, override := 1.0, cfg.Scale > 0
	switch {
	case override:
		scale = cfg.Scale
	case baby:
		scale = BabyScale
	}

	a := &Actor{
		uuid:           id,
		owner:          owner,
		species:        sp,
		name:           cfg.Name,
		scale:          scale,
		scaleOverride:  override,
		baby:           baby,
		visibility:     cfg.Visibility,
		rotate:         boolOr(cfg.RotateToPlayers, m.settings.RotateToPlayers),
		nameTagVisible: boolOr(cfg.NameTagVisible, m.settings.NameTagVisible),
		slapBack:       sp.Human && boolOr(cfg.SlapBack, m.settings.SlapBack),
		emote:          cfg.Emote,
		actionEmote:    cfg.ActionEmote,
		position:       cfg.Position,
		rotation:       cfg.Rotation,
		viewers:        make(map[uuid.UUID]Operator),
	}
	if sp.Human {
		a.skin = cfg.Skin
	}
	a.commands.replace(cfg.Commands)

	body, err := m.construct(sp, SpawnParams{
		UUID:           id,
		Species:        sp,
		Name:           a.nameTag(),
		NameTagVisible: a.nameTagVisible,
		Scale:          scale,
		Baby:           baby,
		Position:       cfg.Position,
		Rotation:       cfg.Rotation,
		Skin:           a.skin,
	})
	if err != nil {
		return nil, err
	}
	a.body = body
	a.id = m.nextID.Add(1)

	m.index(a)
	m.refresh(a)

	m.log.Info("npc: spawned actor",
		"actor", a.id,
		"species", sp.Key,
		"owner", owner,
	)
	return a, nil
}

// construct calls the species constructor, converting failures and panics to
// ErrConstructionFailed.
func (m *Manager) construct(sp *Species, params SpawnParams) (b Body, err error) {
	if sp.New == nil {
		return nil, fmt.Errorf("construct %s: no constructor: %w", sp.Key, ErrConstructionFailed)
	}
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("construct %s: panic: %v: %w", sp.Key, r, ErrConstructionFailed)
		}
	}()

	b, err = sp.New(params)
	if err != nil {
		return nil, fmt.Errorf("construct %s: %w: %w", sp.Key, ErrConstructionFailed, err)
	}
	if b == nil {
		return nil, fmt.Errorf("construct %s: nil body: %w", sp.Key, ErrConstructionFailed)
	}
	return b, nil
}

// Despawn destroys the actor with id on behalf of requester, who must own it
// or hold CapDeleteOthers.
func (m *Manager) Despawn(requester Operator, id int64) error {
	a, ok := m.Find(id)
	if !ok {
		return fmt.Errorf("despawn %d: %w", id, ErrNotFound)
	}
	if !m.mayManage(requester, a, CapDeleteOthers) {
		return fmt.Errorf("despawn %d: %w", id, ErrNotAuthorized)
	}
	if !m.destroy(a) {
		return fmt.Errorf("despawn %d: %w", id, ErrNotFound)
	}
	if m.persister != nil {
		m.persister.delete(a.uuid)
	}

	requester.Message(m.sprintf("NPC ID %s despawned successfully.", itoa(id)))
	m.log.Info("npc: despawned actor", "actor", id, "by", requester.UUID())
	return nil
}

// destroy unindexes, hides and closes a. It reports false if a was already
// destroyed.
func (m *Manager) destroy(a *Actor) bool {
	a.mu.Lock()
	ok := a.destroyed.CompareAndSwap(false, true)
	a.mu.Unlock()
	if !ok {
		return false
	}

	m.unindex(a)
	m.withdrawAll(a)
	if err := a.body.Close(); err != nil {
		m.log.Warn("npc: failed to close body", "actor", a.id, "error", err)
	}
	return true
}

// IsOwnedBy reports whether op created a.
func (m *Manager) IsOwnedBy(a *Actor, op Operator) bool {
	return a != nil && op != nil && a.owner == op.UUID()
}

// mayManage reports whether op owns a or holds c.
func (m *Manager) mayManage(op Operator, a *Actor, c Capability) bool {
	return m.IsOwnedBy(a, op) || m.authorizer.Allowed(op, c)
}

// Allowed reports whether op holds capability c.
func (m *Manager) Allowed(op Operator, c Capability) bool {
	return m.authorizer.Allowed(op, c)
}

// index registers a in every index.
func (m *Manager) index(a *Actor) {
	m.actorsMu.Lock()
	m.actors[a.id] = a
	m.actorsMu.Unlock()

	m.actorsByOwnerMu.Lock()
	if m.actorsByOwner[a.owner] == nil {
		m.actorsByOwner[a.owner] = make(map[int64]*Actor)
	}
	m.actorsByOwner[a.owner][a.id] = a
	m.actorsByOwnerMu.Unlock()

	m.actorsByUUIDMu.Lock()
	m.actorsByUUID[a.uuid] = a
	m.actorsByUUIDMu.Unlock()

	m.actorsByBodyMu.Lock()
	m.actorsByBody[a.body] = a
	m.actorsByBodyMu.Unlock()
}

// unindex removes a from every index.
func (m *Manager) unindex(a *Actor) {
	m.actorsMu.Lock()
	delete(m.actors, a.id)
	m.actorsMu.Unlock()

	m.actorsByOwnerMu.Lock()
	if set := m.actorsByOwner[a.owner]; set != nil {
		delete(set, a.id)
		if len(set) == 0 {
			delete(m.actorsByOwner, a.owner)
		}
	}
	m.actorsByOwnerMu.Unlock()

	m.actorsByUUIDMu.Lock()
	delete(m.actorsByUUID, a.uuid)
	m.actorsByUUIDMu.Unlock()

	m.actorsByBodyMu.Lock()
	delete(m.actorsByBody, a.body)
	m.actorsByBodyMu.Unlock()
}

// Find returns the live actor with id.
func (m *Manager) Find(id int64) (*Actor, bool) {
	m.actorsMu.RLock()
	defer m.actorsMu.RUnlock()
	a, ok := m.actors[id]
	return a, ok
}

// FindByOwnerAndID returns the actor with id if it was created by owner.
func (m *Manager) FindByOwnerAndID(owner uuid.UUID, id int64) (*Actor, error) {
	m.actorsByOwnerMu.RLock()
	a, ok := m.actorsByOwner[owner][id]
	m.actorsByOwnerMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("find actor %d of %s: %w", id, owner, ErrNotFound)
	}
	return a, nil
}

// FindByUUID returns the live actor with the persistent identity id.
func (m *Manager) FindByUUID(id uuid.UUID) (*Actor, bool) {
	m.actorsByUUIDMu.RLock()
	defer m.actorsByUUIDMu.RUnlock()
	a, ok := m.actorsByUUID[id]
	return a, ok
}

// ActorOf returns the actor whose world-side body is b.
func (m *Manager) ActorOf(b Body) (*Actor, bool) {
	m.actorsByBodyMu.RLock()
	defer m.actorsByBodyMu.RUnlock()
	a, ok := m.actorsByBody[b]
	return a, ok
}

// ActorsOf returns the actors created by owner, ordered by id.
func (m *Manager) ActorsOf(owner uuid.UUID) []*Actor {
	m.actorsByOwnerMu.RLock()
	set := m.actorsByOwner[owner]
	out := make([]*Actor, 0, len(set))
	for _, a := range set {
		out = append(out, a)
	}
	m.actorsByOwnerMu.RUnlock()
	sortByID(out)
	return out
}

// All returns every live actor, ordered by id.
func (m *Manager) All() []*Actor {
	m.actorsMu.RLock()
	out := make([]*Actor, 0, len(m.actors))
	for _, a := range m.actors {
		out = append(out, a)
	}
	m.actorsMu.RUnlock()
	sortByID(out)
	return out
}

// Count returns the number of live actors.
func (m *Manager) Count() int {
	m.actorsMu.RLock()
	defer m.actorsMu.RUnlock()
	return len(m.actors)
}

// Close removes every actor from the world without deleting it from the
// store, then waits for pending writes. The manager must not be used after.
func (m *Manager) Close() {
	if !m.closed.CompareAndSwap(false, true) {
		return
	}
	actors := m.All()
	for _, a := range actors {
		m.destroy(a)
	}
	if m.persister != nil {
		m.persister.close()
	}
	m.log.Info("npc: manager closed", "actors", len(actors))
}

func sortByID(actors []*Actor) {
	slices.SortFunc(actors, func(a, b *Actor) int {
		switch {
		case a.id < b.id:
			return -1
		case a.id > b.id:
			return 1
		}
		return 0
	})
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
