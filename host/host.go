// Package host binds the npc manager to a Dragonfly world.
//
// A Host provides every collaborator the manager needs: bodies built as
// world entities, a directory of online players, presentation through
// per-player entity hiding, cosmetic effects, command dispatch and an
// operator allowlist. It also registers the /npc command.
//
// # Quick Start
//
//	h := host.New(srv.World(), log, host.NewOperators("Steve"))
//
//	catalog := npc.NewCatalog()
//	npc.RegisterAll(catalog, h.Constructor())
//
//	mngr := npc.NewBuilder().
//	    Catalog(catalog).
//	    Presenter(h).
//	    Directory(h.Directory()).
//	    Dispatcher(h).
//	    Effects(h).
//	    Authorizer(h.Operators()).
//	    Init()
//	h.Attach(mngr)
//
//	for p := range srv.Accept() {
//	    h.Accept(p)
//	}
package host

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oriumgames/npc"
)

// Host connects an npc.Manager to a single Dragonfly world.
type Host struct {
	log   *slog.Logger
	world *world.World
	dir   *Directory
	ops   *Operators

	// bodies maps entity handles to the bodies living in the world
	bodies sync.Map

	mngr  atomic.Pointer[npc.Manager]
	sched atomic.Pointer[Scheduler]
}

// Compile-time checks that Host provides the manager's collaborators.
var (
	_ npc.Presenter  = (*Host)(nil)
	_ npc.Dispatcher = (*Host)(nil)
	_ npc.Effects    = (*Host)(nil)
	_ npc.Directory  = (*Directory)(nil)
	_ npc.Authorizer = (*Operators)(nil)
)

// New creates a host for w. A nil ops grants nothing to anyone.
func New(w *world.World, log *slog.Logger, ops *Operators) *Host {
	if log == nil {
		log = slog.Default()
	}
	if ops == nil {
		ops = NewOperators()
	}
	return &Host{
		log:   log,
		world: w,
		dir:   NewDirectory(),
		ops:   ops,
	}
}

// Directory returns the online-player directory.
func (h *Host) Directory() *Directory {
	return h.dir
}

// Operators returns the capability allowlist.
func (h *Host) Operators() *Operators {
	return h.ops
}

// Manager returns the attached manager, or nil before Attach.
func (h *Host) Manager() *npc.Manager {
	return h.mngr.Load()
}

// Scheduler returns the running scheduler, or nil before Attach.
func (h *Host) Scheduler() *Scheduler {
	return h.sched.Load()
}

// Attach binds m to the host, registers the /npc command and starts ticking
// actors. It panics if called twice.
func (h *Host) Attach(m *npc.Manager, opts ...SchedulerOption) {
	if !h.mngr.CompareAndSwap(nil, m) {
		panic("npc: host already attached to a manager")
	}
	registerCommand()

	s := NewScheduler(m, h.log, opts...)
	h.sched.Store(s)
	s.Start()
}

func (h *Host) manager() *npc.Manager {
	m := h.mngr.Load()
	if m == nil {
		panic("npc: host used before Attach")
	}
	return m
}

// Accept starts tracking p: it installs the handler, wrapping any handler p
// already has, and shows p the actors it may see. It must be called within
// p's transaction, e.g. from the srv.Accept loop.
func (h *Host) Accept(p *player.Player) *Handler {
	s := newSession(p)
	h.dir.add(s)

	inner := p.Handler()
	if inner == nil {
		inner = player.NopHandler{}
	}
	handler := &Handler{Handler: inner, host: h, session: s}
	p.Handle(handler)

	h.manager().Join(s)
	h.log.Debug("npc: player joined", "player", s.name)
	return handler
}

// leave forgets a player that quit.
func (h *Host) leave(s *session) {
	if s.closed.Swap(true) {
		return
	}
	m := h.manager()
	m.Leave(s)
	m.Pending().Cancel(s.uuid)
	h.dir.remove(s)
	h.log.Debug("npc: player left", "player", s.name)
}

// actorOf returns the actor whose body is e.
func (h *Host) actorOf(e world.Entity) (*npc.Actor, bool) {
	v, ok := h.bodies.Load(e.H())
	if !ok {
		return nil, false
	}
	m := h.mngr.Load()
	if m == nil {
		return nil, false
	}
	return m.ActorOf(v.(*entityBody))
}

// Close stops ticking actors. The manager is closed separately.
func (h *Host) Close() {
	if s := h.sched.Load(); s != nil {
		s.Stop()
	}
}
