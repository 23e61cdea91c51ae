package npc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

type fakeOperator struct {
	id   uuid.UUID
	name string

	mu       sync.Mutex
	messages []string
}

func newOperator(name string) *fakeOperator {
	return &fakeOperator{id: uuid.New(), name: name}
}

func (o *fakeOperator) UUID() uuid.UUID { return o.id }
func (o *fakeOperator) Name() string    { return o.name }

func (o *fakeOperator) Message(a ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages = append(o.messages, fmt.Sprint(a...))
}

func (o *fakeOperator) Messages() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.messages)
}

func (o *fakeOperator) LastMessage() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.messages) == 0 {
		return ""
	}
	return o.messages[len(o.messages)-1]
}

type fakeBody struct {
	mu      sync.Mutex
	params  SpawnParams
	nameTag string
	scale   float64
	closed  int
}

func (b *fakeBody) SetNameTag(name string) {
	b.mu.Lock()
	b.nameTag = name
	b.mu.Unlock()
}

func (b *fakeBody) SetScale(scale float64) {
	b.mu.Lock()
	b.scale = scale
	b.mu.Unlock()
}

func (b *fakeBody) Close() error {
	b.mu.Lock()
	b.closed++
	b.mu.Unlock()
	return nil
}

type emoteCall struct {
	actor int64
	emote uuid.UUID
	to    []uuid.UUID
}

// fakeWorld implements Presenter, Directory, Dispatcher and Effects.
type fakeWorld struct {
	mu        sync.Mutex
	online    []*fakeOperator
	elsewhere map[uuid.UUID]bool
	shown     map[Body]map[uuid.UUID]bool
	console   []string
	asPlayer  []string
	emotes    []emoteCall
	swings    int
	particles int
	faced     int
}

func newFakeWorld(ops ...*fakeOperator) *fakeWorld {
	return &fakeWorld{online: ops, shown: make(map[Body]map[uuid.UUID]bool)}
}

func (w *fakeWorld) construct(p SpawnParams) (Body, error) {
	return &fakeBody{params: p, nameTag: p.Name, scale: p.Scale}, nil
}

func (w *fakeWorld) connect(op *fakeOperator) {
	w.mu.Lock()
	w.online = append(w.online, op)
	w.mu.Unlock()
}

func (w *fakeWorld) disconnect(op *fakeOperator) {
	w.mu.Lock()
	w.online = slices.DeleteFunc(w.online, func(o *fakeOperator) bool { return o == op })
	w.mu.Unlock()
}

// relocate moves op out of (or back into) the scope of every actor while
// keeping it online.
func (w *fakeWorld) relocate(op *fakeOperator, away bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.elsewhere == nil {
		w.elsewhere = make(map[uuid.UUID]bool)
	}
	w.elsewhere[op.id] = away
}

// visible reports whether the world currently shows a to op.
func (w *fakeWorld) visible(a *Actor, op Operator) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.shown[a.Body()][op.UUID()]
}

// forget simulates the world losing track of what it showed.
func (w *fakeWorld) forget(a *Actor) {
	w.mu.Lock()
	delete(w.shown, a.Body())
	w.mu.Unlock()
}

func (w *fakeWorld) Present(a *Actor, op Operator) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.shown[a.Body()] == nil {
		w.shown[a.Body()] = make(map[uuid.UUID]bool)
	}
	w.shown[a.Body()][op.UUID()] = true
}

func (w *fakeWorld) Withdraw(a *Actor, op Operator) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.shown[a.Body()], op.UUID())
}

func (w *fakeWorld) Online(*Actor) []Operator {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Operator, 0, len(w.online))
	for _, op := range w.online {
		if !w.elsewhere[op.id] {
			out = append(out, op)
		}
	}
	return out
}

func (w *fakeWorld) Operator(id uuid.UUID) (Operator, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, op := range w.online {
		if op.id == id {
			return op, true
		}
	}
	return nil, false
}

func (w *fakeWorld) DispatchAsConsole(line string) {
	w.mu.Lock()
	w.console = append(w.console, line)
	w.mu.Unlock()
}

func (w *fakeWorld) DispatchAsPlayer(op Operator, line string) {
	w.mu.Lock()
	w.asPlayer = append(w.asPlayer, op.Name()+": "+line)
	w.mu.Unlock()
}

func (w *fakeWorld) Emote(a *Actor, emote uuid.UUID, to []Operator) {
	call := emoteCall{actor: a.ID(), emote: emote}
	for _, op := range to {
		call.to = append(call.to, op.UUID())
	}
	w.mu.Lock()
	w.emotes = append(w.emotes, call)
	w.mu.Unlock()
}

func (w *fakeWorld) SwingArm(*Actor) {
	w.mu.Lock()
	w.swings++
	w.mu.Unlock()
}

func (w *fakeWorld) Particles(_ *Actor, offsets []mgl64.Vec3) {
	w.mu.Lock()
	w.particles += len(offsets)
	w.mu.Unlock()
}

func (w *fakeWorld) FaceNearest(*Actor, float64) {
	w.mu.Lock()
	w.faced++
	w.mu.Unlock()
}

type fakeAuthorizer struct {
	mu     sync.Mutex
	grants map[uuid.UUID][]Capability
}

func (f *fakeAuthorizer) grant(op Operator, c Capability) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.grants == nil {
		f.grants = make(map[uuid.UUID][]Capability)
	}
	f.grants[op.UUID()] = append(f.grants[op.UUID()], c)
}

func (f *fakeAuthorizer) Allowed(op Operator, c Capability) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Contains(f.grants[op.UUID()], c)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type memoryStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]StoredActor
	fail error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: make(map[uuid.UUID]StoredActor)}
}

func (s *memoryStore) SaveActor(_ context.Context, rec StoredActor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.rows[rec.UUID] = rec
	return nil
}

func (s *memoryStore) DeleteActor(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, id)
	return nil
}

func (s *memoryStore) ListActors(context.Context) ([]StoredActor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StoredActor, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b StoredActor) int { return a.UpdatedAt.Compare(b.UpdatedAt) })
	return out, nil
}

func (s *memoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

var errBoom = errors.New("boom")

type harness struct {
	m     *Manager
	world *fakeWorld
	auth  *fakeAuthorizer
	clock *fakeClock
}

// newHarness builds a manager over fakes with every built-in species plus
// "Broken" and "Panicky", whose constructors fail.
func newHarness(t *testing.T, ops ...*fakeOperator) *harness {
	t.Helper()
	return newHarnessWithStore(t, nil, ops...)
}

func newHarnessWithStore(t *testing.T, store Store, ops ...*fakeOperator) *harness {
	t.Helper()
	h := &harness{
		world: newFakeWorld(ops...),
		auth:  &fakeAuthorizer{},
		clock: newFakeClock(),
	}

	catalog := NewCatalog()
	RegisterAll(catalog, h.world.construct)
	mustRegister(t, catalog, Species{Key: "Broken", Height: 1, Width: 1, New: func(SpawnParams) (Body, error) {
		return nil, errBoom
	}})
	mustRegister(t, catalog, Species{Key: "Panicky", Height: 1, Width: 1, New: func(SpawnParams) (Body, error) {
		panic("constructor exploded")
	}})

	b := NewBuilder().
		Catalog(catalog).
		Presenter(h.world).
		Directory(h.world).
		Dispatcher(h.world).
		Effects(h.world).
		Authorizer(h.auth).
		Clock(h.clock.Now).
		Logger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if store != nil {
		b.Store(store)
	}
	h.m = b.Init()
	t.Cleanup(h.m.Close)
	return h
}

func mustRegister(t *testing.T, c *Catalog, s Species) {
	t.Helper()
	if err := c.Register(s); err != nil {
		t.Fatalf("register %s: %v", s.Key, err)
	}
}

func (h *harness) spawn(t *testing.T, typeName string, owner Operator, cfg SpawnConfig) *Actor {
	t.Helper()
	a, err := h.m.Spawn(typeName, owner, cfg)
	if err != nil {
		t.Fatalf("spawn %s: %v", typeName, err)
	}
	return a
}
