package npc

import (
	"context"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Operator is an online player able to create, view and interact with actors.
type Operator interface {
	// UUID returns the operator's persistent identity.
	UUID() uuid.UUID
	// Name returns the operator's account name.
	Name() string
	// Message sends a chat message to the operator.
	Message(a ...any)
}

// Body is the world-side representation of an actor, created by a species
// constructor.
type Body interface {
	SetNameTag(name string)
	SetScale(scale float64)
	// Close removes the body from the world.
	Close() error
}

// Presenter makes an actor visible or invisible to a single operator.
// Both calls must be idempotent.
type Presenter interface {
	Present(a *Actor, op Operator)
	Withdraw(a *Actor, op Operator)
}

// Directory answers which operators are online.
type Directory interface {
	// Online returns every online operator that could observe a.
	Online(a *Actor) []Operator
	// Operator returns the online operator with the given UUID.
	Operator(id uuid.UUID) (Operator, bool)
}

// Dispatcher executes rendered command lines.
type Dispatcher interface {
	DispatchAsConsole(line string)
	DispatchAsPlayer(op Operator, line string)
}

// Effects plays cosmetic feedback. Implementations must not block.
type Effects interface {
	// Emote plays emote on the actor. A nil to broadcasts to every viewer.
	// A non-nil to is best-effort: hosts that cannot address single viewers
	// may play it for every viewer once one of to observes the actor.
	Emote(a *Actor, emote uuid.UUID, to []Operator)
	// SwingArm swings the actor's arm.
	SwingArm(a *Actor)
	// Particles emits ambient particles at the given offsets from the actor.
	Particles(a *Actor, offsets []mgl64.Vec3)
	// FaceNearest turns the actor towards the nearest operator within radius.
	FaceNearest(a *Actor, radius float64)
}

// Authorizer reports whether an operator holds a capability.
type Authorizer interface {
	Allowed(op Operator, c Capability) bool
}

// StoredActor is a persisted actor row.
type StoredActor struct {
	UUID      uuid.UUID
	Owner     uuid.UUID
	Species   string
	Payload   []byte
	UpdatedAt time.Time
}

// Store persists actor payloads across restarts.
type Store interface {
	SaveActor(ctx context.Context, rec StoredActor) error
	DeleteActor(ctx context.Context, id uuid.UUID) error
	ListActors(ctx context.Context) ([]StoredActor, error)
}

type nopPresenter struct{}

func (nopPresenter) Present(*Actor, Operator)  {}
func (nopPresenter) Withdraw(*Actor, Operator) {}

type nopDirectory struct{}

func (nopDirectory) Online(*Actor) []Operator            { return nil }
func (nopDirectory) Operator(uuid.UUID) (Operator, bool) { return nil, false }

type nopDispatcher struct{}

func (nopDispatcher) DispatchAsConsole(string)          {}
func (nopDispatcher) DispatchAsPlayer(Operator, string) {}

type nopEffects struct{}

func (nopEffects) Emote(*Actor, uuid.UUID, []Operator) {}
func (nopEffects) SwingArm(*Actor)                     {}
func (nopEffects) Particles(*Actor, []mgl64.Vec3)      {}
func (nopEffects) FaceNearest(*Actor, float64)         {}

// denyAll grants no capability to anyone.
type denyAll struct{}

func (denyAll) Allowed(Operator, Capability) bool { return false }
