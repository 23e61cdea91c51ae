package npc

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// SpawnConfig configures the initial state of an actor.
// It is used with Manager.Spawn.
type SpawnConfig struct {
	// Identity
	Name string // name template, see RenderName
	Skin SkinData

	// Position
	Position mgl64.Vec3
	Rotation cube.Rotation

	// Appearance
	Scale      float64 // zero derives the scale from Baby
	Baby       bool
	Visibility Visibility

	// Behaviour overrides. Nil uses the manager's Settings.
	RotateToPlayers *bool
	NameTagVisible  *bool
	SlapBack        *bool

	// Reactions
	Emote       uuid.NullUUID
	ActionEmote uuid.NullUUID
	Commands    []Command
}

// SkinData is the raw skin of a human actor.
type SkinData struct {
	Width, Height int
	Pix           []byte
	Model         []byte
	ModelName     string
}

// Empty reports whether no skin data is set.
func (s SkinData) Empty() bool {
	return len(s.Pix) == 0
}

// commandKey identifies a command cooldown entry.
type commandKey struct {
	player string
	actor  int64
}

// Actor is a live NPC. All methods are safe for concurrent use.
// Mutations go through the Manager so they stay persisted and authorized.
type Actor struct {
	id      int64
	uuid    uuid.UUID
	owner   uuid.UUID
	species *Species
	body    Body

	mu             sync.RWMutex
	name           string
	scale          float64
	scaleOverride  bool
	baby           bool
	visibility     Visibility
	rotate         bool
	nameTagVisible bool
	slapBack       bool
	emote          uuid.NullUUID
	actionEmote    uuid.NullUUID
	skin           SkinData
	position       mgl64.Vec3
	rotation       cube.Rotation
	viewers        map[uuid.UUID]Operator

	commands Commands

	commandCooldown     Cooldown[commandKey]
	emoteCooldown       Cooldown[uuid.UUID]
	actionEmoteCooldown Cooldown[uuid.UUID]

	ticks     atomic.Int64
	destroyed atomic.Bool
}

// ID returns the process-local actor id.
func (a *Actor) ID() int64 {
	return a.id
}

// UUID returns the persistent identity of the actor.
func (a *Actor) UUID() uuid.UUID {
	return a.uuid
}

// Owner returns the UUID of the operator who created the actor.
func (a *Actor) Owner() uuid.UUID {
	return a.owner
}

// Species returns the actor's species.
func (a *Actor) Species() *Species {
	return a.species
}

// Body returns the world-side body.
func (a *Actor) Body() Body {
	return a.body
}

// Name returns the configured name, which may be empty.
func (a *Actor) Name() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.name
}

// DisplayName returns the name shown to players, falling back to the species
// name.
func (a *Actor) DisplayName() string {
	if n := a.Name(); n != "" {
		return n
	}
	return a.species.Name
}

// Scale returns the render scale.
func (a *Actor) Scale() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.scale
}

// Baby reports whether the actor is a juvenile.
func (a *Actor) Baby() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.baby
}

// Visibility returns the current visibility.
func (a *Actor) Visibility() Visibility {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.visibility
}

// RotatesToPlayers reports whether the actor turns towards nearby players.
func (a *Actor) RotatesToPlayers() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.rotate
}

// NameTagVisible reports whether the name tag is shown.
func (a *Actor) NameTagVisible() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.nameTagVisible
}

// SlapBack reports whether the actor swings its arm when used.
func (a *Actor) SlapBack() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.slapBack
}

// Emote returns the passive emote.
func (a *Actor) Emote() uuid.NullUUID {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.emote
}

// ActionEmote returns the emote played when the actor is used.
func (a *Actor) ActionEmote() uuid.NullUUID {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.actionEmote
}

// Skin returns the skin of a human actor.
func (a *Actor) Skin() SkinData {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.skin
}

// Position returns the spawn position.
func (a *Actor) Position() mgl64.Vec3 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.position
}

// Rotation returns the spawn rotation.
func (a *Actor) Rotation() cube.Rotation {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.rotation
}

// Commands returns a copy of the command list.
func (a *Actor) Commands() []Command {
	return a.commands.All()
}

// Ticks returns the number of ticks the actor has lived.
func (a *Actor) Ticks() int64 {
	return a.ticks.Load()
}

// Destroyed reports whether the actor has been despawned.
func (a *Actor) Destroyed() bool {
	return a.destroyed.Load()
}

// Viewers returns the UUIDs of the operators the actor is presented to,
// sorted.
func (a *Actor) Viewers() []uuid.UUID {
	a.mu.RLock()
	out := make([]uuid.UUID, 0, len(a.viewers))
	for id := range a.viewers {
		out = append(out, id)
	}
	a.mu.RUnlock()
	slices.SortFunc(out, func(x, y uuid.UUID) int {
		return slices.Compare(x[:], y[:])
	})
	return out
}

// ViewedBy reports whether the actor is presented to the operator with id.
func (a *Actor) ViewedBy(id uuid.UUID) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.viewers[id]
	return ok
}

// nameTag returns the name tag to render, empty when hidden.
func (a *Actor) nameTag() string {
	if !a.NameTagVisible() {
		return ""
	}
	return a.DisplayName()
}

func (a *Actor) viewerOperators() []Operator {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Operator, 0, len(a.viewers))
	for _, op := range a.viewers {
		out = append(out, op)
	}
	return out
}

func (a *Actor) addViewer(op Operator) {
	a.mu.Lock()
	a.viewers[op.UUID()] = op
	a.mu.Unlock()
}

func (a *Actor) removeViewer(id uuid.UUID) {
	a.mu.Lock()
	delete(a.viewers, id)
	a.mu.Unlock()
}

// update applies fn under the write lock unless the actor is destroyed.
func (a *Actor) update(fn func(a *Actor) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.destroyed.Load() {
		return ErrDestroyed
	}
	return fn(a)
}
