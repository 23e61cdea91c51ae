package npc

import (
	"errors"
	"fmt"
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// PunchResult describes what a punch did.
type PunchResult int

const (
	// PunchIgnored means nothing happened.
	PunchIgnored PunchResult = iota
	// PunchRetrievedID means the attacker was told the actor id.
	PunchRetrievedID
	// PunchDenied means a pending deletion was refused and stays armed.
	PunchDenied
	// PunchDeleted means the actor was despawned.
	PunchDeleted
)

// String returns the string representation of the result.
func (r PunchResult) String() string {
	switch r {
	case PunchIgnored:
		return "Ignored"
	case PunchRetrievedID:
		return "RetrievedID"
	case PunchDenied:
		return "Denied"
	case PunchDeleted:
		return "Deleted"
	default:
		return "Unknown"
	}
}

// Punch handles attacker punching a. Actors never take damage; callers cancel
// the underlying attack regardless of the result.
func (m *Manager) Punch(attacker Operator, a *Actor) PunchResult {
	if a.Destroyed() || a.Visibility() == InvisibleToEveryone {
		return PunchIgnored
	}
	id := attacker.UUID()

	action, ok := m.pending.Peek(id)
	if !ok {
		return PunchIgnored
	}
	switch action {
	case RetrieveID:
		if !m.pending.ConsumeIf(id, RetrieveID) {
			return PunchIgnored
		}
		attacker.Message(m.sprintf("NPC Entity ID: %s", itoa(a.id)))
		return PunchRetrievedID

	case ConfirmDelete:
		if !m.mayManage(attacker, a, CapDeleteOthers) {
			attacker.Message(m.sprintf("You don't have permission to delete this entity!"))
			return PunchDenied
		}
		if !m.pending.ConsumeIf(id, ConfirmDelete) {
			return PunchIgnored
		}
		if err := m.Despawn(attacker, a.id); err != nil {
			m.log.Debug("npc: confirmed delete failed", "actor", a.id, "error", err)
			return PunchIgnored
		}
		return PunchDeleted
	}
	return PunchIgnored
}

// Interact handles op using a: runs its commands unless op is cooling down,
// swings its arm and plays its action emote to op. It reports false if the
// actor cannot be interacted with.
func (m *Manager) Interact(op Operator, a *Actor) bool {
	if a.Destroyed() || a.Visibility() == InvisibleToEveryone {
		return false
	}

	if m.commandReady(op, a) {
		if err := m.RunCommands(op, a); err != nil {
			m.log.Error("npc: command dispatch failed", "actor", a.id, "player", op.Name(), "error", err)
		}
	}

	if a.species.Human && a.SlapBack() {
		m.effects.SwingArm(a)
	}

	if e := a.ActionEmote(); e.Valid {
		s := m.settings
		if !s.ActionEmoteCooldownEnabled || a.actionEmoteCooldown.TryFire(e.UUID, m.now(), s.ActionEmoteCooldown) {
			m.effects.Emote(a, e.UUID, []Operator{op})
		}
	}
	return true
}

// commandReady applies the command cooldown, telling op how long to wait when
// it is still running.
func (m *Manager) commandReady(op Operator, a *Actor) bool {
	s := m.settings
	if !s.CommandCooldownEnabled || s.CommandCooldown <= 0 || m.authorizer.Allowed(op, CapBypassCooldown) {
		return true
	}
	now := m.now()
	key := commandKey{player: fold(op.Name()), actor: a.id}
	if a.commandCooldown.TryFire(key, now, s.CommandCooldown) {
		return true
	}

	remaining := a.commandCooldown.Remaining(key, now, s.CommandCooldown).Seconds()
	op.Message(m.sprintf("Please wait %.1f seconds before interacting again.", math.Round(remaining*10)/10))
	return false
}

// RunCommands renders and dispatches every command of a for op, in order.
// An unrecognised target stops dispatch and returns ErrInvalidCommandTarget.
func (m *Manager) RunCommands(op Operator, a *Actor) error {
	for i, c := range a.commands.All() {
		line := Render(c.Text, op.Name())
		switch c.Target {
		case ServerConsole:
			m.dispatcher.DispatchAsConsole(line)
		case ActingPlayer:
			m.dispatcher.DispatchAsPlayer(op, line)
		default:
			return fmt.Errorf("command %d of actor %d: target %q: %w", i, a.id, c.Target, ErrInvalidCommandTarget)
		}
	}
	return nil
}

// Tick advances a by one tick: ambient particles, the passive emote and
// rotation towards the nearest player.
func (m *Manager) Tick(a *Actor) {
	if a.Destroyed() {
		return
	}
	ticks := a.ticks.Add(1)
	if a.Visibility() == InvisibleToEveryone {
		return
	}
	s := m.settings

	if s.Particles && a.species.Human {
		offsets := ParticleOffsets(ticks, a.Scale())
		m.effects.Particles(a, offsets[:])
	}

	if e := a.Emote(); e.Valid {
		if !s.EmoteCooldownEnabled || a.emoteCooldown.TryFire(e.UUID, m.now(), s.EmoteCooldown) {
			m.effects.Emote(a, e.UUID, nil)
		}
	}

	if a.RotatesToPlayers() {
		m.effects.FaceNearest(a, s.RotationRadius)
	}
}

// ParticleRadius is the distance of ambient particles from the actor's axis.
const ParticleRadius = 0.8

// ParticleOffsets returns the two ambient particle offsets for an actor that
// has lived ticks ticks. They orbit at ParticleRadius above the actor's head.
func ParticleOffsets(ticks int64, scale float64) [2]mgl64.Vec3 {
	angle := mgl64.DegToRad(float64(ticks) / 0.09)
	x := math.Cos(angle) * ParticleRadius
	z := math.Sin(angle) * ParticleRadius
	y := 2.0 * scale
	return [2]mgl64.Vec3{
		{-x, y, -z},
		{-z, y, -x},
	}
}

// LookRotation returns the rotation of an entity at from looking at to.
func LookRotation(from, to mgl64.Vec3) cube.Rotation {
	d := to.Sub(from)
	horizontal := math.Hypot(d[0], d[2])
	yaw := mgl64.RadToDeg(math.Atan2(d[2], d[0])) - 90
	pitch := -mgl64.RadToDeg(math.Atan2(d[1], horizontal))
	if yaw < -180 {
		yaw += 360
	}
	return cube.Rotation{yaw, pitch}
}

// IsConfigError reports whether err is a configuration bug rather than a
// runtime condition.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidCommandTarget) || errors.Is(err, ErrDuplicateSpecies)
}
