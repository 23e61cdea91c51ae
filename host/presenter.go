package host

import (
	"image/color"
	"math/rand/v2"

	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/dragonfly/server/world/particle"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/oriumgames/npc"
)

// eyeHeight is the eye height of a standing player.
const eyeHeight = 1.62

// Present shows a to op.
func (h *Host) Present(a *npc.Actor, op npc.Operator) {
	h.show(a, op, true)
}

// Withdraw hides a from op.
func (h *Host) Withdraw(a *npc.Actor, op npc.Operator) {
	h.show(a, op, false)
}

func (h *Host) show(a *npc.Actor, op npc.Operator, visible bool) {
	b, ok := bodyOf(a)
	if !ok {
		return
	}
	s, ok := op.(*session)
	if !ok || s.world.Load() != b.w {
		return
	}
	b.exec(func(tx *world.Tx, e world.Entity) {
		p, ok := s.player(tx)
		if !ok {
			return
		}
		if visible {
			p.ShowEntity(e)
		} else {
			p.HideEntity(e)
		}
	})
}

// Emote plays emote on a. Emotes are broadcast to every viewer of the
// actor's position; to only narrows the call to actors that are seen by at
// least one of the listed operators.
func (h *Host) Emote(a *npc.Actor, emote uuid.UUID, to []npc.Operator) {
	b, ok := bodyOf(a)
	if !ok || !b.human {
		return
	}
	if to != nil && !viewedByAny(a, to) {
		return
	}
	b.exec(func(tx *world.Tx, e world.Entity) {
		for _, v := range tx.Viewers(e.Position()) {
			v.ViewEmote(e, emote)
		}
	})
}

func viewedByAny(a *npc.Actor, ops []npc.Operator) bool {
	for _, op := range ops {
		if a.ViewedBy(op.UUID()) {
			return true
		}
	}
	return false
}

// SwingArm swings the arm of a human actor.
func (h *Host) SwingArm(a *npc.Actor) {
	b, ok := bodyOf(a)
	if !ok || !b.human {
		return
	}
	b.exec(func(_ *world.Tx, e world.Entity) {
		if p, ok := e.(*player.Player); ok {
			p.SwingArm()
		}
	})
}

// Particles emits a dust particle of a random colour at every offset.
func (h *Host) Particles(a *npc.Actor, offsets []mgl64.Vec3) {
	b, ok := bodyOf(a)
	if !ok {
		return
	}
	b.exec(func(tx *world.Tx, e world.Entity) {
		pos := e.Position()
		for _, off := range offsets {
			tx.AddParticle(pos.Add(off), particle.Dust{Colour: randomColour()})
		}
	})
}

// FaceNearest turns a towards the closest player within radius, if any.
func (h *Host) FaceNearest(a *npc.Actor, radius float64) {
	b, ok := bodyOf(a)
	if !ok {
		return
	}
	sessions := h.dir.inWorld(b.w)
	if len(sessions) == 0 {
		return
	}
	scale := a.Scale()

	b.exec(func(tx *world.Tx, e world.Entity) {
		pos := e.Position()
		best, found := radius*radius, false
		var target mgl64.Vec3
		for _, s := range sessions {
			p, ok := s.player(tx)
			if !ok {
				continue
			}
			if d := p.Position().Sub(pos).LenSqr(); d <= best {
				best, found = d, true
				target = p.Position().Add(mgl64.Vec3{0, eyeHeight})
			}
		}
		if !found {
			return
		}

		eye := pos.Add(mgl64.Vec3{0, eyeHeight * scale})
		rot := npc.LookRotation(eye, target)
		switch e := e.(type) {
		case *player.Player:
			cur := e.Rotation()
			e.Move(mgl64.Vec3{}, rot.Yaw()-cur.Yaw(), rot.Pitch()-cur.Pitch())
		case *mob:
			e.face(rot)
		}
	})
}

func randomColour() color.RGBA {
	return color.RGBA{
		R: uint8(rand.IntN(256)),
		G: uint8(rand.IntN(256)),
		B: uint8(rand.IntN(256)),
		A: 0xff,
	}
}
