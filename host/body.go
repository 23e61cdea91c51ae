package host

import (
	"sync/atomic"

	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oriumgames/npc"
)

// entityBody is an actor body living in a dragonfly world. All mutations are
// scheduled on the world without waiting, so a body may be changed from
// inside any transaction.
type entityBody struct {
	host   *Host
	handle *world.EntityHandle
	w      *world.World
	human  bool
	closed atomic.Bool
}

// Constructor returns the species constructor spawning bodies in the host's
// world. Humans become players wearing the captured skin; everything else
// becomes a mob rendered with the species' network identifier.
func (h *Host) Constructor() npc.Constructor {
	return func(p npc.SpawnParams) (npc.Body, error) {
		opts := world.EntitySpawnOpts{
			Position: p.Position,
			Rotation: p.Rotation,
			ID:       p.UUID,
		}

		nameTag := ""
		if p.NameTagVisible {
			nameTag = p.Name
		}

		b := &entityBody{host: h, w: h.world, human: p.Species.Human}
		if b.human {
			sk, err := decodeSkin(p.Skin)
			if err != nil {
				return nil, err
			}
			name := p.Name
			if name == "" {
				name = p.Species.Name
			}
			b.handle = opts.New(player.Type, player.Config{Name: name, Skin: sk})
		} else {
			b.handle = opts.New(mobType{species: p.Species}, mobConfig{
				nameTag: nameTag,
				scale:   p.Scale,
			})
		}
		h.bodies.Store(b.handle, b)

		h.world.Exec(func(tx *world.Tx) {
			if b.closed.Load() {
				return
			}
			e := tx.AddEntity(b.handle)
			if pl, ok := e.(*player.Player); ok {
				pl.Handle(actorHandler{})
				pl.SetNameTag(nameTag)
				pl.SetScale(p.Scale)
			}
		})
		return b, nil
	}
}

// SetNameTag changes the tag rendered above the body.
func (b *entityBody) SetNameTag(name string) {
	b.exec(func(_ *world.Tx, e world.Entity) {
		switch e := e.(type) {
		case *player.Player:
			e.SetNameTag(name)
		case *mob:
			e.setNameTag(name)
		}
	})
}

// SetScale changes the render scale of the body.
func (b *entityBody) SetScale(scale float64) {
	b.exec(func(_ *world.Tx, e world.Entity) {
		switch e := e.(type) {
		case *player.Player:
			e.SetScale(scale)
		case *mob:
			e.setScale(scale)
		}
	})
}

// Close removes the body from the world. Closing twice is a no-op.
func (b *entityBody) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	b.host.bodies.Delete(b.handle)
	b.w.Exec(func(tx *world.Tx) {
		if e, ok := b.handle.Entity(tx); ok {
			tx.RemoveEntity(e)
		}
	})
	return nil
}

// exec schedules fn with the body's entity.
func (b *entityBody) exec(fn func(tx *world.Tx, e world.Entity)) {
	if b.closed.Load() {
		return
	}
	b.w.Exec(func(tx *world.Tx) {
		if e, ok := b.handle.Entity(tx); ok {
			fn(tx, e)
		}
	})
}

// bodyOf returns the body of an actor, if it lives in a world.
func bodyOf(a *npc.Actor) (*entityBody, bool) {
	b, ok := a.Body().(*entityBody)
	if !ok || b.closed.Load() {
		return nil, false
	}
	return b, true
}
