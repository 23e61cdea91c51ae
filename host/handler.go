package host

import (
	"time"

	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
)

// Handler routes player events involving actors to the npc manager.
// Events it does not handle fall through to the wrapped handler, so servers
// can keep their own player.Handler alongside it.
//
// Handlers are executed synchronously by Dragonfly inside the player's
// transaction. Everything they trigger on other entities or players is
// scheduled on the world, never executed inline.
type Handler struct {
	player.Handler

	host    *Host
	session *session
}

// Compile-time check that Handler implements player.Handler.
var _ player.Handler = (*Handler)(nil)

// HandleAttackEntity turns a punch on an actor into a pending-action check.
// Actors never take knockback or damage from players.
func (h *Handler) HandleAttackEntity(ctx *player.Context, e world.Entity, force, height *float64, critical *bool) {
	a, ok := h.host.actorOf(e)
	if !ok {
		h.Handler.HandleAttackEntity(ctx, e, force, height, critical)
		return
	}
	ctx.Cancel()
	h.host.manager().Punch(h.session, a)
}

// HandleItemUseOnEntity runs the commands of a used actor.
func (h *Handler) HandleItemUseOnEntity(ctx *player.Context, e world.Entity) {
	a, ok := h.host.actorOf(e)
	if !ok {
		h.Handler.HandleItemUseOnEntity(ctx, e)
		return
	}
	ctx.Cancel()
	h.host.manager().Interact(h.session, a)
}

// HandleChangeWorld moves the session to the new world and re-evaluates
// which actors the player may see there.
func (h *Handler) HandleChangeWorld(p *player.Player, before, after *world.World) {
	h.session.world.Store(after)
	h.host.dir.move(h.session, before, after)
	h.host.manager().Join(h.session)
	h.Handler.HandleChangeWorld(p, before, after)
}

// HandleQuit forgets the player.
func (h *Handler) HandleQuit(p *player.Player) {
	h.Handler.HandleQuit(p)
	h.host.leave(h.session)
}

// actorHandler is the handler of human actor bodies.
type actorHandler struct {
	player.NopHandler
}

// HandleHurt makes actors invulnerable.
func (actorHandler) HandleHurt(ctx *player.Context, _ *float64, _ bool, _ *time.Duration, _ world.DamageSource) {
	ctx.Cancel()
}
