package host

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oriumgames/npc"
)

// console is the command source used for server-targeted actor commands.
// Its output goes to the log.
type console struct {
	log *slog.Logger
}

func (console) Name() string {
	return "Server"
}

func (console) Position() mgl64.Vec3 {
	return mgl64.Vec3{}
}

func (c console) SendCommandOutput(o *cmd.Output) {
	for _, m := range o.Messages() {
		c.log.Info("npc: console command output", "message", fmt.Sprint(m))
	}
	for _, err := range o.Errors() {
		c.log.Warn("npc: console command failed", "error", fmt.Sprint(err))
	}
}

// DispatchAsConsole runs line as the server console in the host's world.
func (h *Host) DispatchAsConsole(line string) {
	name, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	c, ok := cmd.ByAlias(name)
	if !ok {
		h.log.Warn("npc: unknown console command", "command", name)
		return
	}
	src := console{log: h.log}
	h.world.Exec(func(tx *world.Tx) {
		c.Execute(args, src, tx)
	})
}

// DispatchAsPlayer runs line as op, subject to op's own permissions.
func (h *Host) DispatchAsPlayer(op npc.Operator, line string) {
	s, ok := op.(*session)
	if !ok {
		h.log.Warn("npc: cannot dispatch for foreign operator", "operator", op.Name())
		return
	}
	s.exec(func(_ *world.Tx, p *player.Player) {
		p.ExecuteCommand("/" + line)
	})
}
