package host

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/player"
)

// Command extracts the player and its handler from a command source.
// Returns (nil, nil) if the source is not a player handled by a Host.
//
// Usage:
//
//	func (c MyCommand) Run(src cmd.Source, out *cmd.Output, tx *world.Tx) {
//	    p, h := host.Command(src)
//	    if h == nil {
//	        return
//	    }
//	    // use p and h
//	}
func Command(src cmd.Source) (*player.Player, *Handler) {
	p, ok := src.(*player.Player)
	if !ok {
		return nil, nil
	}
	h, ok := p.Handler().(*Handler)
	if !ok {
		return p, nil
	}
	return p, h
}
