package host

import (
	"strings"
	"sync"

	"github.com/oriumgames/npc"
)

// Operators is an allowlist of player names holding npc capabilities.
// It implements npc.Authorizer. Names are matched case-insensitively.
type Operators struct {
	mu    sync.RWMutex
	grant map[string]map[npc.Capability]struct{}
}

// AllCapabilities lists every capability an operator may hold.
var AllCapabilities = []npc.Capability{
	npc.CapDeleteOthers,
	npc.CapEditOthers,
	npc.CapBypassCooldown,
}

// NewOperators creates an allowlist granting every capability to names.
func NewOperators(names ...string) *Operators {
	o := &Operators{grant: make(map[string]map[npc.Capability]struct{})}
	for _, name := range names {
		o.Grant(name, AllCapabilities...)
	}
	return o
}

// Grant gives caps to the player called name. Blank names are ignored.
func (o *Operators) Grant(name string, caps ...npc.Capability) {
	key := foldName(strings.TrimSpace(name))
	if key == "" {
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	set, ok := o.grant[key]
	if !ok {
		set = make(map[npc.Capability]struct{}, len(caps))
		o.grant[key] = set
	}
	for _, c := range caps {
		set[c] = struct{}{}
	}
}

// Revoke removes every capability from the player called name.
func (o *Operators) Revoke(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.grant, foldName(strings.TrimSpace(name)))
}

// Allowed reports whether op holds c.
func (o *Operators) Allowed(op npc.Operator, c npc.Capability) bool {
	if op == nil {
		return false
	}

	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.grant[foldName(op.Name())][c]
	return ok
}

// Len returns the number of players holding at least one capability.
func (o *Operators) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.grant)
}
