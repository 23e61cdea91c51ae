package npc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Visibility controls which operators an actor is presented to.
type Visibility int

const (
	// VisibleToEveryone presents the actor to every online operator in scope.
	VisibleToEveryone Visibility = iota
	// VisibleToCreator presents the actor to its owner only.
	VisibleToCreator
	// InvisibleToEveryone presents the actor to nobody.
	InvisibleToEveryone
)

// Valid reports whether v is a known visibility.
func (v Visibility) Valid() bool {
	return v >= VisibleToEveryone && v <= InvisibleToEveryone
}

// String returns the string representation of the visibility.
func (v Visibility) String() string {
	switch v {
	case VisibleToEveryone:
		return "everyone"
	case VisibleToCreator:
		return "creator"
	case InvisibleToEveryone:
		return "nobody"
	default:
		return "Visibility(" + strconv.Itoa(int(v)) + ")"
	}
}

// ParseVisibility parses "everyone", "creator", "nobody" or their integer
// values.
func ParseVisibility(s string) (Visibility, error) {
	switch fold(strings.TrimSpace(s)) {
	case "everyone", "all":
		return VisibleToEveryone, nil
	case "creator", "owner":
		return VisibleToCreator, nil
	case "nobody", "none", "hidden":
		return InvisibleToEveryone, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !Visibility(n).Valid() {
		return 0, fmt.Errorf("parse visibility %q: %w", s, ErrInvalidVisibility)
	}
	return Visibility(n), nil
}

// SetVisibility transitions a to v and refreshes its observers. Setting the
// current value again forces a full refresh, repairing any drift between the
// observer set and the world.
func (m *Manager) SetVisibility(a *Actor, v Visibility) error {
	if !v.Valid() {
		return fmt.Errorf("set visibility %d: %w", int(v), ErrInvalidVisibility)
	}
	if a.Destroyed() {
		return ErrDestroyed
	}

	a.mu.Lock()
	prev := a.visibility
	a.visibility = v
	a.mu.Unlock()

	m.refresh(a)
	if prev != v {
		m.log.Debug("npc: visibility changed", "actor", a.id, "from", prev, "to", v)
		m.persist(a)
	}
	return nil
}

// authorizes reports whether an actor with visibility v owned by owner may be
// shown to op.
func authorizes(v Visibility, owner uuid.UUID, op Operator) bool {
	switch v {
	case VisibleToEveryone:
		return true
	case VisibleToCreator:
		return op.UUID() == owner
	default:
		return false
	}
}

// refresh withdraws a from everyone who might see it, then presents it to the
// operators its visibility authorizes.
func (m *Manager) refresh(a *Actor) {
	m.withdrawAll(a)

	switch a.Visibility() {
	case VisibleToEveryone:
		for _, op := range m.directory.Online(a) {
			m.present(a, op)
		}
	case VisibleToCreator:
		if op, ok := m.directory.Operator(a.owner); ok && m.inScope(a, op) {
			m.present(a, op)
		}
	}
}

// inScope reports whether op is among the operators that could observe a.
func (m *Manager) inScope(a *Actor, op Operator) bool {
	id := op.UUID()
	for _, o := range m.directory.Online(a) {
		if o.UUID() == id {
			return true
		}
	}
	return false
}

// present is the single path through which an actor becomes visible.
func (m *Manager) present(a *Actor, op Operator) {
	if a.Visibility() == InvisibleToEveryone || a.Destroyed() {
		return
	}
	m.presenter.Present(a, op)
	a.addViewer(op)
}

// withdraw hides a from op.
func (m *Manager) withdraw(a *Actor, op Operator) {
	m.presenter.Withdraw(a, op)
	a.removeViewer(op.UUID())
}

// withdrawAll hides a from its recorded observers and from every online
// operator in scope, since the world may show actors on its own.
func (m *Manager) withdrawAll(a *Actor) {
	seen := make(map[uuid.UUID]struct{})
	for _, op := range a.viewerOperators() {
		seen[op.UUID()] = struct{}{}
		m.withdraw(a, op)
	}
	for _, op := range m.directory.Online(a) {
		if _, ok := seen[op.UUID()]; ok {
			continue
		}
		m.withdraw(a, op)
	}
}

// Join presents every actor whose visibility authorizes op and whose scope
// includes op, and makes sure the rest stay hidden from it. It is called when
// op comes online or changes world.
func (m *Manager) Join(op Operator) {
	for _, a := range m.All() {
		if authorizes(a.Visibility(), a.owner, op) && m.inScope(a, op) {
			m.present(a, op)
		} else {
			m.withdraw(a, op)
		}
	}
}

// Leave drops op from every observer set.
func (m *Manager) Leave(op Operator) {
	id := op.UUID()
	for _, a := range m.All() {
		a.removeViewer(id)
	}
}
