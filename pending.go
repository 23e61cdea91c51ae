package npc

import (
	"sync"

	"github.com/google/uuid"
)

// Action is a deferred operation armed by an operator and applied to the next
// actor they punch.
type Action int

const (
	// RetrieveID reports the punched actor's id.
	RetrieveID Action = iota + 1
	// ConfirmDelete despawns the punched actor.
	ConfirmDelete
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case RetrieveID:
		return "RetrieveID"
	case ConfirmDelete:
		return "ConfirmDelete"
	default:
		return "Unknown"
	}
}

// PendingActions holds at most one pending action per operator.
// Actions never expire; they are consumed by a matching punch or cancelled.
type PendingActions struct {
	mu      sync.Mutex
	pending map[uuid.UUID]Action
}

// NewPendingActions creates an empty queue.
func NewPendingActions() *PendingActions {
	return &PendingActions{pending: make(map[uuid.UUID]Action)}
}

// Request arms action for op, replacing any previous one.
func (q *PendingActions) Request(op uuid.UUID, action Action) {
	q.mu.Lock()
	q.pending[op] = action
	q.mu.Unlock()
}

// Peek returns the pending action of op without consuming it.
func (q *PendingActions) Peek(op uuid.UUID) (Action, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	a, ok := q.pending[op]
	return a, ok
}

// Consume removes and returns the pending action of op.
func (q *PendingActions) Consume(op uuid.UUID) (Action, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	a, ok := q.pending[op]
	if ok {
		delete(q.pending, op)
	}
	return a, ok
}

// ConsumeIf removes the pending action of op only if it equals want.
// Of two concurrent callers at most one observes true.
func (q *PendingActions) ConsumeIf(op uuid.UUID, want Action) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if a, ok := q.pending[op]; !ok || a != want {
		return false
	}
	delete(q.pending, op)
	return true
}

// Cancel drops the pending action of op and reports whether there was one.
func (q *PendingActions) Cancel(op uuid.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.pending[op]
	delete(q.pending, op)
	return ok
}

// Len returns the number of operators with a pending action.
func (q *PendingActions) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
