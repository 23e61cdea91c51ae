package host

import (
	"testing"

	"github.com/google/uuid"
	"github.com/oriumgames/npc"
)

type namedOperator string

func (n namedOperator) UUID() uuid.UUID { return uuid.NewSHA1(uuid.NameSpaceOID, []byte(n)) }
func (n namedOperator) Name() string    { return string(n) }
func (n namedOperator) Message(...any)  {}

func TestOperatorsAllowed(t *testing.T) {
	t.Parallel()

	ops := NewOperators("Steve", "  ")
	if ops.Len() != 1 {
		t.Fatalf("Len = %d, want 1", ops.Len())
	}
	for _, c := range AllCapabilities {
		if !ops.Allowed(namedOperator("steve"), c) {
			t.Fatalf("steve lacks %v", c)
		}
	}
	if ops.Allowed(namedOperator("Alex"), npc.CapDeleteOthers) {
		t.Fatal("Alex allowed without grant")
	}
	if ops.Allowed(nil, npc.CapDeleteOthers) {
		t.Fatal("nil operator allowed")
	}
}

func TestOperatorsGrantAndRevoke(t *testing.T) {
	t.Parallel()

	ops := NewOperators()
	ops.Grant("Alex", npc.CapBypassCooldown)

	alex := namedOperator("ALEX")
	if !ops.Allowed(alex, npc.CapBypassCooldown) {
		t.Fatal("Alex lacks granted capability")
	}
	if ops.Allowed(alex, npc.CapEditOthers) {
		t.Fatal("Alex holds capability that was not granted")
	}

	ops.Revoke("alex")
	if ops.Allowed(alex, npc.CapBypassCooldown) {
		t.Fatal("Alex still allowed after Revoke")
	}
}
