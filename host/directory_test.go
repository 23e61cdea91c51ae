package host

import (
	"testing"

	"github.com/df-mc/dragonfly/server/world"
	"github.com/google/uuid"
)

func testSession(name string) *session {
	return &session{
		handle: new(world.EntityHandle),
		uuid:   uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
		name:   name,
	}
}

func TestDirectoryLookup(t *testing.T) {
	t.Parallel()

	d := NewDirectory()
	steve, alex := testSession("Steve"), testSession("Alex")
	d.add(steve)
	d.add(alex)

	if d.Count() != 2 {
		t.Fatalf("Count = %d, want 2", d.Count())
	}
	if op, ok := d.Operator(steve.uuid); !ok || op.Name() != "Steve" {
		t.Fatalf("Operator(steve) = %v, %v", op, ok)
	}
	if op, ok := d.ByName("ALEX"); !ok || op.UUID() != alex.uuid {
		t.Fatalf("ByName(ALEX) = %v, %v", op, ok)
	}
	if s, ok := d.byHandle(alex.handle); !ok || s != alex {
		t.Fatal("byHandle(alex) did not return alex")
	}

	d.remove(steve)
	if _, ok := d.Operator(steve.uuid); ok {
		t.Fatal("Operator found after remove")
	}
	if _, ok := d.ByName("steve"); ok {
		t.Fatal("ByName found after remove")
	}
	if d.Count() != 1 {
		t.Fatalf("Count = %d, want 1", d.Count())
	}
}

func TestDirectorySkipsClosedSessions(t *testing.T) {
	t.Parallel()

	d := NewDirectory()
	s := testSession("Steve")
	d.add(s)
	s.closed.Store(true)

	if _, ok := d.Operator(s.uuid); ok {
		t.Fatal("closed session returned by Operator")
	}
	if got := d.all(); len(got) != 0 {
		t.Fatalf("all = %d sessions, want 0", len(got))
	}
}

func TestDirectoryRemoveKeepsReplacement(t *testing.T) {
	t.Parallel()

	d := NewDirectory()
	old := testSession("Steve")
	d.add(old)
	fresh := testSession("Steve")
	d.add(fresh)

	d.remove(old)
	if op, ok := d.Operator(fresh.uuid); !ok || op != fresh {
		t.Fatal("removing a stale session dropped its replacement")
	}
}
