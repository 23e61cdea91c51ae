package sqlite

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/oriumgames/npc"
)

type stubBody struct{ closed bool }

func (b *stubBody) SetNameTag(string) {}
func (b *stubBody) SetScale(float64)  {}
func (b *stubBody) Close() error      { b.closed = true; return nil }

type owner struct{ id uuid.UUID }

func (o owner) UUID() uuid.UUID { return o.id }
func (owner) Name() string      { return "Steve" }
func (owner) Message(...any)    {}

func newManager(t *testing.T, store *Store) *npc.Manager {
	t.Helper()

	c := npc.NewCatalog()
	npc.RegisterAll(c, func(npc.SpawnParams) (npc.Body, error) { return &stubBody{}, nil })
	return npc.NewBuilder().
		Catalog(c).
		Store(store).
		Logger(slog.New(slog.NewTextHandler(io.Discard, nil))).
		Init()
}

func TestManagerPersistsThroughStore(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	steve := owner{id: uuid.New()}

	m := newManager(t, store)
	a, err := m.Spawn("sheep", steve, npc.SpawnConfig{Name: "Dolly", Baby: true})
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if _, err := m.AddCommand(steve, a, "say hi {player}", npc.ServerConsole); err != nil {
		t.Fatalf("add command: %v", err)
	}
	m.Flush()
	m.Close()

	rows, err := store.ListActors(context.Background())
	if err != nil {
		t.Fatalf("list actors: %v", err)
	}
	if len(rows) != 1 || rows[0].UUID != a.UUID() || rows[0].Owner != steve.id {
		t.Fatalf("rows = %+v", rows)
	}

	restored := newManager(t, store)
	t.Cleanup(restored.Close)
	n, err := restored.Restore(context.Background())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if n != 1 {
		t.Fatalf("restored %d actors, want 1", n)
	}
	b, ok := restored.FindByUUID(a.UUID())
	if !ok {
		t.Fatal("restored actor not found by uuid")
	}
	if b.Name() != "Dolly" || !b.Baby() || b.Species().Key != "Sheep" {
		t.Fatalf("restored actor = %q baby=%t species=%s", b.Name(), b.Baby(), b.Species().Key)
	}
	if cmds := b.Commands(); len(cmds) != 1 || cmds[0].Text != "say hi {player}" {
		t.Fatalf("restored commands = %v", cmds)
	}
}
