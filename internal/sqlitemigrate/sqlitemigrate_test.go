package sqlitemigrate

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func count(t *testing.T, db *sql.DB, query string) int {
	t.Helper()

	var n int
	if err := db.QueryRow(query).Scan(&n); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return n
}

func TestApplyRecordsOnce(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()
	fsys := fstest.MapFS{
		"0001_items.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;")},
		"notes.txt":      &fstest.MapFile{Data: []byte("ignored")},
	}

	applied, err := Apply(ctx, db, fsys, "")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(applied) != 1 || applied[0] != "0001_items.sql" {
		t.Fatalf("applied = %v, want [0001_items.sql]", applied)
	}

	applied, err = Apply(ctx, db, fsys, "")
	if err != nil {
		t.Fatalf("re-apply: %v", err)
	}
	if len(applied) != 0 {
		t.Fatalf("re-apply applied %v, want nothing", applied)
	}
	if n := count(t, db, "SELECT COUNT(*) FROM schema_migrations"); n != 1 {
		t.Fatalf("schema_migrations rows = %d, want 1", n)
	}
	if n := count(t, db, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'items'"); n != 1 {
		t.Fatal("items table missing, or the Down section ran")
	}
}

func TestApplyDoesNotRecordFailure(t *testing.T) {
	db := openMemory(t)
	bad := fstest.MapFS{
		"0001_bad.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREAT TABLE things(id INT);")},
	}

	if _, err := Apply(context.Background(), db, bad, ""); err == nil {
		t.Fatal("expected bad migration to fail")
	}
	if n := count(t, db, "SELECT COUNT(*) FROM schema_migrations"); n != 0 {
		t.Fatalf("failed migration recorded %d rows", n)
	}
}

func TestUpSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{in: "SELECT 1;", want: "SELECT 1;"},
		{in: "-- +migrate Up\nSELECT 1;", want: "\nSELECT 1;"},
		{in: "-- +migrate Up\nSELECT 1;\n-- +migrate Down\nSELECT 2;", want: "\nSELECT 1;\n"},
	}
	for _, tt := range tests {
		if got := UpSection(tt.in); got != tt.want {
			t.Fatalf("UpSection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
