// Package sqlite provides a SQLite-backed actor store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oriumgames/npc"
	"github.com/oriumgames/npc/internal/sqlitemigrate"
	"github.com/oriumgames/npc/store/sqlite/migrations"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	_ "modernc.org/sqlite"
)

// Store persists actor payloads in SQLite. It implements npc.Store.
type Store struct {
	sqlDB  *sql.DB
	tracer trace.Tracer
}

var _ npc.Store = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite actor store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{
		sqlDB:  sqlDB,
		tracer: otel.Tracer("github.com/oriumgames/npc/store/sqlite"),
	}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// start opens a span for a store operation.
func (s *Store) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "npc.store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(append(attrs, attribute.String("db.system", "sqlite"))...),
	)
}

// end records err on span and ends it.
func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// SaveActor inserts or replaces one actor row.
func (s *Store) SaveActor(ctx context.Context, rec npc.StoredActor) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if rec.UUID == uuid.Nil {
		return fmt.Errorf("actor uuid is required")
	}
	species := strings.TrimSpace(rec.Species)
	if species == "" {
		return fmt.Errorf("actor species is required")
	}
	if len(rec.Payload) == 0 {
		return fmt.Errorf("actor payload is required")
	}
	updatedAt := rec.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	ctx, span := s.start(ctx, "save_actor", attribute.String("npc.actor", rec.UUID.String()))
	defer func() { end(span, err) }()

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO actors (uuid, owner, species, payload, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(uuid) DO UPDATE SET
		   owner = excluded.owner,
		   species = excluded.species,
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		rec.UUID.String(),
		rec.Owner.String(),
		species,
		rec.Payload,
		toMillis(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("save actor %s: %w", rec.UUID, err)
	}
	return nil
}

// DeleteActor removes one actor row. Deleting a missing row is not an error.
func (s *Store) DeleteActor(ctx context.Context, id uuid.UUID) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	ctx, span := s.start(ctx, "delete_actor", attribute.String("npc.actor", id.String()))
	defer func() { end(span, err) }()

	if _, err = s.sqlDB.ExecContext(ctx, `DELETE FROM actors WHERE uuid = ?`, id.String()); err != nil {
		return fmt.Errorf("delete actor %s: %w", id, err)
	}
	return nil
}

// ListActors returns every actor row, oldest first.
func (s *Store) ListActors(ctx context.Context) (rows []npc.StoredActor, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	ctx, span := s.start(ctx, "list_actors")
	defer func() {
		span.SetAttributes(attribute.Int("npc.actors", len(rows)))
		end(span, err)
	}()

	return s.query(ctx,
		`SELECT uuid, owner, species, payload, updated_at FROM actors ORDER BY updated_at, uuid`)
}

// ListActorsByOwner returns the actor rows created by owner, oldest first.
func (s *Store) ListActorsByOwner(ctx context.Context, owner uuid.UUID) (rows []npc.StoredActor, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	ctx, span := s.start(ctx, "list_actors_by_owner", attribute.String("npc.owner", owner.String()))
	defer func() {
		span.SetAttributes(attribute.Int("npc.actors", len(rows)))
		end(span, err)
	}()

	return s.query(ctx,
		`SELECT uuid, owner, species, payload, updated_at FROM actors WHERE owner = ? ORDER BY updated_at, uuid`,
		owner.String())
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]npc.StoredActor, error) {
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list actors: %w", err)
	}
	defer rows.Close()

	var out []npc.StoredActor
	for rows.Next() {
		rec, err := scanActor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate actors: %w", err)
	}
	return out, nil
}

func scanActor(rows *sql.Rows) (npc.StoredActor, error) {
	var (
		id, owner, species string
		payload            []byte
		updatedAt          int64
	)
	if err := rows.Scan(&id, &owner, &species, &payload, &updatedAt); err != nil {
		return npc.StoredActor{}, fmt.Errorf("scan actor: %w", err)
	}
	actorID, err := uuid.Parse(id)
	if err != nil {
		return npc.StoredActor{}, fmt.Errorf("parse actor uuid %q: %w", id, err)
	}
	ownerID, err := uuid.Parse(owner)
	if err != nil {
		return npc.StoredActor{}, fmt.Errorf("parse owner %q of actor %s: %w", owner, id, err)
	}
	return npc.StoredActor{
		UUID:      actorID,
		Owner:     ownerID,
		Species:   species,
		Payload:   payload,
		UpdatedAt: fromMillis(updatedAt),
	}, nil
}
