package npc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// persistOp is a queued store write. Exactly one field is set.
type persistOp struct {
	save  *StoredActor
	del   uuid.UUID
	flush chan struct{}
}

// persister applies store writes in order on a background goroutine so that
// world transactions never wait on disk.
type persister struct {
	store   Store
	log     *slog.Logger
	timeout time.Duration

	ops  chan persistOp
	done chan struct{}

	mu     sync.RWMutex
	closed bool
}

func newPersister(store Store, log *slog.Logger, timeout time.Duration) *persister {
	p := &persister{
		store:   store,
		log:     log,
		timeout: timeout,
		ops:     make(chan persistOp, 256),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *persister) run() {
	defer close(p.done)
	for op := range p.ops {
		switch {
		case op.flush != nil:
			close(op.flush)
		case op.save != nil:
			p.apply("save", op.save.UUID, func(ctx context.Context) error {
				return p.store.SaveActor(ctx, *op.save)
			})
		default:
			p.apply("delete", op.del, func(ctx context.Context) error {
				return p.store.DeleteActor(ctx, op.del)
			})
		}
	}
}

func (p *persister) apply(what string, id uuid.UUID, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		p.log.Error("npc: store write failed", "op", what, "actor", id, "error", err)
	}
}

// enqueue reports false once the persister is closed.
func (p *persister) enqueue(op persistOp) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	p.ops <- op
	return true
}

func (p *persister) save(rec StoredActor) {
	if !p.enqueue(persistOp{save: &rec}) {
		p.log.Warn("npc: dropped store write after close", "actor", rec.UUID)
	}
}

func (p *persister) delete(id uuid.UUID) {
	if !p.enqueue(persistOp{del: id}) {
		p.log.Warn("npc: dropped store delete after close", "actor", id)
	}
}

// flush waits until every write queued before it has been applied.
func (p *persister) flush() {
	ch := make(chan struct{})
	if p.enqueue(persistOp{flush: ch}) {
		<-ch
	}
}

func (p *persister) close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.ops)
	}
	p.mu.Unlock()
	<-p.done
}

// record builds the store row of a.
func (m *Manager) record(a *Actor) (StoredActor, error) {
	b, err := EncodePayload(a.Payload())
	if err != nil {
		return StoredActor{}, fmt.Errorf("actor %d: %w", a.id, err)
	}
	return StoredActor{
		UUID:      a.uuid,
		Owner:     a.owner,
		Species:   a.species.Key,
		Payload:   b,
		UpdatedAt: m.now(),
	}, nil
}

// persist queues a write of a if a store is configured.
func (m *Manager) persist(a *Actor) {
	if m.persister == nil || a.Destroyed() {
		return
	}
	rec, err := m.record(a)
	if err != nil {
		m.log.Error("npc: failed to encode actor", "actor", a.id, "error", err)
		return
	}
	m.persister.save(rec)
}

// Flush waits for queued store writes to be applied.
func (m *Manager) Flush() {
	if m.persister != nil {
		m.persister.flush()
	}
}

// Save writes every live actor to the store synchronously.
func (m *Manager) Save(ctx context.Context) error {
	if m.persister == nil {
		return nil
	}
	m.persister.flush()

	var errs []error
	for _, a := range m.All() {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := m.record(a)
		if err == nil {
			err = m.persister.store.SaveActor(ctx, rec)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("save actor %d: %w", a.id, err))
		}
	}
	return errors.Join(errs...)
}

// Restore spawns every stored actor that is not already live. Rows that fail
// to decode or construct are logged and skipped; their errors are joined in
// the returned error.
func (m *Manager) Restore(ctx context.Context) (int, error) {
	if m.persister == nil {
		return 0, nil
	}
	rows, err := m.persister.store.ListActors(ctx)
	if err != nil {
		return 0, fmt.Errorf("restore: %w", err)
	}

	var (
		restored int
		errs     []error
	)
	for _, row := range rows {
		if _, ok := m.FindByUUID(row.UUID); ok {
			continue
		}
		if err := m.restore(row); err != nil {
			m.log.Warn("npc: failed to restore actor", "uuid", row.UUID, "species", row.Species, "error", err)
			errs = append(errs, fmt.Errorf("restore %s: %w", row.UUID, err))
			continue
		}
		restored++
	}
	m.log.Info("npc: restored actors", "count", restored, "failed", len(errs))
	return restored, errors.Join(errs...)
}

func (m *Manager) restore(row StoredActor) error {
	p, err := DecodePayload(row.Payload)
	if err != nil {
		return err
	}
	cfg, err := p.SpawnConfig()
	if err != nil {
		return err
	}
	species := p.Species
	if species == "" {
		species = row.Species
	}
	sp, err := m.catalog.Lookup(species)
	if err != nil {
		return err
	}
	_, err = m.spawn(sp, row.Owner, row.UUID, cfg)
	return err
}
