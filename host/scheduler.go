package host

import (
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oriumgames/npc"
)

// Scheduler ticks every live actor at a fixed rate.
// Actors are split into batches that run in parallel on a worker pool.
type Scheduler struct {
	manager *npc.Manager
	log     *slog.Logger

	// Worker pool
	workers    int
	workerPool chan func()
	workerWG   sync.WaitGroup

	// Execution state
	running atomic.Bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	// Tick tracking
	tickRate   time.Duration
	tickNumber atomic.Uint64
	panics     atomic.Uint64
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithTickRate sets the interval between two ticks. Default: 50ms (20 TPS).
func WithTickRate(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		if d > 0 {
			s.tickRate = d
		}
	}
}

// WithWorkers sets the size of the worker pool. Default: GOMAXPROCS.
func WithWorkers(n int) SchedulerOption {
	return func(s *Scheduler) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewScheduler creates a scheduler for the actors of m.
func NewScheduler(m *npc.Manager, log *slog.Logger, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		manager:  m,
		log:      log,
		workers:  max(runtime.GOMAXPROCS(0), 1),
		tickRate: 50 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.workerPool = make(chan func(), s.workers*4)
	return s
}

// Start begins the scheduler's tick loop.
func (s *Scheduler) Start() {
	if s.running.Swap(true) {
		return // Already running
	}

	for i := 0; i < s.workers; i++ {
		s.workerWG.Add(1)
		go s.worker()
	}
	go s.tickLoop()
}

// Stop gracefully shuts down the scheduler and waits for the running tick.
func (s *Scheduler) Stop() {
	if !s.running.Swap(false) {
		return // Not running
	}

	close(s.stopCh)
	<-s.doneCh

	close(s.workerPool)
	s.workerWG.Wait()
}

// TickNumber returns the number of completed ticks.
func (s *Scheduler) TickNumber() uint64 {
	return s.tickNumber.Load()
}

// Panics returns the number of actor ticks that panicked.
func (s *Scheduler) Panics() uint64 {
	return s.panics.Load()
}

// worker is a pool worker that executes jobs.
func (s *Scheduler) worker() {
	defer s.workerWG.Done()
	for fn := range s.workerPool {
		fn()
	}
}

// tickLoop is the main scheduler loop.
func (s *Scheduler) tickLoop() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.tickRate)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick runs one tick over all actors and waits for it to finish.
func (s *Scheduler) tick() {
	actors := s.manager.All()
	batches := batch(actors, s.workers)

	var wg sync.WaitGroup
	for _, b := range batches {
		wg.Add(1)
		s.workerPool <- func() {
			defer wg.Done()
			for _, a := range b {
				s.tickActor(a)
			}
		}
	}
	wg.Wait()
	s.tickNumber.Add(1)
}

// tickActor ticks a single actor. A panic is logged and does not affect the
// other actors.
func (s *Scheduler) tickActor(a *npc.Actor) {
	defer func() {
		if r := recover(); r != nil {
			s.handleActorPanic(a, r)
		}
	}()
	s.manager.Tick(a)
}

func (s *Scheduler) handleActorPanic(a *npc.Actor, recovered any) {
	s.panics.Add(1)
	err := fmt.Errorf("npc: panic in tick of actor %d: %v", a.ID(), recovered)
	s.log.Error(err.Error(), "actor", a.ID(), "species", a.Species().Key, "stack", string(debug.Stack()))
}

// batch splits actors into at most n contiguous batches of similar size.
func batch(actors []*npc.Actor, n int) [][]*npc.Actor {
	if len(actors) == 0 || n < 1 {
		return nil
	}
	n = min(n, len(actors))
	size := (len(actors) + n - 1) / n

	out := make([][]*npc.Actor, 0, n)
	for start := 0; start < len(actors); start += size {
		out = append(out, actors[start:min(start+size, len(actors))])
	}
	return out
}
