package sched

import (
	"container/heap"
	"context"
	"sort"
	"sync"
	"time"

	"weather-collector/pkg/log"
	"weather-collector/pkg/util/numberutils"
)

// JobFunc is the unit of scheduled work. A returned error is logged and the
// job is rescheduled for its next slot; it never stops the loop.
type JobFunc func() error

// entry is a single scheduled firing of a job.
type entry struct {
	nextFire time.Time
	seq      int // registration order, tie-breaker within a tick
	job      *job
}

type job struct {
	name    string
	minutes []int
	fn      JobFunc
}

// jobHeap orders entries by next fire time, then registration order.
type jobHeap []*entry

func (h jobHeap) Len() int { return len(h) }
func (h jobHeap) Less(i, j int) bool {
	if h[i].nextFire.Equal(h[j].nextFire) {
		return h[i].seq < h[j].seq
	}
	return h[i].nextFire.Before(h[j].nextFire)
}
func (h jobHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *jobHeap) Push(x any) { *h = append(*h, x.(*entry)) }
func (h *jobHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// TickScheduler fires jobs at fixed minute-of-hour offsets. It keeps a
// min-heap of (next fire time, job) entries and polls it once per second;
// due jobs run synchronously in registration order and are pushed back one
// slot further.
type TickScheduler struct {
	mu      sync.Mutex
	heap    jobHeap
	nextSeq int
	tick    time.Duration
	now     func() time.Time
}

// Option configures a TickScheduler.
type Option func(*TickScheduler)

// WithTick overrides the poll interval. Used by tests; the default is one second.
func WithTick(d time.Duration) Option {
	return func(s *TickScheduler) { s.tick = d }
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *TickScheduler) { s.now = now }
}

// NewTickScheduler creates an empty scheduler.
func NewTickScheduler(opts ...Option) *TickScheduler {
	s := &TickScheduler{
		tick: time.Second,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddHourlyJob registers fn to run at the given minute offsets of every hour.
// Offsets outside [0, 59] are ignored.
func (s *TickScheduler) AddHourlyJob(name string, minutes []int, fn JobFunc) {
	valid := make([]int, 0, len(minutes))
	for _, m := range minutes {
		if numberutils.IsIntInRange(m, 0, 59) {
			valid = append(valid, m)
		}
	}
	if len(valid) == 0 {
		log.Warnf("Job '%s' has no valid minute offsets, not scheduling", name)
		return
	}
	sort.Ints(valid)

	s.mu.Lock()
	defer s.mu.Unlock()

	j := &job{name: name, minutes: valid, fn: fn}
	heap.Push(&s.heap, &entry{
		nextFire: nextSlot(s.now(), valid),
		seq:      s.nextSeq,
		job:      j,
	})
	s.nextSeq++
}

// Start runs the polling loop until ctx is canceled. Each tick it pops and
// runs every entry whose fire time has elapsed, then reschedules it.
func (s *TickScheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	log.Infof("Tick scheduler started with %d job(s)", s.jobCount())

	for {
		select {
		case <-ctx.Done():
			log.Info("Tick scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runPending()
		}
	}
}

// RunPending runs every due job once. Exposed for the Start loop and tests.
func (s *TickScheduler) RunPending() {
	s.runPending()
}

func (s *TickScheduler) runPending() {
	now := s.now()

	for {
		s.mu.Lock()
		if len(s.heap) == 0 || s.heap[0].nextFire.After(now) {
			s.mu.Unlock()
			return
		}
		e := heap.Pop(&s.heap).(*entry)
		s.mu.Unlock()

		s.runJob(e.job)

		s.mu.Lock()
		e.nextFire = nextSlot(now, e.job.minutes)
		heap.Push(&s.heap, e)
		s.mu.Unlock()
	}
}

// runJob executes one job inside the per-job error boundary.
func (s *TickScheduler) runJob(j *job) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Job '%s' panicked: %v", j.name, r)
		}
	}()

	if err := j.fn(); err != nil {
		log.Errorf("Job '%s' failed: %v", j.name, err)
	}
}

func (s *TickScheduler) jobCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.heap)
}

// nextSlot returns the earliest time strictly after now whose minute is one
// of the given offsets, at second zero.
func nextSlot(now time.Time, minutes []int) time.Time {
	base := now.Truncate(time.Minute)
	for _, m := range minutes {
		candidate := base.Add(time.Duration(m-base.Minute()) * time.Minute)
		if candidate.After(now) {
			return candidate
		}
	}
	// All offsets for this hour have passed, roll over to the first offset
	// of the next hour.
	nextHour := base.Add(time.Hour).Truncate(time.Hour)
	return nextHour.Add(time.Duration(minutes[0]) * time.Minute)
}
