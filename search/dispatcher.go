// Package search turns the raw stream of search box edits into committed
// queries.
//
// A Dispatcher is a trailing-edge debouncer: every Submit cancels the
// emission scheduled by the previous one, so only a query left untouched for
// a whole quiet period reaches the listener. At most one emission is pending
// at any time.
//
//	d := search.NewDispatcher(search.DefaultQuietPeriod)
//	d.OnCommit(func(q string) { render(projection.ApplyFilter(q)) })
//	defer d.Close()
//
//	d.Submit("e")
//	d.Submit("et")
//	d.Submit("eth") // only "eth" is committed, 700ms after this call
package search

import (
	"sync"
	"time"
)

const DefaultQuietPeriod = 700 * time.Millisecond

// DispatchState is a snapshot of what the dispatcher last received.
type DispatchState struct {
	LastQuery       string
	LastSubmittedAt time.Time
	Pending         bool
	Closed          bool
}

type Dispatcher struct {
	mu          sync.Mutex
	quietPeriod time.Duration
	scheduler   Scheduler
	now         func() time.Time
	listener    func(query string)

	timer Timer
	// seq identifies the latest scheduled emission. A timer whose seq is
	// stale was superseded and must not fire the listener.
	seq             uint64
	pending         bool
	lastQuery       string
	lastSubmittedAt time.Time
	closed          bool
}

type Option func(*Dispatcher)

func WithScheduler(s Scheduler) Option {
	return func(d *Dispatcher) {
		d.scheduler = s
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// NewDispatcher creates a dispatcher committing queries after quietPeriod
// without new submissions. A non positive quietPeriod means
// DefaultQuietPeriod.
func NewDispatcher(quietPeriod time.Duration, opts ...Option) *Dispatcher {
	if quietPeriod <= 0 {
		quietPeriod = DefaultQuietPeriod
	}
	d := &Dispatcher{
		quietPeriod: quietPeriod,
		scheduler:   wallClock{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) QuietPeriod() time.Duration {
	return d.quietPeriod
}

// OnCommit registers the consumer of committed queries, replacing any
// previous one. The listener may be called from a timer goroutine.
func (d *Dispatcher) OnCommit(listener func(query string)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listener = listener
}

// Submit records query and (re)schedules its emission. An empty query is a
// regular input meaning "no filter". Submit is a no-op after Close.
func (d *Dispatcher) Submit(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.stopLocked()

	d.seq++
	seq := d.seq
	d.pending = true
	d.lastQuery = query
	d.lastSubmittedAt = d.now()
	d.timer = d.scheduler.AfterFunc(d.quietPeriod, func() {
		d.fire(seq, query)
	})
}

func (d *Dispatcher) fire(seq uint64, query string) {
	d.mu.Lock()
	if d.closed || !d.pending || d.seq != seq {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	listener := d.listener
	d.mu.Unlock()

	if listener != nil {
		listener(query)
	}
}

// Flush commits the pending query right away instead of waiting for the
// quiet period. It returns false when nothing was pending.
func (d *Dispatcher) Flush() bool {
	d.mu.Lock()
	if d.closed || !d.pending {
		d.mu.Unlock()
		return false
	}
	d.stopLocked()
	d.seq++
	d.pending = false
	query := d.lastQuery
	listener := d.listener
	d.mu.Unlock()

	if listener != nil {
		listener(query)
	}
	return true
}

// Cancel drops the pending emission, if any, without calling the listener.
func (d *Dispatcher) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.seq++
	d.pending = false
}

// Close tears the dispatcher down. The pending emission is dropped and later
// submissions are ignored.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.seq++
	d.pending = false
	d.closed = true
}

func (d *Dispatcher) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Dispatcher) State() DispatchState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DispatchState{
		LastQuery:       d.lastQuery,
		LastSubmittedAt: d.lastSubmittedAt,
		Pending:         d.pending,
		Closed:          d.closed,
	}
}

// stopLocked must be called with mu held.
func (d *Dispatcher) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
