package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	queries []string
}

func (r *recorder) listen(q string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, q)
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.queries...)
}

func newTestDispatcher() (*Dispatcher, *ManualScheduler, *recorder) {
	s := NewManualScheduler(time.Unix(1700000000, 0))
	d := NewDispatcher(DefaultQuietPeriod, WithScheduler(s), WithClock(s.Now))
	r := &recorder{}
	d.OnCommit(r.listen)
	return d, s, r
}

func TestBurstCommitsOnlyLastQuery(t *testing.T) {
	d, s, r := newTestDispatcher()

	d.Submit("e")
	s.Advance(300 * time.Millisecond)
	d.Submit("et")
	s.Advance(699 * time.Millisecond)
	d.Submit("eth")
	assert.Equal(t, 1, s.Pending())

	s.Advance(699 * time.Millisecond)
	assert.Empty(t, r.got())

	s.Advance(time.Millisecond)
	assert.Equal(t, []string{"eth"}, r.got())

	s.Advance(10 * time.Second)
	assert.Equal(t, []string{"eth"}, r.got(), "committed exactly once")
}

func TestSpacedSubmissionsCommitEach(t *testing.T) {
	d, s, r := newTestDispatcher()

	d.Submit("a")
	s.Advance(DefaultQuietPeriod)
	d.Submit("b")
	s.Advance(DefaultQuietPeriod)

	assert.Equal(t, []string{"a", "b"}, r.got())
}

func TestEmptyQueryIsDebouncedLikeAnyOther(t *testing.T) {
	d, s, r := newTestDispatcher()

	d.Submit("dai")
	d.Submit("")
	s.Advance(DefaultQuietPeriod - time.Millisecond)
	assert.Empty(t, r.got())
	assert.True(t, d.Pending())

	s.Advance(time.Millisecond)
	assert.Equal(t, []string{""}, r.got())
	assert.False(t, d.Pending())
}

func TestCloseDropsPendingAndIgnoresLaterSubmits(t *testing.T) {
	d, s, r := newTestDispatcher()

	d.Submit("eth")
	d.Close()
	s.Advance(time.Hour)

	d.Submit("dai")
	s.Advance(time.Hour)

	assert.Empty(t, r.got())
	assert.Equal(t, 0, s.Pending())
	assert.True(t, d.State().Closed)
}

func TestCancelDropsPendingOnly(t *testing.T) {
	d, s, r := newTestDispatcher()

	d.Submit("eth")
	d.Cancel()
	s.Advance(time.Second)
	assert.Empty(t, r.got())

	d.Submit("dai")
	s.Advance(time.Second)
	assert.Equal(t, []string{"dai"}, r.got())
}

func TestFlushCommitsImmediately(t *testing.T) {
	d, s, r := newTestDispatcher()

	assert.False(t, d.Flush())

	d.Submit("usd")
	require.True(t, d.Flush())
	assert.Equal(t, []string{"usd"}, r.got())

	s.Advance(time.Second)
	assert.Equal(t, []string{"usd"}, r.got(), "flushed timer must not fire again")
}

func TestStateTracksLastSubmission(t *testing.T) {
	d, s, _ := newTestDispatcher()
	start := s.Now()

	s.Advance(time.Second)
	d.Submit("knc")

	st := d.State()
	assert.Equal(t, "knc", st.LastQuery)
	assert.Equal(t, start.Add(time.Second), st.LastSubmittedAt)
	assert.True(t, st.Pending)
}

func TestListenerCanBeReplaced(t *testing.T) {
	d, s, first := newTestDispatcher()
	second := &recorder{}

	d.Submit("a")
	d.OnCommit(second.listen)
	s.Advance(DefaultQuietPeriod)

	assert.Empty(t, first.got())
	assert.Equal(t, []string{"a"}, second.got())
}

func TestNoListenerIsFine(t *testing.T) {
	s := NewManualScheduler(time.Now())
	d := NewDispatcher(0, WithScheduler(s))
	assert.Equal(t, DefaultQuietPeriod, d.QuietPeriod())

	d.Submit("x")
	s.Advance(DefaultQuietPeriod)
	assert.False(t, d.Pending())
}

func TestWallClockDispatcher(t *testing.T) {
	d := NewDispatcher(30 * time.Millisecond)
	defer d.Close()

	committed := make(chan string, 4)
	d.OnCommit(func(q string) { committed <- q })

	for _, q := range []string{"l", "li", "lin", "link"} {
		d.Submit(q)
	}

	select {
	case q := <-committed:
		assert.Equal(t, "link", q)
	case <-time.After(2 * time.Second):
		t.Fatal("query was never committed")
	}

	select {
	case q := <-committed:
		t.Fatalf("unexpected second commit %q", q)
	case <-time.After(100 * time.Millisecond):
	}
}
