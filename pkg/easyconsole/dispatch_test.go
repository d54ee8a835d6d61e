package easyconsole

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

// concurrencyTracker records how many tasks ran at once.
type concurrencyTracker struct {
	current *atomic.Int32
	peak    *atomic.Int32
	mu      sync.Mutex
	order   []int
}

func newConcurrencyTracker() *concurrencyTracker {
	return &concurrencyTracker{current: atomic.NewInt32(0), peak: atomic.NewInt32(0)}
}

func (p *concurrencyTracker) task(id int, d time.Duration) Action {
	return func(context.Context) error {
		p.mu.Lock()
		p.order = append(p.order, id)
		p.mu.Unlock()

		n := p.current.Inc()
		for {
			peak := p.peak.Load()
			if n <= peak || p.peak.CompareAndSwap(peak, n) {
				break
			}
		}
		time.Sleep(d)
		p.current.Dec()
		return nil
	}
}

func TestDispatchRespectsConcurrencyLimit(t *testing.T) {
	tracker := newConcurrencyTracker()
	var tasks []Action
	for i := 0; i < 5; i++ {
		tasks = append(tasks, tracker.task(i, 20*time.Millisecond))
	}

	var reports int
	err := Dispatch(context.Background(), tasks, DispatchOptions{
		MaxConcurrentTasks: 2,
		OnProgress: func(running, queued int) {
			reports++
			assert.LessOrEqual(t, running, 2)
			assert.Equal(t, 5-(reports-1), running+queued)
		},
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, tracker.peak.Load(), int32(2))
	assert.Equal(t, int32(0), tracker.current.Load())
	assert.Len(t, tracker.order, 5)
	assert.Equal(t, 5, reports)
}

func TestDispatchStartsTasksInOrder(t *testing.T) {
	tracker := newConcurrencyTracker()
	var tasks []Action
	for i := 0; i < 4; i++ {
		tasks = append(tasks, tracker.task(i, time.Millisecond))
	}

	require.NoError(t, Dispatch(context.Background(), tasks, DispatchOptions{MaxConcurrentTasks: 1}))
	assert.Equal(t, []int{0, 1, 2, 3}, tracker.order)
}

func TestDispatchReturnsTaskError(t *testing.T) {
	boom := errors.New("boom")
	started := atomic.NewInt32(0)

	tasks := []Action{
		func(context.Context) error { started.Inc(); return boom },
		func(context.Context) error { started.Inc(); return nil },
		func(context.Context) error { started.Inc(); return nil },
	}

	err := Dispatch(context.Background(), tasks, DispatchOptions{MaxConcurrentTasks: 1})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), started.Load())
}

func TestDispatchRecoversPanics(t *testing.T) {
	tasks := []Action{func(context.Context) error { panic("kaboom") }}
	err := Dispatch(context.Background(), tasks, DefaultDispatchOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestDispatchInvalidConcurrency(t *testing.T) {
	ran := false
	tasks := []Action{func(context.Context) error { ran = true; return nil }}

	for _, max := range []int{0, -1} {
		err := Dispatch(context.Background(), tasks, DispatchOptions{MaxConcurrentTasks: max})
		require.ErrorIs(t, err, ErrInvalidConcurrency)
	}
	assert.False(t, ran)
}

func TestDispatchCancelledContext(t *testing.T) {
	ran := atomic.NewBool(false)
	tasks := []Action{func(context.Context) error { ran.Store(true); return nil }}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Dispatch(ctx, tasks, DefaultDispatchOptions())
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran.Load())
}

func TestDispatchReportsTaskErrorAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	boom := errors.New("boom")
	finished := atomic.NewBool(false)
	tasks := []Action{func(context.Context) error {
		cancel()
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
		return boom
	}}

	err := Dispatch(ctx, tasks, DispatchOptions{MaxConcurrentTasks: 1})
	require.ErrorIs(t, err, boom)
	assert.True(t, finished.Load())
}

func TestDispatchCancelStopsNextLaunch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	second := atomic.NewBool(false)
	tasks := []Action{
		func(context.Context) error { cancel(); return nil },
		func(context.Context) error { second.Store(true); return nil },
	}

	err := Dispatch(ctx, tasks, DispatchOptions{MaxConcurrentTasks: 1})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, second.Load())
}

func TestDispatchDelayHonoursContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	tasks := []Action{
		func(context.Context) error { return nil },
		func(context.Context) error { return nil },
	}
	start := time.Now()
	err := Dispatch(ctx, tasks, DispatchOptions{MaxConcurrentTasks: 2, DelayBeforeEachTask: time.Hour})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestDispatchReportsProgressFraction(t *testing.T) {
	progress := atomic.NewFloat64(0)
	tasks := []Action{
		func(context.Context) error { return nil },
		func(context.Context) error { return nil },
	}

	require.NoError(t, Dispatch(context.Background(), tasks, DispatchOptions{MaxConcurrentTasks: 1, Progress: progress}))
	assert.InDelta(t, 1.0, progress.Load(), 0.0001)
}

func TestMultiChoiceActionMenuDispatches(t *testing.T) {
	c, out := newTestConsole("1,2\n")
	tracker := newConcurrencyTracker()

	m := NewMultiChoiceActionMenu(c, MenuSettings{})
	m.MaxConcurrentTasks = 1
	m.Add("first", tracker.task(1, time.Millisecond)).Add("second", tracker.task(2, time.Millisecond))

	require.NoError(t, m.Display(context.Background()))
	assert.Equal(t, []int{1, 2}, tracker.order)
	assert.Contains(t, out.String(), "Waiting for 1 task to finish. 1 task queued but not started.\n")
	assert.Contains(t, out.String(), "Waiting for 1 task to finish. 0 tasks queued but not started.\n")
}

func TestMultiChoiceActionMenuInvalidConcurrency(t *testing.T) {
	c, out := newTestConsole("1\n")
	m := NewMultiChoiceActionMenu(c, MenuSettings{})
	m.Add("first", func(context.Context) error { return nil })
	m.MaxConcurrentTasks = 0

	require.ErrorIs(t, m.Display(context.Background()), ErrInvalidConcurrency)
	assert.Empty(t, out.String())
}
