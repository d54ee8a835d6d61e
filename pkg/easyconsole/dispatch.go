package easyconsole

import (
	"context"
	"fmt"
	"time"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/constants"
	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/internal"
	"go.uber.org/atomic"
)

type DispatchOptions struct {
	MaxConcurrentTasks  int
	DelayBeforeEachTask time.Duration
	OnProgress          func(running, queued int) // Called before each wait for a running task
	Progress            *atomic.Float64           // Optional, set to the finished fraction of tasks
}

func DefaultDispatchOptions() DispatchOptions {
	return DispatchOptions{
		MaxConcurrentTasks:  constants.DefaultMaxConcurrentTasks,
		DelayBeforeEachTask: constants.DefaultTaskStartDelay,
	}
}

type dispatchJob struct {
	index  int
	action Action
}

type dispatchResult struct {
	index int
	err   error
}

type dispatcher struct {
	options  DispatchOptions
	queue    []dispatchJob
	running  map[int]struct{}
	done     chan dispatchResult
	total    int
	inFlight *atomic.Int32
	started  *atomic.Int32
	finished *atomic.Int32
}

func newDispatcher(tasks []Action, options DispatchOptions) *dispatcher {
	queue := make([]dispatchJob, len(tasks))
	for i, task := range tasks {
		queue[i] = dispatchJob{index: i, action: task}
	}

	return &dispatcher{
		options:  options,
		queue:    queue,
		running:  make(map[int]struct{}),
		done:     make(chan dispatchResult, len(tasks)),
		total:    len(tasks),
		inFlight: atomic.NewInt32(0),
		started:  atomic.NewInt32(0),
		finished: atomic.NewInt32(0),
	}
}

// Dispatch runs tasks with at most MaxConcurrentTasks in flight, starting them
// in order. The first task error observed is returned; tasks that already
// started are left to finish on their own. Cancellation of ctx is checked
// before each launch and during the delay between launches, never while
// waiting for a running task.
func Dispatch(ctx context.Context, tasks []Action, options DispatchOptions) error {
	if options.MaxConcurrentTasks < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidConcurrency, options.MaxConcurrentTasks)
	}
	if len(tasks) == 0 {
		return nil
	}

	d := newDispatcher(tasks, options)
	err := d.run(ctx)

	internal.GetInternalLogger().Debug("Dispatch finished",
		"tasks", d.total,
		"started", d.started.Load(),
		"finished", d.finished.Load(),
		"still_running", d.inFlight.Load(),
		"error", err)
	return err
}

func (d *dispatcher) run(ctx context.Context) error {
	if err := d.fill(ctx); err != nil {
		return err
	}

	for len(d.running) > 0 {
		if d.options.OnProgress != nil {
			d.options.OnProgress(len(d.running), len(d.queue))
		}

		result := <-d.done
		delete(d.running, result.index)
		if result.err != nil {
			return fmt.Errorf("task %d: %w", result.index+1, result.err)
		}

		if err := d.fill(ctx); err != nil {
			return err
		}
	}
	return nil
}

// fill starts queued jobs until the concurrency cap is reached.
func (d *dispatcher) fill(ctx context.Context) error {
	for len(d.queue) > 0 && len(d.running) < d.options.MaxConcurrentTasks {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dispatch interrupted: %w", err)
		}

		job := d.queue[0]
		d.queue = d.queue[1:]
		d.launch(ctx, job)

		if err := d.pause(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (d *dispatcher) launch(ctx context.Context, job dispatchJob) {
	d.running[job.index] = struct{}{}
	d.started.Inc()
	d.inFlight.Inc()

	go func() {
		var err error
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
			d.inFlight.Dec()
			finished := d.finished.Inc()
			if d.options.Progress != nil {
				d.options.Progress.Store(float64(finished) / float64(d.total))
			}
			d.done <- dispatchResult{index: job.index, err: err}
		}()

		if job.action == nil {
			err = ErrNilOptionValue
			return
		}
		err = job.action(ctx)
	}()
}

func (d *dispatcher) pause(ctx context.Context) error {
	if d.options.DelayBeforeEachTask <= 0 {
		return nil
	}

	timer := time.NewTimer(d.options.DelayBeforeEachTask)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("dispatch interrupted: %w", ctx.Err())
	}
}
