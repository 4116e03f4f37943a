// Package notify delivers order emails off the request path. The dispatcher
// is a single background worker fed by a buffered channel; callers hand it a
// job and move on, and failures end up in the log rather than in a response.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name string
	run  func(context.Context) error
}

type Dispatcher struct {
	jobs    chan job
	timeout time.Duration
	log     *slog.Logger

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewDispatcher starts the worker. timeout bounds each job; buffer is the
// queue depth before Enqueue starts shedding.
func NewDispatcher(buffer int, timeout time.Duration, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	d := &Dispatcher{
		jobs:    make(chan job, buffer),
		timeout: timeout,
		log:     log,
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

// Enqueue hands a job to the worker without blocking. A full queue drops the
// job; that is logged and reported, never surfaced to the request.
func (d *Dispatcher) Enqueue(name string, fn func(context.Context) error) bool {
	select {
	case d.jobs <- job{name: name, run: fn}:
		return true
	default:
		d.log.Warn("notification queue full, dropping job", "job", name)
		return false
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for j := range d.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := j.run(ctx); err != nil {
			d.log.Error("notification job failed", "job", j.name, "error", err)
		}
		cancel()
	}
}

// Close stops accepting jobs and waits for queued ones to drain.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() { close(d.jobs) })
	d.wg.Wait()
}
