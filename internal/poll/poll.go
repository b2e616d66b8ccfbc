// Package poll runs a refresh task at a fixed interval and guards the
// application of its results: a run that resolves after a newer run has
// started is stale and must be dropped, and nothing is applied once the
// scheduler is cancelled.
package poll

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Task is one refresh pass. It receives the generation of its run and must
// hand any state mutation to Handle.Apply with that generation; mutations
// applied any other way lose the staleness guarantee.
type Task func(ctx context.Context, gen uint64)

type Handle struct {
	interval time.Duration
	task     Task

	ctx    context.Context
	cancel context.CancelFunc

	gen       atomic.Uint64
	cancelled atomic.Bool
	// mu serializes Apply against Cancel so that once Cancel returns, no
	// in-flight run can mutate state anymore.
	mu sync.Mutex
}

// New builds a scheduler for task. Nothing runs until Run is called, so the
// task closure may safely reference the returned handle.
func New(interval time.Duration, task Task) *Handle {
	return &Handle{
		interval: interval,
		task:     task,
	}
}

// Run invokes the task once immediately and then on every tick until the
// handle or the parent context is cancelled. Each run gets a fresh
// generation; runs are launched on their own goroutine so a slow pass
// never delays the ticker. Run must be called at most once.
func (h *Handle) Run(ctx context.Context) {
	h.ctx, h.cancel = context.WithCancel(ctx)
	go h.loop()
}

func (h *Handle) loop() {
	h.launch()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return
		case <-ticker.C:
			h.launch()
		}
	}
}

func (h *Handle) launch() {
	if h.cancelled.Load() {
		return
	}
	gen := h.gen.Add(1)
	go h.task(h.ctx, gen)
}

// Apply runs fn if and only if gen is still the newest generation and the
// handle has not been cancelled. Reports whether fn ran.
func (h *Handle) Apply(gen uint64, fn func()) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cancelled.Load() || gen != h.gen.Load() {
		return false
	}
	fn()
	return true
}

// Current reports whether results of the given generation may still be
// applied.
func (h *Handle) Current(gen uint64) bool {
	return !h.cancelled.Load() && gen == h.gen.Load()
}

// Cancel stops the scheduler. It is synchronous: when it returns, no new
// run will start and no in-flight run will get past Apply.
func (h *Handle) Cancel() {
	h.mu.Lock()
	h.cancelled.Store(true)
	h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
	}
}
