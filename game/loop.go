package game

import (
	"context"
	"errors"
	"time"
)

const DefaultTickInterval = 100 * time.Millisecond

var ErrLoopStopped = errors.New("game loop stopped")

type request struct {
	fn   func(*Engine)
	done chan struct{}
}

// Loop owns an engine and runs every access to it on one goroutine, so
// intents, timer ticks and renderer reads never interleave. A flood open
// started by one request finishes before the next request runs.
type Loop struct {
	engine   *Engine
	interval time.Duration

	requests chan request
	stopped  chan struct{}
}

func NewLoop(engine *Engine, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	return &Loop{
		engine:   engine,
		interval: interval,
		requests: make(chan request),
		stopped:  make(chan struct{}),
	}
}

// Run processes requests and ticks the engine until ctx is done. It must
// be called exactly once.
func (loop *Loop) Run(ctx context.Context) error {
	defer close(loop.stopped)

	ticker := time.NewTicker(loop.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			loop.engine.Tick()
		case req := <-loop.requests:
			req.fn(loop.engine)
			close(req.done)
		}
	}
}

// Do runs fn on the loop goroutine and waits for it to return
func (loop *Loop) Do(ctx context.Context, fn func(*Engine)) error {
	req := request{
		fn:   fn,
		done: make(chan struct{}),
	}

	select {
	case loop.requests <- req:
	case <-loop.stopped:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	// Once accepted, the request runs to completion before Run can return
	<-req.done
	return nil
}

// View returns a copy of the engine state taken on the loop goroutine
func (loop *Loop) View(ctx context.Context) (View, error) {
	var view View
	err := loop.Do(ctx, func(engine *Engine) {
		view = engine.View()
	})
	return view, err
}
