package maze

import (
	"context"
	"sync/atomic"
)

// Yields one snapshot per generation step, for renderers that want to show
// the maze growing. Use it like a bufio.Scanner:
//
//	a := g.Animate(ctx)
//	for a.Next() {
//		draw(a.Snapshot())
//		<-ticker.C
//	}
//	if e := a.Err(); e != nil { ... }
//
// The first call to Next yields the state before any step; the last yields
// the completed maze. An Animation can't be restarted. Call Reinitialize on
// the generator and create a new one instead.
type Animation struct {
	ctx      context.Context
	g        *Generator
	stopped  atomic.Bool
	started  bool
	finished bool
	current  Snapshot
	e        error
}

// Returns a lazy, finite sequence of snapshots that advances the generator
// by one step on each call to Next. Only Stop may be called from another
// goroutine; nothing else may touch the generator while the animation runs.
func (g *Generator) Animate(ctx context.Context) *Animation {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Animation{
		ctx: ctx,
		g:   g,
	}
}

// Advances to the next snapshot. Returns false once the maze is complete and
// its final snapshot has been yielded, after Stop, or if the context is
// canceled. Stop and cancellation are checked at the start of each call, so
// a step is never interrupted halfway.
func (a *Animation) Next() bool {
	if a.finished || a.stopped.Load() {
		a.finished = true
		return false
	}
	if e := a.ctx.Err(); e != nil {
		a.e = e
		a.finished = true
		return false
	}
	if !a.started {
		a.started = true
		a.current = a.g.Snapshot()
		return true
	}
	if a.g.State() == StateDone {
		a.finished = true
		return false
	}
	_, e := a.g.Step()
	if e != nil {
		a.e = e
		a.finished = true
		return false
	}
	a.current = a.g.Snapshot()
	return true
}

// Returns the snapshot produced by the most recent successful call to Next.
func (a *Animation) Snapshot() Snapshot {
	return a.current
}

// Returns the error that ended the animation early, if any. Stopping the
// animation with Stop isn't an error.
func (a *Animation) Err() error {
	return a.e
}

// Requests that the animation end. Safe to call from any goroutine, and more
// than once. The generator is left in the state produced by the last step.
func (a *Animation) Stop() {
	a.stopped.Store(true)
}
