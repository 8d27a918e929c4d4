package store

import (
	"context"

	"github.com/aiptu/mynotes/internal/model"
)

// Async runs store operations on a single worker goroutine in submission
// order and completes each through a callback. It mirrors a query-queue
// connector: a caller that waits for its callback before presenting the next
// screen gets the same sequencing guarantees as the blocking store.
type Async struct {
	store Store
	jobs  chan func()
	done  chan struct{}
}

// NewAsync wraps a blocking store with a callback-driven adapter.
func NewAsync(s Store) *Async {
	a := &Async{
		store: s,
		jobs:  make(chan func(), 64),
		done:  make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *Async) run() {
	for job := range a.jobs {
		job()
	}
	close(a.done)
}

// List delivers the owner's notes to cb on the worker goroutine.
func (a *Async) List(ctx context.Context, owner string, cb func([]model.Note, error)) {
	a.jobs <- func() { cb(a.store.List(ctx, owner)) }
}

// Get delivers the note (nil when absent) to cb on the worker goroutine.
func (a *Async) Get(ctx context.Context, owner, title string, cb func(*model.Note, error)) {
	a.jobs <- func() { cb(a.store.Get(ctx, owner, title)) }
}

// Put upserts the note and reports completion to cb.
func (a *Async) Put(ctx context.Context, owner string, note model.Note, cb func(error)) {
	a.jobs <- func() { cb(a.store.Put(ctx, owner, note)) }
}

// Delete removes the note and reports completion to cb.
func (a *Async) Delete(ctx context.Context, owner, title string, cb func(error)) {
	a.jobs <- func() { cb(a.store.Delete(ctx, owner, title)) }
}

// Rename replaces oldTitle with updated and reports completion to cb.
func (a *Async) Rename(ctx context.Context, owner, oldTitle string, updated model.Note, cb func(error)) {
	a.jobs <- func() { cb(a.store.Rename(ctx, owner, oldTitle, updated)) }
}

// Close drains queued operations, stops the worker and closes the
// underlying store.
func (a *Async) Close() error {
	close(a.jobs)
	<-a.done
	return a.store.Close()
}
