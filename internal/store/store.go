// Package store provides the note storage interface and SQLite implementation.
package store

import (
	"context"

	"github.com/aiptu/mynotes/internal/model"
)

// Store defines the note storage contract. All operations are keyed by the
// owner identifier; owners match case-insensitively.
type Store interface {
	// List returns the owner's notes, pinned first, then unpinned, in
	// insertion order within each group.
	List(ctx context.Context, owner string) ([]model.Note, error)

	// Get retrieves a note by exact title. Returns (nil, nil) when absent.
	Get(ctx context.Context, owner, title string) (*model.Note, error)

	// Put inserts or fully replaces the note keyed by (owner, note.Title).
	Put(ctx context.Context, owner string, note model.Note) error

	// Delete removes a note. No-op when the note is absent.
	Delete(ctx context.Context, owner, title string) error

	// Exists reports whether the owner has a note with the given title.
	Exists(ctx context.Context, owner, title string) (bool, error)

	// Rename replaces the note stored under oldTitle with updated, keyed by
	// updated.Title, as one transaction: the old title disappears and the
	// new title appears atomically.
	Rename(ctx context.Context, owner, oldTitle string, updated model.Note) error

	// Close closes the store.
	Close() error
}
