package store

import (
	"context"
	"time"
)

// QueryOpts configures list queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// Entry is a stored free-text record.
type Entry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// EntryRepo stores and lists free-text entries.
type EntryRepo interface {
	// Create stores a new entry and returns it with its ID and timestamp.
	Create(ctx context.Context, text string) (*Entry, error)

	// List returns entries ordered by creation time, newest first.
	List(ctx context.Context, opts QueryOpts) ([]Entry, error)
}
