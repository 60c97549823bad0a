package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	entsql "entgo.io/ent/dialect/sql"
)

// MaxEntryLength is the maximum entry length in characters.
const MaxEntryLength = 4096

var (
	// ErrEmptyText is returned when an entry has no text after trimming.
	ErrEmptyText = errors.New("entry text is empty")

	// ErrTextTooLong is returned when an entry exceeds MaxEntryLength.
	ErrTextTooLong = errors.New("entry text is too long")
)

// entryRepo implements EntryRepo with ent's dialect-aware SQL builder.
type entryRepo struct {
	db      *sql.DB
	dialect string
	now     func() time.Time
	newID   func() string
}

func (r *entryRepo) Create(ctx context.Context, text string) (*Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxEntryLength {
		return nil, ErrTextTooLong
	}

	e := &Entry{
		ID:        r.newID(),
		Text:      text,
		CreatedAt: r.now().UTC(),
	}

	query, args := entsql.Dialect(r.dialect).
		Insert(entriesTable.Name).
		Columns("id", "text", "created_at").
		Values(e.ID, e.Text, e.CreatedAt).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}
	return e, nil
}

func (r *entryRepo) List(ctx context.Context, opts QueryOpts) ([]Entry, error) {
	b := entsql.Dialect(r.dialect)
	// Ids are time-ordered, so they settle equal timestamps newest first.
	sel := b.Select("id", "text", "created_at").
		From(b.Table(entriesTable.Name)).
		OrderBy(entsql.Desc("created_at"), entsql.Desc("id"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Text, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}
