// Package repository implements the domain repositories over the
// collection store. Each repository loads its whole document, mutates
// the decoded slice in memory, and writes the document back — the same
// load/rewrite cycle the desktop build runs after every state change.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
)

// collection binds one document key to its element type. The mutex
// serializes the read-modify-write cycle; the store itself has no
// transactions, so two concurrent mutators would otherwise clobber
// each other's writes.
type collection[T any] struct {
	store storage.Store
	key   string
	mu    sync.Mutex
}

func newCollection[T any](store storage.Store, key string) *collection[T] {
	return &collection[T]{store: store, key: key}
}

// load decodes the whole document. A never-written document decodes to
// an empty slice.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	doc, found, err := c.store.Read(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(doc, &items); err != nil {
		return nil, fmt.Errorf("corrupt document %s: %w", c.key, err)
	}
	return items, nil
}

// save writes the whole document back.
func (c *collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	doc, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	return c.store.Write(ctx, c.key, doc)
}

// mutate runs fn on the decoded slice under the writer lock and
// persists whatever it returns.
func (c *collection[T]) mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(items)
	if err != nil {
		return err
	}
	return c.save(ctx, updated)
}
