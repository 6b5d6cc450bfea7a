// Package catalog holds the in-memory list of word entries and answers tag queries over it.
//
// A Catalog is owned by a single goroutine; it does no locking.
package catalog

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrOutOfRange = errors.New("position out of range")
	ErrNotFound   = errors.New("entry not found")
)

// Catalog is an ordered sequence of entries. Insertion order is display order.
type Catalog struct {
	entries []Entry
}

func New(entries ...Entry) *Catalog {
	c := &Catalog{}
	for _, e := range entries {
		c.Add(e)
	}
	return c
}

// Add appends the entry to the end of the catalog.
func (c *Catalog) Add(entry Entry) {
	c.entries = append(c.entries, entry)
}

// Remove deletes the entry at position. The remaining entries keep their order.
func (c *Catalog) Remove(position int) error {
	if err := c.checkPosition(position); err != nil {
		return err
	}
	c.entries = slices.Delete(c.entries, position, position+1)
	return nil
}

// RemoveAt deletes every entry at the given positions, as a multi-row delete
// would. Nothing is removed unless every position is valid.
func (c *Catalog) RemoveAt(positions ...int) error {
	drop := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		if err := c.checkPosition(p); err != nil {
			return err
		}
		drop[p] = struct{}{}
	}

	kept := make([]Entry, 0, len(c.entries)-len(drop))
	for i, e := range c.entries {
		if _, ok := drop[i]; ok {
			continue
		}
		kept = append(kept, e)
	}
	c.entries = kept
	return nil
}

func (c *Catalog) checkPosition(position int) error {
	if position < 0 || position >= len(c.entries) {
		return fmt.Errorf("%w: position %d, size %d", ErrOutOfRange, position, len(c.entries))
	}
	return nil
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

func (c *Catalog) At(position int) (Entry, error) {
	if err := c.checkPosition(position); err != nil {
		return Entry{}, err
	}
	return c.entries[position], nil
}

func (c *Catalog) Find(id string) (Entry, error) {
	for _, e := range c.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// AllTags returns every distinct tag used by any entry.
// The order of the result is unspecified.
func (c *Catalog) AllTags() []string {
	seen := make(map[string]struct{})
	for _, e := range c.entries {
		for _, tag := range e.Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	return tags
}

// Filter returns, in catalog order, the entries carrying at least one of the
// selected tags. An empty selection returns every entry.
func (c *Catalog) Filter(selected []string) []Entry {
	if len(selected) == 0 {
		return c.Entries()
	}

	set := make(map[string]struct{}, len(selected))
	for _, tag := range selected {
		set[tag] = struct{}{}
	}

	filtered := make([]Entry, 0)
	for _, e := range c.entries {
		if e.HasAnyTag(set) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
