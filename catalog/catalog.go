package catalog

import (
	"fmt"

	"github.com/indigo-web/headercount/errors"
	"github.com/indigo-web/headercount/internal/strutil"
)

const letters = 26

// Entry is a recognized header name along with how many times it was seen.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

type span struct {
	start, end int
}

// Catalog is an ordered set of entries, grouped into buckets by the first letter of
// their names. Buckets are contiguous sub-slices of the same backing array, so the
// catalog order is bucket A to Z and the enumeration order within each bucket.
//
// Once constructed, neither the set of names nor the bucket bounds ever change. Only
// the counts do.
type Catalog struct {
	entries []Entry
	buckets [letters]span
}

// New returns the catalog of well-known headers, every count being zero.
func New() *Catalog {
	c, err := NewFrom(WellKnown)
	if err != nil {
		panic(fmt.Errorf("catalog: bad well-known headers: %w", err))
	}

	return c
}

// NewFrom builds a catalog out of arbitrary names. Names must be unique and begin with
// an ASCII letter. Names sharing a first letter don't have to be adjacent, but their
// relative order is preserved.
func NewFrom(names []string) (*Catalog, error) {
	var grouped [letters][]string
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if len(name) == 0 {
			return nil, fmt.Errorf("%w: empty header name", errors.ErrInvalidLetter)
		}

		idx, ok := strutil.LetterIndex(name[0])
		if !ok {
			return nil, fmt.Errorf("%w: %q", errors.ErrInvalidLetter, name)
		}

		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", errors.ErrDuplicateName, name)
		}

		seen[name] = struct{}{}
		grouped[idx] = append(grouped[idx], name)
	}

	c := &Catalog{
		entries: make([]Entry, 0, len(names)),
	}

	for letter, bucket := range grouped {
		start := len(c.entries)
		for _, name := range bucket {
			c.entries = append(c.entries, Entry{Name: name})
		}

		c.buckets[letter] = span{start, len(c.entries)}
	}

	return c, nil
}

// Bucket returns the entries starting with the letter, case-insensitively. The returned
// slice is a view onto the catalog: entries modified through it are modified in the
// catalog too. Letters having no entries result in an empty slice.
func (c *Catalog) Bucket(letter byte) ([]Entry, error) {
	idx, ok := strutil.LetterIndex(letter)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrInvalidLetter, letter)
	}

	return c.bucket(idx), nil
}

func (c *Catalog) bucket(idx int) []Entry {
	s := c.buckets[idx]
	return c.entries[s.start:s.end:s.end]
}

// Entries returns a copy of all the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	snapshot := make([]Entry, len(c.entries))
	copy(snapshot, c.entries)

	return snapshot
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Reset zeroes all the counts.
func (c *Catalog) Reset() {
	for i := range c.entries {
		c.entries[i].Count = 0
	}
}
