// Package levels holds the catalog of permitted level counts and the
// currently selected entry.
package levels

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is returned when a catalog is empty or contains a
// count that cannot form a curve.
var ErrInvalidCatalog = errors.New("levels: invalid catalog")

// MinLevels is the smallest level count a catalog may hold.
const MinLevels = 2

// DefaultIndex selects 10 levels in the default catalog.
const DefaultIndex = 1

var defaultCatalog = []int{5, 10, 15, 20, 25}

// DefaultCatalog returns a copy of the built-in level counts.
func DefaultCatalog() []int {
	out := make([]int, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

// Set is an ordered catalog plus a selected index. Navigation clamps
// silently at both ends.
type Set struct {
	catalog []int
	index   int
}

// New builds a Set over catalog with the given starting index (clamped).
func New(catalog []int, index int) (*Set, error) {
	if len(catalog) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidCatalog)
	}
	for i, n := range catalog {
		if n < MinLevels {
			return nil, fmt.Errorf("%w: entry %d is %d (min %d)", ErrInvalidCatalog, i, n, MinLevels)
		}
	}
	s := &Set{catalog: append([]int(nil), catalog...)}
	s.Select(index)
	return s, nil
}

// Default returns a Set over DefaultCatalog positioned at DefaultIndex.
func Default() *Set {
	s, _ := New(defaultCatalog, DefaultIndex)
	return s
}

// Increase moves one step up the catalog.
func (s *Set) Increase() { s.Select(s.index + 1) }

// Decrease moves one step down the catalog.
func (s *Set) Decrease() { s.Select(s.index - 1) }

// Select jumps to index, clamped to the catalog bounds.
func (s *Set) Select(index int) {
	if index < 0 {
		index = 0
	}
	if last := len(s.catalog) - 1; index > last {
		index = last
	}
	s.index = index
}

// Current returns the active level count.
func (s *Set) Current() int { return s.catalog[s.index] }

// Index returns the active catalog index.
func (s *Set) Index() int { return s.index }

// Len returns the catalog size.
func (s *Set) Len() int { return len(s.catalog) }

// Catalog returns a copy of the level counts.
func (s *Set) Catalog() []int { return append([]int(nil), s.catalog...) }

// IndexOf returns the catalog index holding n, or -1.
func (s *Set) IndexOf(n int) int {
	for i, c := range s.catalog {
		if c == n {
			return i
		}
	}
	return -1
}
