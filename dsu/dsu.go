// SPDX-License-Identifier: MIT

// Package dsu provides a string-keyed disjoint-set (union-find) used by
// Kruskal's minimum spanning tree.
//
// Find compresses paths iteratively: it walks to the root collecting the
// visited elements, then re-parents every one of them directly under the
// root, so deep chains never grow the call stack.
//
// Union attaches the root of its second argument under the root of its
// first. There is no union by rank or size; tree height is bounded only by
// path compression, which keeps Find amortized near O(1) for Kruskal's access
// pattern.
package dsu

import (
	"errors"
	"fmt"
)

// ErrUnknownElement is returned when Find, Union or Same receives an element
// that was never added to the Set.
var ErrUnknownElement = errors.New("dsu: unknown element")

// Set is a disjoint-set forest over string elements.
// The zero value is not usable; call New.
type Set struct {
	parent map[string]string
	sets   int
}

// New returns a Set holding each of elems as its own singleton.
// Duplicate elements are ignored.
func New(elems ...string) *Set {
	s := &Set{parent: make(map[string]string, len(elems))}
	for _, e := range elems {
		s.Add(e)
	}

	return s
}

// Add inserts x as a singleton set. Adding an existing element is a no-op.
func (s *Set) Add(x string) {
	if _, ok := s.parent[x]; ok {
		return
	}
	s.parent[x] = x
	s.sets++
}

// Len returns the number of disjoint sets currently held.
func (s *Set) Len() int { return s.sets }

// Find returns the representative of x's set, compressing the path from x
// to the root.
func (s *Set) Find(x string) (string, error) {
	p, ok := s.parent[x]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownElement, x)
	}

	// Walk up to the root, remembering every element passed on the way.
	var path []string
	root := x
	for p != root {
		path = append(path, root)
		root = p
		p = s.parent[root]
	}

	// Re-parent the whole path under the root.
	for _, e := range path {
		s.parent[e] = root
	}

	return root, nil
}

// Union merges the sets of a and b by attaching b's root under a's root.
// If a and b already share a root, Union does nothing.
func (s *Set) Union(a, b string) error {
	ra, err := s.Find(a)
	if err != nil {
		return err
	}
	rb, err := s.Find(b)
	if err != nil {
		return err
	}
	if ra == rb {
		return nil
	}
	s.parent[rb] = ra
	s.sets--

	return nil
}

// Same reports whether a and b are in the same set.
func (s *Set) Same(a, b string) (bool, error) {
	ra, err := s.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := s.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}
