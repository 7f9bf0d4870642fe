// SPDX-License-Identifier: MIT

package dsu

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Singletons(t *testing.T) {
	s := New("a", "b", "c", "a")
	assert.Equal(t, 3, s.Len())
	for _, x := range []string{"a", "b", "c"} {
		root, err := s.Find(x)
		require.NoError(t, err)
		assert.Equal(t, x, root)
	}
}

func TestFind_UnknownElement(t *testing.T) {
	s := New("a")
	_, err := s.Find("zz")
	assert.ErrorIs(t, err, ErrUnknownElement)
	assert.ErrorIs(t, s.Union("a", "zz"), ErrUnknownElement)
	assert.ErrorIs(t, s.Union("zz", "a"), ErrUnknownElement)
	_, err = s.Same("zz", "a")
	assert.ErrorIs(t, err, ErrUnknownElement)
}

// TestUnion_AttachesSecondUnderFirst pins the asymmetric union policy.
func TestUnion_AttachesSecondUnderFirst(t *testing.T) {
	s := New("a", "b", "c", "d")
	require.NoError(t, s.Union("a", "b"))
	require.NoError(t, s.Union("c", "d"))
	require.NoError(t, s.Union("c", "a"))

	for _, x := range []string{"a", "b", "c", "d"} {
		root, err := s.Find(x)
		require.NoError(t, err)
		assert.Equal(t, "c", root, "root of %s", x)
	}
	assert.Equal(t, 1, s.Len())

	// Re-union is a no-op.
	require.NoError(t, s.Union("b", "d"))
	assert.Equal(t, 1, s.Len())
}

// TestFind_CompressesLongChain builds a worst-case chain through the
// asymmetric union and checks that one Find flattens it.
func TestFind_CompressesLongChain(t *testing.T) {
	const n = 10000
	elems := make([]string, n)
	for i := range elems {
		elems[i] = strconv.Itoa(i)
	}
	s := New(elems...)
	// Union(i+1, i) puts the old root i under i+1, so 0 ends up n-1 hops deep.
	for i := 0; i < n-1; i++ {
		require.NoError(t, s.Union(elems[i+1], elems[i]))
	}

	root, err := s.Find("0")
	require.NoError(t, err)
	assert.Equal(t, elems[n-1], root)

	// Every element on the path now points straight at the root.
	for _, e := range elems {
		assert.Equal(t, root, s.parent[e])
	}
}

func TestSame(t *testing.T) {
	s := New("x", "y", "z")
	require.NoError(t, s.Union("x", "y"))

	same, err := s.Same("y", "x")
	require.NoError(t, err)
	assert.True(t, same)

	same, err = s.Same("x", "z")
	require.NoError(t, err)
	assert.False(t, same)
}
