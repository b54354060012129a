package bitset_test

import (
	"testing"

	"github.com/go-treewidth/btcore/internal/bitset"
	"github.com/stretchr/testify/require"
)

func TestSetClearTest(t *testing.T) {
	b := bitset.New(70) // spans two words
	require.False(t, b.Test(0))
	require.False(t, b.Test(63))
	require.False(t, b.Test(69))

	b.Set(0)
	b.Set(63)
	b.Set(69)
	require.True(t, b.Test(0))
	require.True(t, b.Test(63))
	require.True(t, b.Test(69))
	require.Equal(t, 3, b.Count())

	b.Clear(63)
	require.False(t, b.Test(63))
	require.Equal(t, 2, b.Count())
}

func TestUniverseAndNot(t *testing.T) {
	u := bitset.Universe(5)
	require.Equal(t, 5, u.Count())

	empty := bitset.New(5)
	require.True(t, empty.Not(5).Equal(u))
	require.True(t, u.Not(5).Equal(empty))
	require.True(t, empty.IsEmpty())
	require.False(t, u.IsEmpty())
}

func TestNotMasksTailBits(t *testing.T) {
	// n = 5 lives entirely in the first word; Not must not leave any of
	// the other 59 bits of that word set, or Count/Equal would be wrong.
	b := bitset.New(5)
	b.Set(1)
	c := b.Not(5)
	require.Equal(t, 4, c.Count())
	require.Equal(t, []int{0, 2, 3, 4}, c.Slice())
}

func TestAndOrAndNot(t *testing.T) {
	a := bitset.FromSlice(8, []int{0, 1, 2, 3})
	b := bitset.FromSlice(8, []int{2, 3, 4, 5})

	require.Equal(t, []int{2, 3}, a.And(b).Slice())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, a.Or(b).Slice())
	require.Equal(t, []int{0, 1}, a.AndNot(b).Slice())
}

func TestInPlaceOrAndNot(t *testing.T) {
	a := bitset.FromSlice(8, []int{0, 1})
	b := bitset.FromSlice(8, []int{1, 2})

	a.InPlaceOr(b)
	require.Equal(t, []int{0, 1, 2}, a.Slice())

	a.InPlaceAndNot(b)
	require.Equal(t, []int{0}, a.Slice())
}

func TestIntersectsAny(t *testing.T) {
	a := bitset.FromSlice(8, []int{0, 1})
	b := bitset.FromSlice(8, []int{1, 2})
	c := bitset.FromSlice(8, []int{2, 3})

	require.True(t, a.IntersectsAny(b))
	require.False(t, a.IntersectsAny(c))
}

func TestNextSetAndForEach(t *testing.T) {
	b := bitset.FromSlice(130, []int{0, 64, 65, 129})

	var got []int
	b.ForEach(func(i int) bool {
		got = append(got, i)
		return true
	})
	require.Equal(t, []int{0, 64, 65, 129}, got)

	// ForEach honors early termination.
	var stopped []int
	b.ForEach(func(i int) bool {
		stopped = append(stopped, i)
		return i != 64
	})
	require.Equal(t, []int{0, 64}, stopped)
}

func TestClone(t *testing.T) {
	a := bitset.FromSlice(8, []int{0, 1})
	c := a.Clone()
	c.Set(5)
	require.False(t, a.Test(5))
	require.True(t, c.Test(5))
}

func TestEqual(t *testing.T) {
	a := bitset.FromSlice(8, []int{1, 3})
	b := bitset.FromSlice(8, []int{1, 3})
	c := bitset.FromSlice(8, []int{1, 4})
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
