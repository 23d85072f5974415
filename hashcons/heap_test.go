package hashcons

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertDeduplicates(t *testing.T) {
	h := New()

	r1 := h.Insert([]uint32{1, 2, 3})
	require.Equal(t, 1, h.Len())

	r2 := h.Insert([]uint32{1, 2, 3})
	require.Equal(t, r1, r2)
	require.Equal(t, 1, h.Len(), "identical content must not grow the heap")

	r3 := h.Insert([]uint32{1, 2, 4})
	require.NotEqual(t, r1, r3)
	require.Equal(t, 2, h.Len())
}

func TestInsertNeverReturnsInvalidRef(t *testing.T) {
	h := New()
	r := h.Insert([]uint32{0})
	require.True(t, r.IsValid())
	require.NotEqual(t, InvalidRef, r)
}

func TestGetReturnsStoredWords(t *testing.T) {
	h := New()
	want := []uint32{9, 8, 7, 6}
	r := h.Insert(want)
	require.Equal(t, want, h.Get(r))
}

func TestGetPanicsOnUnissuedRef(t *testing.T) {
	h := New()
	h.Insert([]uint32{1})
	require.Panics(t, func() { h.Get(InvalidRef) })
	require.Panics(t, func() { h.Get(Ref(99)) })
}

func TestInsertPanicsOnEmptyWords(t *testing.T) {
	h := New()
	require.Panics(t, func() { h.Insert(nil) })
	require.Panics(t, func() { h.Insert([]uint32{}) })
}

func TestAppendNeverInvalidatesPriorView(t *testing.T) {
	h := New()
	r1 := h.Insert([]uint32{1, 1, 1})
	view := h.Get(r1)

	// Force many more inserts, well past any small initial capacity, to
	// make sure growth of the record table never moves an existing
	// record's own backing array.
	for i := 0; i < 10_000; i++ {
		h.Insert([]uint32{uint32(i), 2, 3})
	}

	require.Equal(t, []uint32{1, 1, 1}, view)
	require.Equal(t, []uint32{1, 1, 1}, h.Get(r1))
}

func TestBytesReflectsWordCount(t *testing.T) {
	h := New()
	require.Equal(t, 0, h.Bytes())

	h.Insert([]uint32{1, 2, 3})
	require.Equal(t, 12, h.Bytes())

	h.Insert([]uint32{1, 2, 3}) // dedup: no growth
	require.Equal(t, 12, h.Bytes())

	h.Insert([]uint32{4})
	require.Equal(t, 16, h.Bytes())
}

func TestLenIsNonDecreasing(t *testing.T) {
	h := New()
	prev := h.Len()
	inputs := [][]uint32{
		{1}, {1}, {2}, {1, 2}, {2}, {1, 2, 3}, {1},
	}
	for _, in := range inputs {
		h.Insert(in)
		require.GreaterOrEqual(t, h.Len(), prev)
		prev = h.Len()
	}
}

func TestLargeRecordsHashFullContent(t *testing.T) {
	// Two large bit-set-shaped records differing only in one word far from
	// the front must not collide: the hash must depend on the full
	// content, not just a prefix or the tag.
	h := New()
	a := make([]uint32, 64)
	b := make([]uint32, 64)
	for i := range a {
		a[i] = 0xdeadbeef
		b[i] = 0xdeadbeef
	}
	b[63] = 0xcafef00d

	ra := h.Insert(a)
	rb := h.Insert(b)
	require.NotEqual(t, ra, rb)
	require.Equal(t, 2, h.Len())
}
