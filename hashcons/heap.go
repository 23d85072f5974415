package hashcons

import (
	"github.com/cespare/xxhash/v2"

	"github.com/nodeglyph/rxcore/internal/wordcodec"
)

// maxRecords is the soft cap on the number of distinct records a Heap will
// hold. It exists purely as an overflow guard on the 32-bit Ref space.
const maxRecords = 1 << 20

// Heap is a dense, append-only arena of variable-length word records,
// deduplicated by content hash. See the package doc for the ownership and
// concurrency contract.
type Heap struct {
	records [][]uint32     // records[r-1] is the word slice for Ref(r)
	buckets map[uint64][]Ref // content hash -> candidate refs sharing that hash
}

// New returns an empty Heap.
func New() *Heap {
	return &Heap{
		buckets: make(map[uint64][]Ref),
	}
}

// Insert deduplicates words against previously inserted records and
// returns a stable Ref. If an identical word sequence was inserted
// before, the existing Ref is returned and no new record is appended.
//
// Insert panics if words is empty (a malformed record — constructing one
// is a programmer error, not a recoverable condition) or if the heap has
// already reached its soft capacity.
func (h *Heap) Insert(words []uint32) Ref {
	if len(words) == 0 {
		panic((&malformedInsertError{}).Error())
	}

	sum := contentHash(words)
	for _, candidate := range h.buckets[sum] {
		if wordsEqual(h.records[candidate-1], words) {
			return candidate
		}
	}

	if len(h.records) >= maxRecords {
		panic((&capacityError{limit: maxRecords}).Error())
	}

	stored := make([]uint32, len(words))
	copy(stored, words)
	h.records = append(h.records, stored)
	ref := Ref(len(h.records))
	h.buckets[sum] = append(h.buckets[sum], ref)
	return ref
}

// Get returns a read-only view of the words stored at ref. Get panics if
// ref was never issued by this Heap.
func (h *Heap) Get(ref Ref) []uint32 {
	if !ref.IsValid() || int(ref) > len(h.records) {
		panic((&badRefError{ref: ref}).Error())
	}
	return h.records[ref-1]
}

// Len returns the number of distinct records currently stored.
func (h *Heap) Len() int {
	return len(h.records)
}

// Bytes returns the total storage footprint of all stored records, in
// bytes (4 bytes per word; the per-record slice header itself is not
// counted, only payload size).
func (h *Heap) Bytes() int {
	total := 0
	for _, r := range h.records {
		total += len(r) * 4
	}
	return total
}

// contentHash hashes the full word content of a record, not just its
// leading tag word — large ByteSet bitmaps must participate fully in the
// hash to avoid pathological bucket collisions.
func contentHash(words []uint32) uint64 {
	var scratch [256]byte
	buf := wordcodec.EncodeWords(words, scratch[:0])
	return xxhash.Sum64(buf)
}

func wordsEqual(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
