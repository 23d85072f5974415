package rxast

import "github.com/nodeglyph/rxcore/hashcons"

// Reserved Refs pre-populated by New, at the fixed values every ExprSet
// guarantees.
const (
	// RefInvalid is the sentinel identifier; no constructor ever returns it.
	RefInvalid Ref = Ref(hashcons.InvalidRef)
	// RefEmptyString matches the empty sequence only.
	RefEmptyString Ref = 1
	// RefNoMatch matches nothing.
	RefNoMatch Ref = 2
	// RefAnyByte matches any single byte of the alphabet.
	RefAnyByte Ref = 3
	// RefAnyString is Repeat(AnyByte, 0, unbounded) — any string, nullable.
	RefAnyString Ref = 4
	// RefNonEmptyString is Repeat(AnyByte, 1, unbounded) — any non-empty string.
	RefNonEmptyString Ref = 5
)

// ExprSet is a hash-consed, canonicalizing store of regular-expression
// AST nodes over a fixed byte alphabet. See the package doc for the
// normalization contract.
type ExprSet struct {
	heap          *hashcons.Heap
	alphabetSize  int
	alphabetWords int
}

// New constructs an ExprSet for an alphabet of alphabetSize symbols
// (0..alphabetSize-1), pre-populating the five reserved expressions at
// their fixed Refs. For standard byte matching, alphabetSize is 256.
func New(alphabetSize int) *ExprSet {
	if alphabetSize <= 0 {
		panic("rxast: alphabetSize must be positive")
	}
	es := &ExprSet{
		heap:          hashcons.New(),
		alphabetSize:  alphabetSize,
		alphabetWords: (alphabetSize + 31) / 32,
	}

	type seed struct {
		words []uint32
		want  Ref
	}
	allBits := make([]uint32, es.alphabetWords)
	for i := range allBits {
		allBits[i] = 0xffffffff
	}

	seeds := []seed{
		{serializeLeaf(KindEmptyString), RefEmptyString},
		{serializeLeaf(KindNoMatch), RefNoMatch},
		{serializeByteSet(allBits), RefAnyByte},
		{serializeRepeat(true, RefAnyByte, 0, unboundedHi), RefAnyString},
		{serializeRepeat(false, RefAnyByte, 1, unboundedHi), RefNonEmptyString},
	}
	for _, s := range seeds {
		got := es.heap.Insert(s.words)
		if got != s.want {
			panic("rxast: reserved ref assignment mismatch during New")
		}
	}
	return es
}

// AlphabetSize returns the number of symbols this store's alphabet was
// constructed with.
func (es *ExprSet) AlphabetSize() int {
	return es.alphabetSize
}

// AlphabetWords returns ceil(alphabet_size/32), the word width of every
// ByteSet record.
func (es *ExprSet) AlphabetWords() int {
	return es.alphabetWords
}

// Len returns the number of distinct records stored so far.
func (es *ExprSet) Len() int {
	return es.heap.Len()
}

// Bytes returns the total storage footprint of the underlying heap.
func (es *ExprSet) Bytes() int {
	return es.heap.Bytes()
}

// MkByte constructs a single-byte expression; byte literals need no
// normalization. Repeated calls with the same byte return the same Ref,
// since the heap deduplicates identical records.
func (es *ExprSet) MkByte(b byte) Ref {
	return es.heap.Insert(serializeByte(b))
}

// MkByteSet constructs a byte-set expression matching any byte whose bit
// is set in bits. bits must have AlphabetWords() words. An all-zero
// bitmap is canonicalized to RefNoMatch and never stored; a single-bit
// set is intentionally NOT folded into MkByte — the two representations
// are kept distinct so downstream algorithms can treat all byte-matching
// leaves uniformly as sets.
func (es *ExprSet) MkByteSet(bits []uint32) Ref {
	if len(bits) != es.alphabetWords {
		panic((&badByteSetWidthError{got: len(bits), want: es.alphabetWords}).Error())
	}
	allZero := true
	for _, w := range bits {
		if w != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return RefNoMatch
	}
	return es.heap.Insert(serializeByteSet(bits))
}

// MkRepeat constructs e repeated at least lo and at most hi times
// (inclusive; hi == unboundedHi means unbounded), applying normalization
// steps in this fixed order:
//
//  1. NoMatch with lo==0 -> EmptyString
//  2. NoMatch (lo>=1)    -> NoMatch
//  3. lo == hi           -> EmptyString
//  4. lo+1 == hi         -> e
//  5. lo > hi            -> NoMatch
//  6. e nullable         -> clamp lo to 0
//  7. otherwise          -> insert with NULLABLE iff lo==0
//
// Step 3 is a faithful reproduction of a known bug in the source this
// store is modeled on: for non-nullable e and k >= 1, the language of
// Repeat(e, k, k) is e^k, not the empty string. This implementation
// intentionally does not "fix" that — see DESIGN.md.
func (es *ExprSet) MkRepeat(e Ref, lo, hi uint32) Ref {
	switch {
	case e == RefNoMatch && lo == 0:
		return RefEmptyString
	case e == RefNoMatch:
		return RefNoMatch
	case lo == hi:
		return RefEmptyString
	case lo+1 == hi:
		return e
	case lo > hi:
		return RefNoMatch
	}

	if es.IsNullable(e) {
		lo = 0
	}
	return es.heap.Insert(serializeRepeat(lo == 0, e, lo, hi))
}

// MkStar is MkRepeat(e, 0, unbounded).
func (es *ExprSet) MkStar(e Ref) Ref {
	return es.MkRepeat(e, 0, unboundedHi)
}

// MkPlus is MkRepeat(e, 1, unbounded).
func (es *ExprSet) MkPlus(e Ref) Ref {
	return es.MkRepeat(e, 1, unboundedHi)
}

// MkNot constructs the complement of e's language: involutive
// (Not(Not(e)) == e), with fixed-point shortcuts for the four reserved
// boundary expressions, and the NULLABLE flag inverted from e's.
func (es *ExprSet) MkNot(e Ref) Ref {
	switch e {
	case RefEmptyString:
		return RefNonEmptyString
	case RefNonEmptyString:
		return RefEmptyString
	case RefAnyString:
		return RefNoMatch
	case RefNoMatch:
		return RefAnyString
	}

	v := es.Get(e)
	if v.Kind == KindNot {
		return v.Child
	}
	return es.heap.Insert(serializeNot(!v.Nullable, e))
}
