package rxast

import "github.com/nodeglyph/rxcore/hashcons"

// Ref identifies an expression stored in an ExprSet. It is the same
// identifier space as hashcons.Ref: ExprSet is a thin layer over a single
// hashcons.Heap, and every Ref it hands out is the heap's Ref for that
// node's serialized record.
type Ref = hashcons.Ref

// Kind is the tag discriminating the nine expression variants. Tag values
// form a contiguous enumeration starting at 1; 0 is reserved (invalid) and
// is never returned by decodeKind or stored in a record.
type Kind uint8

const (
	// KindEmptyString matches the empty sequence only.
	KindEmptyString Kind = iota + 1
	// KindNoMatch matches nothing.
	KindNoMatch
	// KindByte matches exactly one byte value.
	KindByte
	// KindByteSet matches any one byte whose index bit is set.
	KindByteSet
	// KindNot is the complement of its child's language.
	KindNot
	// KindRepeat is its child repeated between Lo and Hi times, inclusive.
	KindRepeat
	// KindConcat is the sequential concatenation of its children.
	KindConcat
	// KindOr is the union of its children's languages.
	KindOr
	// KindAnd is the intersection of its children's languages.
	KindAnd
)

// maxKind is the highest valid Kind value; used to validate decoded tags.
const maxKind = KindAnd

// unboundedHi is the Repeat upper bound denoting "unbounded" (hi =
// 2^32 - 1).
const unboundedHi uint32 = 1<<32 - 1

// nullableBit is the single currently-defined flag bit in word 0, set
// when the expression's language contains the empty sequence. It occupies
// bit 8, leaving bits 9-31 reserved for future static properties; any such
// future bits must be threaded through unchanged by every constructor in
// this package, the same way the Rust original's ExprFlags carries them
// opaquely.
const nullableBit uint32 = 1 << 8

// tagMask isolates the low byte (the Kind) of word 0 from the flag bits.
const tagMask uint32 = 0xff

// View is a zero-copy, read-only description of a stored expression node.
// Only the fields relevant to Kind are meaningful; see the field comments.
// A View borrows directly from the owning ExprSet's heap and remains valid
// for the ExprSet's entire lifetime (nodes are never mutated or removed).
type View struct {
	Kind     Kind
	Nullable bool

	Byte    byte     // valid iff Kind == KindByte
	ByteSet []uint32 // valid iff Kind == KindByteSet; AlphabetWords() long

	Child Ref // valid iff Kind == KindNot or KindRepeat
	Lo    uint32
	Hi    uint32 // valid iff Kind == KindRepeat; Hi == unboundedHi means unbounded

	Children []Ref // valid iff Kind == KindConcat, KindOr, or KindAnd
}
