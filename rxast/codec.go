package rxast

import "unsafe"

// encodeWord0 packs a tag and the nullable flag into the record's leading
// word: tag in the low 8 bits, flags in the high 24 bits.
func encodeWord0(kind Kind, nullable bool) uint32 {
	w := uint32(kind)
	if nullable {
		w |= nullableBit
	}
	return w
}

func decodeKind(word0 uint32) Kind {
	tag := byte(word0 & tagMask)
	if tag == 0 || Kind(tag) > maxKind {
		panic((&invalidTagError{tag: tag}).Error())
	}
	return Kind(tag)
}

func decodeNullable(word0 uint32) bool {
	return word0&nullableBit != 0
}

// serializeLeaf serializes the zero-payload variants.
func serializeLeaf(kind Kind) []uint32 {
	return []uint32{encodeWord0(kind, false)}
}

func serializeByte(b byte) []uint32 {
	return []uint32{encodeWord0(KindByte, false), uint32(b)}
}

func serializeByteSet(bits []uint32) []uint32 {
	words := make([]uint32, 1+len(bits))
	words[0] = encodeWord0(KindByteSet, false)
	copy(words[1:], bits)
	return words
}

func serializeNot(nullable bool, child Ref) []uint32 {
	return []uint32{encodeWord0(KindNot, nullable), uint32(child)}
}

func serializeRepeat(nullable bool, child Ref, lo, hi uint32) []uint32 {
	return []uint32{encodeWord0(KindRepeat, nullable), uint32(child), lo, hi}
}

func serializeNary(kind Kind, nullable bool, children []Ref) []uint32 {
	words := make([]uint32, 1+len(children))
	words[0] = encodeWord0(kind, nullable)
	for i, c := range children {
		words[1+i] = uint32(c)
	}
	return words
}

// refsView reinterprets a []uint32 word slice as a []Ref without copying.
// Ref's underlying type is uint32 (identical size and alignment), so the
// reinterpretation is sound; it avoids an O(n) copy for every
// Concat/Or/And read with many children.
func refsView(words []uint32) []Ref {
	if len(words) == 0 {
		return nil
	}
	return unsafe.Slice((*Ref)(unsafe.Pointer(&words[0])), len(words))
}

// decode builds a View from a record's raw words. It performs no copying:
// ByteSet and Children both borrow directly from words.
func decode(words []uint32) View {
	kind := decodeKind(words[0])
	nullable := decodeNullable(words[0])
	v := View{Kind: kind, Nullable: nullable}
	switch kind {
	case KindEmptyString, KindNoMatch:
		// no payload
	case KindByte:
		v.Byte = byte(words[1])
	case KindByteSet:
		v.ByteSet = words[1:]
	case KindNot:
		v.Child = Ref(words[1])
	case KindRepeat:
		v.Child = Ref(words[1])
		v.Lo = words[2]
		v.Hi = words[3]
	case KindConcat, KindOr, KindAnd:
		v.Children = refsView(words[1:])
	}
	return v
}

// Get returns a read-only, zero-copy View of the node stored at ref. Get
// panics if ref was never issued by this ExprSet (see hashcons.Heap.Get).
func (es *ExprSet) Get(ref Ref) View {
	return decode(es.heap.Get(ref))
}

// GetArgs returns the child Refs of ref: the single-element slice for Not
// and Repeat, the full child list for Concat/Or/And, or nil for leaves.
func (es *ExprSet) GetArgs(ref Ref) []Ref {
	words := es.heap.Get(ref)
	kind := decodeKind(words[0])
	switch kind {
	case KindNot:
		return refsView(words[1:2])
	case KindRepeat:
		return refsView(words[1:2])
	case KindConcat, KindOr, KindAnd:
		return refsView(words[1:])
	default:
		return nil
	}
}

// IsNullable reports whether ref's language contains the empty sequence,
// reading the NULLABLE flag stored in the record's leading word.
func (es *ExprSet) IsNullable(ref Ref) bool {
	words := es.heap.Get(ref)
	return decodeNullable(words[0])
}

// MatchesByte reports whether leaf view v (Byte or ByteSet) matches b. It
// panics if v is not a leaf variant.
func MatchesByte(v View, b byte) bool {
	switch v.Kind {
	case KindEmptyString, KindNoMatch:
		return false
	case KindByte:
		return v.Byte == b
	case KindByteSet:
		return ByteSetContains(v.ByteSet, b)
	default:
		panic((&notSimpleExprError{kind: v.Kind}).Error())
	}
}

// ByteSetContains reports whether byte b's bit is set in bits, a bitmap of
// alphabet_words 32-bit words.
func ByteSetContains(bits []uint32, b byte) bool {
	idx := int(b) / 32
	if idx >= len(bits) {
		return false
	}
	return bits[idx]&(1<<(uint(b)%32)) != 0
}
