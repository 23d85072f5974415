package hashcons

// Ref is a stable, non-negative identifier into a Heap. The zero value is
// reserved as an invalid sentinel — no record is ever inserted at Ref 0.
type Ref uint32

// InvalidRef is the reserved sentinel identifier. No Insert call ever
// returns it.
const InvalidRef Ref = 0

// IsValid reports whether r refers to a real record.
func (r Ref) IsValid() bool {
	return r != InvalidRef
}
