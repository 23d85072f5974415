package rxast

import "fmt"

// Structural errors are programmer errors: a corrupted store or a caller
// using the wrong alphabet size. They are raised as panics with a
// descriptive message rather than returned — callers are not expected
// to recover from them.

type badByteSetWidthError struct {
	got, want int
}

func (e *badByteSetWidthError) Error() string {
	return fmt.Sprintf("rxast: byte-set has %d words, expected %d (alphabet_words)", e.got, e.want)
}

type invalidTagError struct {
	tag byte
}

func (e *invalidTagError) Error() string {
	return fmt.Sprintf("rxast: decoded invalid tag %d from record", e.tag)
}

type invalidRefError struct {
	ref Ref
}

func (e *invalidRefError) Error() string {
	return fmt.Sprintf("rxast: invalid ref %d passed to reader", e.ref)
}

type notSimpleExprError struct {
	kind Kind
}

func (e *notSimpleExprError) Error() string {
	return fmt.Sprintf("rxast: MatchesByte called on non-leaf kind %d", e.kind)
}
