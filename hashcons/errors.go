package hashcons

import "fmt"

// capacityError reports that a Heap has reached maxRecords. It is raised
// as a panic, not returned: exceeding the soft cap is a programmer error
// (an unbounded or runaway construction loop), not a condition any caller
// of this package is expected to recover from.
type capacityError struct {
	limit int
}

func (e *capacityError) Error() string {
	return fmt.Sprintf("hashcons: record count would exceed soft cap of %d", e.limit)
}

// malformedInsertError reports an empty words slice passed to Insert.
type malformedInsertError struct{}

func (e *malformedInsertError) Error() string {
	return "hashcons: Insert requires a non-empty words slice"
}

// badRefError reports a Get/lookup against a Ref the heap never issued.
type badRefError struct {
	ref Ref
}

func (e *badRefError) Error() string {
	return fmt.Sprintf("hashcons: invalid ref %d", e.ref)
}
