// Package hashcons implements a dense, append-only record heap with
// content-based deduplication.
//
// # Overview
//
// A Heap stores variable-length records, each a run of 32-bit words. Two
// records with identical word contents always collapse onto the same
// identifier (a Ref): Insert hashes the incoming words, checks existing
// candidates in that bucket for a byte-for-byte match, and only appends a
// new record on a genuine miss. This is hash-consing: semantically
// identical structures end up sharing one storage slot, so identifier
// equality becomes a cheap, sound proxy for content equality.
//
// # Ownership and views
//
// Get returns the record's words directly — no copy. Records are stored as
// independently allocated slices (not offsets into one shared, growable
// arena), so appending a new record never moves or invalidates a
// previously returned slice. Callers must still treat the returned slice
// as read-only: mutating it corrupts the hash index, since the index was
// built from the original contents.
//
// # Growth and limits
//
// The heap grows monotonically. There is no Remove and no Free — this
// matches the regex expression DAG it backs, which only ever grows.
// Insert panics if the heap would exceed maxRecords; this is a
// programmer-error guard (see package rxast), not a recoverable
// condition.
//
// # Concurrency
//
// A Heap is not safe for concurrent use. Insert may grow the hash index
// and the record table; Get races with any concurrent Insert. Callers
// needing concurrent reads must synchronize externally.
package hashcons
