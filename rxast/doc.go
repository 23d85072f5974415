// Package rxast implements the canonicalizing regular-expression
// expression store: a thin, normalizing layer over package hashcons that
// serializes regex AST nodes to word records and hands them to the
// record heap for deduplication.
//
// # Core types
//
// ExprSet owns a hashcons.Heap and knows the word layout of each of the
// nine expression variants (EmptyString, NoMatch, Byte, ByteSet, Not,
// Repeat, Concat, Or, And). Every mutating method is a "smart
// constructor": it normalizes its arguments under the algebraic laws of
// regular languages (idempotence, commutativity, associativity,
// absorption, identity) before ever touching the heap, so that two
// constructor call sequences producing expressions that are equal under
// those laws converge on the same Ref. Ref equality implies language
// equality, but not the reverse: a Byte and the single-bit ByteSet for
// the same byte, for example, get different Refs.
//
// # Reserved identifiers
//
// Every ExprSet pre-populates five canonical expressions at fixed Refs —
// RefEmptyString, RefNoMatch, RefAnyByte, RefAnyString,
// RefNonEmptyString — so that callers across the system can compare
// against them by value without a lookup.
//
// # Normalization is local
//
// Smart constructors assume their Ref arguments are already in normal
// form. This holds by construction: the only way to obtain a Ref is to
// call a constructor, so every argument handed to a later constructor
// call was itself normalized on the way in. Nothing in this package
// re-traverses a subtree to re-normalize it.
//
// # Usage
//
//	es := rxast.New(256)
//	a := es.MkByte('a')
//	b := es.MkByte('b')
//	ab := es.MkConcat([]rxast.Ref{a, b})
//	fmt.Println(es.IsNullable(ab)) // false
//
// # Reading nodes
//
// Get returns a View describing the node's variant and payload, reading
// directly from the heap's stored words — no decode-and-copy step. Views
// are invalidated by the same rule as hashcons.Heap.Get: never, because
// records are never mutated or moved once inserted.
package rxast
