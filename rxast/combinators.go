package rxast

import "sort"

// flattenTag splices the children of any argument whose own top-level
// kind equals target into the result list, one level deep. Because
// constructors only ever build expressions from already-normalized
// children, no argument's children can themselves need flattening again
// — a single pass suffices.
func (es *ExprSet) flattenTag(target Kind, args []Ref) []Ref {
	for i, a := range args {
		if es.tagOf(a) != target {
			continue
		}
		res := make([]Ref, len(args[:i]), len(args))
		copy(res, args[:i])
		for j := i; j < len(args); j++ {
			arg := args[j]
			if es.tagOf(arg) == target {
				res = append(res, es.GetArgs(arg)...)
			} else {
				res = append(res, arg)
			}
		}
		return res
	}
	return args
}

func (es *ExprSet) tagOf(ref Ref) Kind {
	return decodeKind(es.heap.Get(ref)[0])
}

func cloneRefs(args []Ref) []Ref {
	out := make([]Ref, len(args))
	copy(out, args)
	return out
}

// MkOr constructs the union of args' languages:
//  1. flatten nested Or
//  2. sort by Ref value
//  3. drop NoMatch, short-circuit to AnyString, dedup adjacent equals,
//     tracking nullability (nullable iff any surviving argument is)
//  4. zero survivors -> NoMatch; one survivor -> that survivor
//  5. otherwise insert with the computed NULLABLE flag
func (es *ExprSet) MkOr(args []Ref) Ref {
	flat := cloneRefs(es.flattenTag(KindOr, args))
	sort.Slice(flat, func(i, j int) bool { return flat[i] < flat[j] })

	dp := 0
	prev := RefNoMatch
	nullable := false
	for _, arg := range flat {
		if arg == prev || arg == RefNoMatch {
			continue
		}
		if arg == RefAnyString {
			return RefAnyString
		}
		if !nullable && es.IsNullable(arg) {
			nullable = true
		}
		flat[dp] = arg
		dp++
		prev = arg
	}
	flat = flat[:dp]

	switch len(flat) {
	case 0:
		return RefNoMatch
	case 1:
		return flat[0]
	default:
		return es.heap.Insert(serializeNary(KindOr, nullable, flat))
	}
}

// MkAnd constructs the intersection of args' languages, mirroring MkOr
// with the identity AnyString and the annihilator NoMatch, plus one
// additional case: if the surviving list contains EmptyString, the
// intersection is EmptyString when every surviving argument is nullable,
// else NoMatch. Nullability is true iff all surviving arguments are
// nullable.
func (es *ExprSet) MkAnd(args []Ref) Ref {
	flat := cloneRefs(es.flattenTag(KindAnd, args))
	sort.Slice(flat, func(i, j int) bool { return flat[i] < flat[j] })

	dp := 0
	prev := RefAnyString
	hadEmpty := false
	nullable := true
	for _, arg := range flat {
		if arg == prev || arg == RefAnyString {
			continue
		}
		if arg == RefNoMatch {
			return RefNoMatch
		}
		if arg == RefEmptyString {
			hadEmpty = true
		}
		if nullable && !es.IsNullable(arg) {
			nullable = false
		}
		flat[dp] = arg
		dp++
		prev = arg
	}
	flat = flat[:dp]

	switch {
	case len(flat) == 0:
		return RefAnyString
	case len(flat) == 1:
		return flat[0]
	case hadEmpty:
		if nullable {
			return RefEmptyString
		}
		return RefNoMatch
	default:
		return es.heap.Insert(serializeNary(KindAnd, nullable, flat))
	}
}

// MkConcat constructs the sequential concatenation of args:
//  1. flatten nested Concat
//  2. drop EmptyString arguments (identity)
//  3. zero survivors -> EmptyString; one survivor -> that survivor
//  4. any survivor NoMatch -> NoMatch
//  5. otherwise insert, NULLABLE iff all survivors are nullable
//
// Concat is not sorted: argument order is semantically significant.
func (es *ExprSet) MkConcat(args []Ref) Ref {
	flat := cloneRefs(es.flattenTag(KindConcat, args))

	survivors := flat[:0]
	for _, a := range flat {
		if a != RefEmptyString {
			survivors = append(survivors, a)
		}
	}

	switch len(survivors) {
	case 0:
		return RefEmptyString
	case 1:
		return survivors[0]
	}

	for _, a := range survivors {
		if a == RefNoMatch {
			return RefNoMatch
		}
	}

	nullable := true
	for _, a := range survivors {
		if !es.IsNullable(a) {
			nullable = false
			break
		}
	}
	return es.heap.Insert(serializeNary(KindConcat, nullable, survivors))
}
