// Command rxdump is a small demonstration CLI over package rxast: it runs
// a fixed sequence of smart-constructor calls against a freshly built
// ExprSet and reports the resulting store statistics and Refs, the same
// way cmd/hivectl exercises the hive package end to end for its users.
//
// It is not a regex parser or matcher — rxast intentionally exposes no
// frontend for pattern syntax. rxdump only calls the public constructors
// directly.
package main

func main() {
	execute()
}
