package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nodeglyph/rxcore/rxast"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newBuildCmd())
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Run a fixed demo construction sequence and report statistics",
		Long: `build constructs a handful of canonical expressions — a concat of two
bytes, a union with a duplicate argument, an intersection with the empty
string, and a double complement — against a fresh ExprSet, then reports
the store's size and the resulting Refs.

Example:
  rxdump build
  rxdump build --alphabet 64 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild()
		},
	}
}

// buildReport summarizes the demo run in a form suitable for --json output.
type buildReport struct {
	AlphabetSize  int    `json:"alphabet_size"`
	AlphabetWords int    `json:"alphabet_words"`
	RecordCount   int    `json:"record_count"`
	Bytes         int    `json:"bytes"`
	ConcatAB      uint32 `json:"concat_ab"`
	OrABA         uint32 `json:"or_aba"`
	AndStarEmpty  uint32 `json:"and_star_empty"`
	NotNotX       uint32 `json:"not_not_x"`
}

func runBuild() error {
	if alphabetSize <= 0 {
		printError("alphabet size must be positive")
		return fmt.Errorf("invalid alphabet size %d", alphabetSize)
	}

	es := rxast.New(alphabetSize)

	a := es.MkByte('a')
	b := es.MkByte('b')
	x := es.MkByte('x')

	concatAB := es.MkConcat([]rxast.Ref{a, b})
	orABA := es.MkOr([]rxast.Ref{a, b, a})
	andStarEmpty := es.MkAnd([]rxast.Ref{es.MkStar(a), rxast.RefEmptyString})
	notNotX := es.MkNot(es.MkNot(x))

	report := buildReport{
		AlphabetSize:  es.AlphabetSize(),
		AlphabetWords: es.AlphabetWords(),
		RecordCount:   es.Len(),
		Bytes:         es.Bytes(),
		ConcatAB:      uint32(concatAB),
		OrABA:         uint32(orABA),
		AndStarEmpty:  uint32(andStarEmpty),
		NotNotX:       uint32(notNotX),
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("alphabet: %d symbols (%d words)\n", report.AlphabetSize, report.AlphabetWords)
	fmt.Printf("records:  %d (%d bytes)\n", report.RecordCount, report.Bytes)
	fmt.Printf("concat(a,b)       = %d\n", report.ConcatAB)
	fmt.Printf("or(a,b,a)         = %d\n", report.OrABA)
	fmt.Printf("and(star(a), \"\")  = %d\n", report.AndStarEmpty)
	fmt.Printf("not(not(x)) == x  = %v\n", notNotX == x)
	return nil
}
