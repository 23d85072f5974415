package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	alphabetSize int
	jsonOut      bool
)

var rootCmd = &cobra.Command{
	Use:     "rxdump",
	Short:   "Exercise the rxast expression store",
	Long:    `rxdump drives the rxast expression store through a fixed set of smart-constructor calls and reports the resulting store statistics.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		IntVar(&alphabetSize, "alphabet", 256, "Alphabet size (number of byte symbols)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
