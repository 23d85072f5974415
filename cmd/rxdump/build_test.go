package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunBuildRejectsNonPositiveAlphabet(t *testing.T) {
	prevAlphabet, prevJSON := alphabetSize, jsonOut
	defer func() { alphabetSize, jsonOut = prevAlphabet, prevJSON }()

	alphabetSize = 0
	jsonOut = false
	require.Error(t, runBuild())
}

func TestRunBuildSucceedsWithDefaultAlphabet(t *testing.T) {
	prevAlphabet, prevJSON := alphabetSize, jsonOut
	defer func() { alphabetSize, jsonOut = prevAlphabet, prevJSON }()

	alphabetSize = 256
	jsonOut = true
	require.NoError(t, runBuild())
}
