package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/distance"
)

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const ukInput = "London to Dublin = 464\nLondon to Belfast = 518\nDublin to Belfast = 141\n"

func TestRun_Quiet(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, writeInput(t, ukInput), true, false, false))
	assert.Equal(t, "MIN: 605\nMAX: 982\n", out.String())
}

func TestRun_DumpThenResults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, writeInput(t, ukInput), false, true, false))

	s := out.String()
	assert.Contains(t, s, "cities (3)")
	assert.Contains(t, s, "\nMIN: 605\nMAX: 982\n")
	assert.Contains(t, s, "survey: 3 cities, 6 routes")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("fingerprint:")), bytes.Index(out.Bytes(), []byte("MIN:")))
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer

	err := run(&out, filepath.Join(t.TempDir(), "nope.txt"), true, false, false)
	require.ErrorIs(t, err, os.ErrNotExist)

	err = run(&out, writeInput(t, "London to Dublin 464\n"), true, false, false)
	require.ErrorIs(t, err, distance.ErrMalformedLine)

	err = run(&out, writeInput(t, "A to B = 1\nB to C = 2\n"), true, false, false)
	require.ErrorIs(t, err, distance.ErrIncompleteTable)
	assert.Empty(t, out.String())
}
