package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"5", "0", "1", "4", "5"}, &buf))

	expected := "Bitmap: 5 bits, 1 blocks of 32 bits\n" +
		"ignored out-of-range index 5\n" +
		"\n" +
		"BLOCK  BITS          HEX         BINARY\n" +
		"0      0-4           0xC8000000  11001000000000000000000000000000\n"
	require.Equal(t, expected, buf.String())
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  string
	}{
		{"no args", nil, "missing bit count"},
		{"bad count", []string{"many"}, `invalid bit count "many"`},
		{"bad index", []string{"8", "-1"}, `invalid index "-1"`},
		{"count above max", []string{"0xFFFFFFFFFFFFFFFF", "1"}, "bit count 18446744073709551615 exceeds maximum of 4294967295"},
		{"count one past max", []string{"4294967296"}, "exceeds maximum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			var err error
			require.NotPanics(t, func() { err = run(tt.args, &buf) })
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.err)
			require.Empty(t, buf.String())
		})
	}
}
