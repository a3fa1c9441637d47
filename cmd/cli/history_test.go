package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoryAddAndList(t *testing.T) {
	h, err := newHistory(filepath.Join(t.TempDir(), "history"), 3)
	require.NoError(t, err)

	require.True(t, h.add("set 1"))
	require.False(t, h.add("set 1"), "repeat of last command is dropped")
	require.False(t, h.add("   "), "blank command is dropped")
	require.True(t, h.add("  set 2 "))
	require.True(t, h.add("set 3"))
	require.True(t, h.add("set 4"))

	require.Equal(t, []string{"set 2", "set 3", "set 4"}, h.list(0))
	require.Equal(t, []string{"set 4"}, h.list(1))
	require.Equal(t, []string{"set 2", "set 3", "set 4"}, h.list(10))
}

func TestHistorySaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h, err := newHistory(path, 10)
	require.NoError(t, err)
	h.add("new 64")
	h.add("set 3")
	require.NoError(t, h.save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new 64\nset 3\n", string(data))

	reloaded, err := newHistory(path, 10)
	require.NoError(t, err)
	require.Equal(t, []string{"new 64", "set 3"}, reloaded.list(0))
}

func TestHistoryMissingFile(t *testing.T) {
	h, err := newHistory(filepath.Join(t.TempDir(), "does-not-exist"), 10)
	require.NoError(t, err)
	require.Empty(t, h.list(0))
}
