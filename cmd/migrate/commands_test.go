package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_UnknownCommand(t *testing.T) {
	err := run(nil, "sideways", t.TempDir(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}

func TestRun_CreateRequiresName(t *testing.T) {
	assert.ErrorIs(t, run(nil, "create", t.TempDir(), ""), errNameRequired)
}

func TestRun_CreateWritesSQLFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(nil, "create", dir, "add_isbn_index"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_add_isbn_index.sql"))

	b, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(b), "-- +goose Up")
}
