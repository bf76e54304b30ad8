package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func sqliteArgs(t *testing.T) []string {
	t.Helper()
	return []string{"--driver", "sqlite", "--dsn", filepath.Join(t.TempDir(), "bookctl.db")}
}

func TestValidateCmd(t *testing.T) {
	out, err := run(t, "validate", "0-306-40615-2", "978-0-306-40615-7")
	require.NoError(t, err)
	assert.Contains(t, out, "0-306-40615-2\t0306406152\tISBN-10")
	assert.Contains(t, out, "9780306406157\tISBN-13")

	out, err = run(t, "validate", "0306406152", "0306406153")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "0306406153\t0306406153\tinvalid")
}

func TestISBNCommands_SQLite(t *testing.T) {
	db := sqliteArgs(t)
	with := func(args ...string) []string { return append(append([]string{}, db...), args...) }

	out, err := run(t, with("init-db")...)
	require.NoError(t, err)
	assert.Contains(t, out, "books_info ready (sqlite)")

	out, err = run(t, with("isbn", "set", "42", "0-306-40615-2")...)
	require.NoError(t, err)
	assert.Contains(t, out, "record 42: saved")

	out, err = run(t, with("isbn", "get", "42")...)
	require.NoError(t, err)
	assert.Equal(t, "0306406152\n", out)

	_, err = run(t, with("isbn", "set", "42", "0306406153")...)
	assert.ErrorContains(t, err, "not a valid")

	out, err = run(t, with("isbn", "get", "42")...)
	require.NoError(t, err)
	assert.Equal(t, "0306406152\n", out)

	_, err = run(t, with("isbn", "set", "43", "9780306406157")...)
	require.NoError(t, err)

	out, err = run(t, with("list")...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "42")
	assert.Contains(t, lines[2], "9780306406157")
	assert.Equal(t, "2 of 2 rows", lines[3])

	out, err = run(t, with("isbn", "delete", "42")...)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted")

	out, err = run(t, with("isbn", "delete", "42")...)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to delete")
}

func TestISBNCommands_RejectBadRecordID(t *testing.T) {
	_, err := run(t, append(sqliteArgs(t), "isbn", "get", "-3")...)
	assert.ErrorContains(t, err, "positive integer")
}

func TestLookupCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ISBN:9780306406157":{"title":"Reliability","authors":[{"name":"A. Author"}],"publishers":[{"name":"Plenum"}]}}`))
	}))
	defer srv.Close()

	out, err := run(t, "lookup", "--openlibrary-url", srv.URL, "978-0-306-40615-7")
	require.NoError(t, err)
	assert.Contains(t, out, "Title:      Reliability")
	assert.Contains(t, out, "Publishers: Plenum")

	_, err = run(t, "lookup", "--openlibrary-url", srv.URL, "12345")
	assert.ErrorContains(t, err, "not a valid")
}
