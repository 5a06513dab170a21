package runner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestFindPDFsWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, filepath.Join(dir, "a.pdf"))
	b := touch(t, filepath.Join(dir, "nested", "deeper", "b.PDF"))
	touch(t, filepath.Join(dir, "notes.txt"))

	files, err := FindPDFs([]string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b}, files)
}

func TestFindPDFsAcceptsExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, filepath.Join(dir, "statement.pdf"))

	files, err := FindPDFs([]string{a})
	require.NoError(t, err)
	assert.Equal(t, []string{a}, files)
}

func TestFindPDFsErrorsWhenNothingFound(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "notes.txt"))

	_, err := FindPDFs([]string{dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), dir)
}

func TestFindPDFsErrorsOnMissingPath(t *testing.T) {
	_, err := FindPDFs([]string{"/nonexistent/statements"})
	assert.Error(t, err)
}

func TestPrintReport(t *testing.T) {
	results := []FileResult{
		{File: "/in/aug.pdf", Bank: "dbs", Type: "credit", Transactions: 12, CSV: "/out/aug.csv"},
		{File: "/in/sep.pdf", Err: errors.New("no transactions found")},
	}

	var buf bytes.Buffer
	PrintReport(&buf, results)
	out := buf.String()

	assert.Contains(t, out, "Processed 2 file(s): 1 succeeded, 1 failed")
	assert.Contains(t, out, "aug.pdf")
	assert.Contains(t, out, "/out/aug.csv")
	assert.Contains(t, out, "sep.pdf: no transactions found")
}

func TestHasFailures(t *testing.T) {
	assert.False(t, HasFailures([]FileResult{{File: "a.pdf"}}))
	assert.True(t, HasFailures([]FileResult{
		{File: "a.pdf"},
		{File: "b.pdf", Err: errors.New("boom")},
	}))
}
