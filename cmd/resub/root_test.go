package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chabrovs/resub/pkg/pattern"
	"github.com/chabrovs/resub/pkg/walker"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCmd_EndToEnd(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.html")
	require.NoError(t, os.WriteFile(file, []byte("foo123"), 0o644))

	out, err := execute(t, root, `foo(\d+)`, `bar\1`, "-e", "html", "-v")
	require.NoError(t, err)

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "bar123", string(content))

	assert.Contains(t, out, "a.html")
	assert.Contains(t, out, "Summary:")
	assert.Contains(t, out, "1 files")
}

func TestRootCmd_NoMatchExitsClean(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.html")
	require.NoError(t, os.WriteFile(file, []byte("foo123"), 0o644))

	out, err := execute(t, root, "nomatch", "x")
	require.NoError(t, err)
	assert.Contains(t, out, "0 written")

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "foo123", string(content))
}

func TestRootCmd_VerboseControlsPerFileLines(t *testing.T) {
	writeFixture := func(t *testing.T) string {
		t.Helper()
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "a.html"), []byte("foo123"), 0o644))
		return root
	}

	t.Run("quiet_by_default", func(t *testing.T) {
		out, err := execute(t, writeFixture(t), `foo(\d+)`, `bar\1`)
		require.NoError(t, err)
		assert.NotContains(t, out, "(1 replacements, written)")
		assert.Contains(t, out, "Summary:")
	})

	t.Run("per_file_lines_with_verbose", func(t *testing.T) {
		out, err := execute(t, writeFixture(t), `foo(\d+)`, `bar\1`, "-v")
		require.NoError(t, err)
		assert.Contains(t, out, "(1 replacements, written)")
	})
}

func TestRootCmd_LiteralDollarReplacement(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("the price is fixed"), 0o644))

	_, err := execute(t, root, "price", "$99")
	require.NoError(t, err)

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "the $99 is fixed", string(content))
}

func TestRootCmd_BadPattern(t *testing.T) {
	_, err := execute(t, t.TempDir(), "foo(", "bar")
	require.Error(t, err)
	assert.ErrorIs(t, err, pattern.ErrBadPattern)
}

func TestRootCmd_MissingRoot(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing"), "foo", "bar")
	require.Error(t, err)
	assert.ErrorIs(t, err, walker.ErrInvalidRoot)
}

func TestRootCmd_IncompleteBatch(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("foo"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte{0xff, 0xfe}, 0o644))

	out, err := execute(t, root, "foo", "bar")
	require.ErrorIs(t, err, errIncompleteBatch)
	assert.Contains(t, out, "completed with 1 errors")

	content, readErr := os.ReadFile(filepath.Join(root, "a.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "bar", string(content))
}

func TestRootCmd_Version(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "resub ")
	assert.Contains(t, out, runtime.Version())
}

func TestRootCmd_MissingArguments(t *testing.T) {
	_, err := execute(t, "only-one-arg")
	require.Error(t, err)
}
