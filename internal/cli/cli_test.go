package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, stdin string, args ...string) (int, string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	code, err := Run(append([]string{"diffcore"}, args...), &RunOptions{
		In:  strings.NewReader(stdin),
		Out: &out,
		Err: &errOut,
	})
	return code, out.String(), errOut.String(), err
}

func TestRun_Differ(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.txt", "A\nB\nC\nA\nB\nB\nA\n")
	newPath := writeFile(t, dir, "new.txt", "C\nB\nA\nB\nA\nC\n")

	code, out, _, err := run(t, "", "--label-old", "a", "--label-new", "b", oldPath, newPath)
	require.NoError(t, err)
	assert.Equal(t, ExitDiffer, code)
	assert.Equal(t, "--- a\n+++ b\n@@ -1,7 +1,6 @@\n-A\n-B\n C\n-A\n B\n+A\n B\n A\n+C\n", out)
}

func TestRun_DefaultLabelsAndContext(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.txt", "1\n2\n3\n4\n5\n")
	newPath := writeFile(t, dir, "new.txt", "1\n2\nthree\n4\n5\n")

	code, out, _, err := run(t, "", "-U", "0", oldPath, newPath)
	require.NoError(t, err)
	assert.Equal(t, ExitDiffer, code)
	assert.Equal(t, "--- "+oldPath+"\n+++ "+newPath+"\n@@ -3 +3 @@\n-3\n+three\n", out)
}

func TestRun_Same(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.txt", "x\ny\n")
	newPath := writeFile(t, dir, "new.txt", "x\ny\n")

	code, out, _, err := run(t, "", oldPath, newPath)
	require.NoError(t, err)
	assert.Equal(t, ExitSame, code)
	assert.Empty(t, out)
}

func TestRun_Stdin(t *testing.T) {
	dir := t.TempDir()
	newPath := writeFile(t, dir, "new.txt", "x\nz\n")

	code, out, _, err := run(t, "x\ny\n", "--label-old", "a", "--label-new", "b", "-", newPath)
	require.NoError(t, err)
	assert.Equal(t, ExitDiffer, code)
	assert.Equal(t, "--- a\n+++ b\n@@ -1,2 +1,2 @@\n x\n-y\n+z\n", out)
}

func TestRun_StdinDefaultLabel(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.txt", "x\n")

	code, out, _, err := run(t, "y\n", oldPath, "-")
	require.NoError(t, err)
	assert.Equal(t, ExitDiffer, code)
	assert.Equal(t, "--- "+oldPath+"\n+++ -\n@@ -1 +1 @@\n-x\n+y\n", out)
}

func TestRun_StdinLabelValue(t *testing.T) {
	dir := t.TempDir()
	newPath := writeFile(t, dir, "new.txt", "b\n")

	// The first "-" is the label; the second is OLD.
	code, out, _, err := run(t, "a\n", "--label-old=-", "--label-new", "b", "-", newPath)
	require.NoError(t, err)
	assert.Equal(t, ExitDiffer, code)
	assert.Equal(t, "--- -\n+++ b\n@@ -1 +1 @@\n-a\n+b\n", out)
}

func TestRun_StdinTwice(t *testing.T) {
	code, out, errOut, err := run(t, "x\n", "-", "-")
	require.Error(t, err)
	assert.Equal(t, ExitTrouble, code)
	assert.Contains(t, err.Error(), "only one of OLD and NEW")
	assert.Contains(t, errOut, "diffcore: ")
	assert.Empty(t, out)
}

func TestMarkStdinArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "positional", args: []string{"diffcore", "-", "b"}, want: []string{"diffcore", stdinArg, "b"}},
		{name: "after flag value", args: []string{"diffcore", "-U", "1", "a", "-"}, want: []string{"diffcore", "-U", "1", "a", stdinArg}},
		{name: "flag value kept", args: []string{"diffcore", "--label-new", "-", "a", "b"}, want: []string{"diffcore", "--label-new", "-", "a", "b"}},
		{name: "inline flag value", args: []string{"diffcore", "--label-new=x", "-", "b"}, want: []string{"diffcore", "--label-new=x", stdinArg, "b"}},
		{name: "after terminator", args: []string{"diffcore", "--", "-", "b"}, want: []string{"diffcore", "--", stdinArg, "b"}},
		{name: "program name untouched", args: []string{"-"}, want: []string{"-"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			orig := append([]string(nil), tc.args...)
			assert.Equal(t, tc.want, markStdinArgs(tc.args))
			assert.Equal(t, orig, tc.args)
		})
	}
}

func TestRun_SergiBackend(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.txt", "A\nB\nD\n")
	newPath := writeFile(t, dir, "new.txt", "A\nB\nC\nD\n")

	code, out, _, err := run(t, "", "--backend", "sergi", "--timeout", "1s", "--label-old", "a", "--label-new", "b", oldPath, newPath)
	require.NoError(t, err)
	assert.Equal(t, ExitDiffer, code)
	assert.Equal(t, "--- a\n+++ b\n@@ -1,3 +1,4 @@\n A\n B\n+C\n D\n", out)
}

func TestRun_Color(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.txt", "x\n")
	newPath := writeFile(t, dir, "new.txt", "y\n")

	code, out, _, err := run(t, "", "--color", "always", "--label-old", "a", "--label-new", "b", oldPath, newPath)
	require.NoError(t, err)
	assert.Equal(t, ExitDiffer, code)
	assert.Contains(t, out, "\x1b[31m-x\x1b[0m\n")
	assert.Contains(t, out, "\x1b[32m+y\x1b[0m\n")

	// A bytes.Buffer is not a terminal, so auto means no color.
	_, out, _, err = run(t, "", "--color", "auto", oldPath, newPath)
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestRun_Trouble(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "f.txt", "x\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing file", args: []string{path, filepath.Join(dir, "nope.txt")}, want: "no such file"},
		{name: "one argument", args: []string{path}, want: "expected 2 arguments"},
		{name: "bad color", args: []string{"--color", "pink", path, path}, want: "invalid --color"},
		{name: "bad backend", args: []string{"--backend", "patience", path, path}, want: "unknown backend"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errOut, err := run(t, "", tc.args...)
			require.Error(t, err)
			assert.Equal(t, ExitTrouble, code)
			assert.Contains(t, err.Error(), tc.want)
			assert.Contains(t, errOut, "diffcore: ")
		})
	}
}
