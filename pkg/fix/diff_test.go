package fix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDiff_NoChanges(t *testing.T) {
	t.Parallel()

	content := []byte("line one\nline two\n")
	d := GenerateDiff(testPath, content, content)
	assert.Nil(t, d)
	assert.False(t, d.HasChanges())
}

func TestGenerateDiff_SingleLineChange(t *testing.T) {
	t.Parallel()

	original := []byte("let x=1\n")
	modified := []byte("let x=1;\n")

	d := GenerateDiff(testPath, original, modified)
	require.NotNil(t, d)
	assert.True(t, d.HasChanges())
	assert.Equal(t, 1, d.Additions)
	assert.Equal(t, 1, d.Deletions)
	require.Len(t, d.Hunks, 1)

	out := d.String()
	assert.Contains(t, out, "--- a/test.js")
	assert.Contains(t, out, "+++ b/test.js")
	assert.Contains(t, out, "-let x=1")
	assert.Contains(t, out, "+let x=1;")
}

func TestGenerateDiff_AddedLine(t *testing.T) {
	t.Parallel()

	original := []byte("one\nthree\n")
	modified := []byte("one\ntwo\nthree\n")

	d := GenerateDiff(testPath, original, modified)
	require.NotNil(t, d)
	assert.Equal(t, 1, d.Additions)
	assert.Equal(t, 0, d.Deletions)
	assert.Contains(t, d.String(), "+two")
}

func TestGenerateDiff_RemovedLine(t *testing.T) {
	t.Parallel()

	original := []byte("one\ntwo\nthree\n")
	modified := []byte("one\nthree\n")

	d := GenerateDiff(testPath, original, modified)
	require.NotNil(t, d)
	assert.Equal(t, 0, d.Additions)
	assert.Equal(t, 1, d.Deletions)
	assert.Contains(t, d.String(), "-two")
}

func TestGenerateDiff_ContextLines(t *testing.T) {
	t.Parallel()

	lines := make([]string, 0, 11)
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
		lines = append(lines, s)
	}
	original := []byte(strings.Join(lines, "\n") + "\n")

	modLines := append([]string(nil), lines...)
	modLines[5] = "CHANGED"
	modified := []byte(strings.Join(modLines, "\n") + "\n")

	d := GenerateDiff(testPath, original, modified)
	require.NotNil(t, d)
	require.Len(t, d.Hunks, 1)

	hunk := d.Hunks[0]
	// 3 context above, remove+add, 3 context below.
	assert.Equal(t, 3, hunk.OriginalStart)
	assert.Equal(t, 7, hunk.OriginalCount)
	assert.Equal(t, 7, hunk.ModifiedCount)
	assert.Len(t, hunk.Lines, 8)
}

func TestGenerateDiff_SeparateHunks(t *testing.T) {
	t.Parallel()

	lines := make([]string, 20)
	for i := range lines {
		lines[i] = strings.Repeat("x", i+1)
	}
	original := []byte(strings.Join(lines, "\n") + "\n")

	modLines := append([]string(nil), lines...)
	modLines[0] = "FIRST"
	modLines[19] = "LAST"
	modified := []byte(strings.Join(modLines, "\n") + "\n")

	d := GenerateDiff(testPath, original, modified)
	require.NotNil(t, d)
	assert.Len(t, d.Hunks, 2)
}

func TestGenerateDiff_EmptyToContent(t *testing.T) {
	t.Parallel()

	d := GenerateDiff(testPath, nil, []byte("new line\n"))
	require.NotNil(t, d)
	assert.Equal(t, 1, d.Additions)
	assert.Equal(t, 0, d.Deletions)
}

func TestDiff_String_Nil(t *testing.T) {
	t.Parallel()

	var d *Diff
	assert.Equal(t, "", d.String())
}
