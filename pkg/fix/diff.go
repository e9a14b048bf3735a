package fix

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// Diff is a unified diff between the original and fixed content of one file.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks.
	Hunks []DiffHunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines removed.
	Deletions int
}

// DiffHunk is a single hunk in a unified diff.
type DiffHunk struct {
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
	Lines         []DiffLine
}

// DiffLineKind classifies a diff line.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged line.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line present only in the modified content.
	DiffLineAdd

	// DiffLineRemove is a line present only in the original content.
	DiffLineRemove
)

// DiffLine is one line of a hunk, without its +/-/space prefix.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// GenerateDiff creates a unified diff between original and modified content.
// Returns nil when the contents are identical.
func GenerateDiff(path string, original, modified []byte) *Diff {
	origLines := splitLines(original)
	modLines := splitLines(modified)

	ops := diffOps(origLines, modLines)

	hunks := buildHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineAdd:
				d.Additions++
			case DiffLineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges reports whether the diff contains any hunks.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders the diff in unified format.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineContext:
				fmt.Fprintf(&builder, " %s\n", line.Content)
			case DiffLineAdd:
				fmt.Fprintf(&builder, "+%s\n", line.Content)
			case DiffLineRemove:
				fmt.Fprintf(&builder, "-%s\n", line.Content)
			}
		}
	}
	return builder.String()
}

// splitLines splits content into lines without trailing newlines.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	s := strings.TrimSuffix(string(content), "\n")
	return strings.Split(s, "\n")
}

// diffOp is one step of the line-level edit script.
type diffOp struct {
	kind    DiffLineKind
	origIdx int    // valid for context and remove
	modIdx  int    // valid for context and add
	content string // the line text, without newline
}

// diffOps computes a line-level edit script using a classic LCS table.
// Lint targets are source files, so quadratic space is acceptable here.
func diffOps(orig, mod []string) []diffOp {
	n, m := len(orig), len(mod)

	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if orig[i] == mod[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var ops []diffOp
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case orig[i] == mod[j]:
			ops = append(ops, diffOp{kind: DiffLineContext, origIdx: i, modIdx: j, content: orig[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, diffOp{kind: DiffLineRemove, origIdx: i, content: orig[i]})
			i++
		default:
			ops = append(ops, diffOp{kind: DiffLineAdd, modIdx: j, content: mod[j]})
			j++
		}
	}
	for ; i < n; i++ {
		ops = append(ops, diffOp{kind: DiffLineRemove, origIdx: i, content: orig[i]})
	}
	for ; j < m; j++ {
		ops = append(ops, diffOp{kind: DiffLineAdd, modIdx: j, content: mod[j]})
	}
	return ops
}

// buildHunks groups the edit script into hunks with surrounding context.
func buildHunks(ops []diffOp) []DiffHunk {
	// Indices of ops that are changes.
	var changes []int
	for idx, op := range ops {
		if op.kind != DiffLineContext {
			changes = append(changes, idx)
		}
	}
	if len(changes) == 0 {
		return nil
	}

	var hunks []DiffHunk
	start := 0
	for start < len(changes) {
		// Extend the group while gaps between changes stay within the
		// combined context window.
		end := start
		for end+1 < len(changes) && changes[end+1]-changes[end] <= 2*contextLines {
			end++
		}

		lo := max(0, changes[start]-contextLines)
		hi := min(len(ops), changes[end]+contextLines+1)

		hunks = append(hunks, makeHunk(ops, lo, hi))
		start = end + 1
	}
	return hunks
}

// makeHunk builds a single hunk from ops[lo:hi]. Line numbers are 1-based,
// seeded from the first op that references each side.
func makeHunk(ops []diffOp, lo, hi int) DiffHunk {
	hunk := DiffHunk{OriginalStart: 1, ModifiedStart: 1}
	seenOrig, seenMod := false, false

	for _, op := range ops[lo:hi] {
		switch op.kind {
		case DiffLineContext:
			if !seenOrig {
				hunk.OriginalStart = op.origIdx + 1
				seenOrig = true
			}
			if !seenMod {
				hunk.ModifiedStart = op.modIdx + 1
				seenMod = true
			}
			hunk.OriginalCount++
			hunk.ModifiedCount++
		case DiffLineRemove:
			if !seenOrig {
				hunk.OriginalStart = op.origIdx + 1
				seenOrig = true
			}
			hunk.OriginalCount++
		case DiffLineAdd:
			if !seenMod {
				hunk.ModifiedStart = op.modIdx + 1
				seenMod = true
			}
			hunk.ModifiedCount++
		}
		hunk.Lines = append(hunk.Lines, DiffLine{Kind: op.kind, Content: op.content})
	}
	return hunk
}
