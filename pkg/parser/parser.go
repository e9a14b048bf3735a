// Package parser turns document snapshots into the parsed file abstraction
// that plugins analyze. The fix engine itself never parses text; it hands
// parser.File values across the plugin protocol boundary.
package parser

import (
	"context"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/srcfix/pkg/langdetect"
)

// File is an immutable parsed view of one snapshot of a source file.
type File struct {
	// Path is the file path.
	Path string

	// Content is the snapshot text the file was parsed from.
	Content []byte

	// Version is the snapshot version the parse belongs to.
	Version int64

	// Language is the detected language, LangUnknown when unsupported.
	Language langdetect.Language

	// Lines is the per-line byte-offset index.
	Lines []LineInfo

	// Root is the syntax tree root, nil when the language is unsupported.
	Root *sitter.Node

	// Tree is the underlying tree-sitter tree. Kept so the nodes in Root
	// stay valid for the lifetime of the File.
	Tree *sitter.Tree
}

// Parser parses a snapshot's content into a File.
type Parser interface {
	Parse(ctx context.Context, path string, content []byte, version int64) (*File, error)
}

// LineInfo holds byte offsets for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where the newline characters begin.
	// Equals EndOffset for lines without a trailing newline.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// BuildLines constructs the line index. Handles LF and CRLF endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char != '\n' {
			continue
		}
		newlineStart := idx
		if idx > 0 && content[idx-1] == '\r' {
			newlineStart = idx - 1
		}
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}
	return lines
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	return len(f.Lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Columns count bytes. Returns (0, 0) when the offset is out of range.
func (f *File) LineAt(offset int) (int, int) {
	if offset < 0 || len(f.Lines) == 0 {
		return 0, 0
	}

	if offset >= len(f.Content) {
		last := f.Lines[len(f.Lines)-1]
		return len(f.Lines), offset - last.StartOffset + 1
	}

	idx := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].EndOffset > offset
	})
	if idx >= len(f.Lines) {
		idx = len(f.Lines) - 1
	}

	line := f.Lines[idx]
	if offset < line.StartOffset {
		return 0, 0
	}
	return idx + 1, offset - line.StartOffset + 1
}

// LineContent returns the content of a 1-based line, excluding the newline.
// Returns nil when the line number is out of range.
func (f *File) LineContent(line int) []byte {
	if line < 1 || line > len(f.Lines) {
		return nil
	}
	info := f.Lines[line-1]
	return f.Content[info.StartOffset:info.NewlineStart]
}
