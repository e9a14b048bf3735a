package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/yaklabco/srcfix/pkg/langdetect"
)

// TreeSitter parses supported languages with tree-sitter grammars.
// Unsupported files still produce a File with a line index so
// language-agnostic plugins can run; Root is left nil.
type TreeSitter struct{}

// New creates a tree-sitter backed parser.
func New() *TreeSitter {
	return &TreeSitter{}
}

// Parse implements Parser.
func (p *TreeSitter) Parse(ctx context.Context, path string, content []byte, version int64) (*File, error) {
	file := &File{
		Path:     path,
		Content:  content,
		Version:  version,
		Language: langdetect.Detect(path, content),
		Lines:    BuildLines(content),
	}

	grammar := grammarFor(file.Language)
	if grammar == nil {
		return file, nil
	}

	sp := sitter.NewParser()
	sp.SetLanguage(grammar)

	tree, err := sp.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	file.Tree = tree
	file.Root = tree.RootNode()
	return file, nil
}

// grammarFor returns the tree-sitter grammar for a language, nil when the
// language has no grammar wired in.
func grammarFor(lang langdetect.Language) *sitter.Language {
	switch lang {
	case langdetect.LangJavaScript:
		return javascript.GetLanguage()
	case langdetect.LangGo:
		return golang.GetLanguage()
	case langdetect.LangPython:
		return python.GetLanguage()
	default:
		return nil
	}
}
