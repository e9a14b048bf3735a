// Package langdetect maps source files to the grammars srcfix can parse.
// It combines file-extension lookup with go-enry content classification so
// extensionless scripts with a shebang are still recognized.
package langdetect

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language identifies a supported grammar.
type Language string

// Supported languages.
const (
	LangJavaScript Language = "javascript"
	LangGo         Language = "go"
	LangPython     Language = "python"
	LangUnknown    Language = ""
)

// byExtension maps known extensions to languages. Extension wins over
// content classification because it is what the author declared.
//
//nolint:gochecknoglobals // Static lookup table
var byExtension = map[string]Language{
	".js":  LangJavaScript,
	".mjs": LangJavaScript,
	".cjs": LangJavaScript,
	".jsx": LangJavaScript,
	".go":  LangGo,
	".py":  LangPython,
}

// byEnryName maps go-enry language names to supported languages.
//
//nolint:gochecknoglobals // Static lookup table
var byEnryName = map[string]Language{
	"JavaScript": LangJavaScript,
	"TypeScript": LangJavaScript, // close enough for the shared grammar subset
	"Go":         LangGo,
	"Python":     LangPython,
}

// Detect returns the language for a file, or LangUnknown when the file is
// not in a supported language.
func Detect(path string, content []byte) Language {
	if lang, ok := byExtension[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}

	if name, safe := enry.GetLanguageByShebang(content); safe {
		if lang, ok := byEnryName[name]; ok {
			return lang
		}
	}

	if name := enry.GetLanguage(filepath.Base(path), content); name != "" {
		if lang, ok := byEnryName[name]; ok {
			return lang
		}
	}

	return LangUnknown
}

// Extensions returns the file extensions srcfix processes by default.
func Extensions() []string {
	exts := make([]string, 0, len(byExtension))
	for ext := range byExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
