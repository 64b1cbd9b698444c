// Package lang maps file extensions to languages and languages to short
// prompt guidance blocks. Both tables are immutable configuration data.
package lang

import (
	"path"
	"sort"
	"strings"
)

var extensions = map[string]string{
	".c":     "C",
	".cc":    "C++",
	".cpp":   "C++",
	".cs":    "C#",
	".css":   "CSS",
	".go":    "Go",
	".h":     "C",
	".hpp":   "C++",
	".html":  "HTML",
	".java":  "Java",
	".js":    "JavaScript",
	".json":  "JSON",
	".jsx":   "JavaScript",
	".kt":    "Kotlin",
	".md":    "Markdown",
	".php":   "PHP",
	".py":    "Python",
	".rb":    "Ruby",
	".rs":    "Rust",
	".sh":    "Shell",
	".sql":   "SQL",
	".swift": "Swift",
	".toml":  "TOML",
	".ts":    "TypeScript",
	".tsx":   "TypeScript",
	".yaml":  "YAML",
	".yml":   "YAML",
}

var guidance = map[string]string{
	"Go":         "For Go code: follow standard gofmt formatting, return errors explicitly rather than panicking, and keep exported identifiers documented.",
	"JavaScript": "For JavaScript code: prefer const/let over var, use modern ES module syntax, and avoid deprecated browser APIs.",
	"Python":     "For Python code: follow PEP 8, use type hints on public functions, and prefer pathlib and f-strings over legacy equivalents.",
	"Rust":       "For Rust code: prefer iterator combinators over index loops, avoid unwrap() outside tests, and keep unsafe blocks minimal and documented.",
	"Shell":      "For shell scripts: target POSIX sh or declare bash explicitly, quote all variable expansions, and use set -euo pipefail where appropriate.",
	"TypeScript": "For TypeScript code: avoid the any type, keep strict mode assumptions, and model data with precise interfaces.",
}

// Detect returns the language name for a file path, or "" when unknown.
func Detect(file string) string {
	return extensions[strings.ToLower(path.Ext(file))]
}

// Guidance returns the prompt guidance block for a language, or "".
func Guidance(language string) string {
	return guidance[language]
}

// GuidanceFor collects the guidance blocks for the languages detected in
// files, each language once, in deterministic (sorted) order.
func GuidanceFor(files []string) []string {
	langs := make(map[string]struct{})
	for _, f := range files {
		if l := Detect(f); l != "" {
			if _, ok := guidance[l]; ok {
				langs[l] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(langs))
	for l := range langs {
		names = append(names, l)
	}
	sort.Strings(names)

	blocks := make([]string, 0, len(names))
	for _, l := range names {
		blocks = append(blocks, guidance[l])
	}
	return blocks
}
