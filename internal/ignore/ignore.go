// Package ignore implements approximate .gitignore matching.
//
// The semantics are deliberately reduced: patterns are matched in isolation
// with a logical OR, negation rules ("!...") are parsed but never re-include
// anything, and only a single ignore file is consulted. Nested ignore files,
// "**" globstars and negation precedence are out of scope.
package ignore

import (
	"bufio"
	"os"
	"path"
	"strings"

	"github.com/danwakefield/fnmatch"
)

// RuleSet holds the ordered patterns of one ignore file.
type RuleSet struct {
	patterns []string
}

// Load reads an ignore file. A missing file yields an empty set, not an
// error; any other read failure is returned.
func Load(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &RuleSet{}, nil
		}
		return nil, err
	}
	defer f.Close()

	rs := &RuleSet{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rs.patterns = append(rs.patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rs, nil
}

// FromPatterns builds a RuleSet from already-collected pattern lines.
func FromPatterns(patterns []string) *RuleSet {
	rs := &RuleSet{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}
		rs.patterns = append(rs.patterns, p)
	}
	return rs
}

// Len returns the number of loaded patterns.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.patterns)
}

// Match reports whether relPath matches any pattern. relPath must be
// slash-separated and relative to the directory the ignore file lives in.
// The same check is used for files and directories; matching a directory
// stops traversal into it.
func (rs *RuleSet) Match(relPath string) bool {
	if rs == nil || len(rs.patterns) == 0 || relPath == "" || relPath == "." {
		return false
	}

	for _, pattern := range rs.patterns {
		// Negation rules never re-include here.
		if strings.HasPrefix(pattern, "!") {
			continue
		}

		if strings.HasSuffix(pattern, "/") {
			// Directory rule: match the path as a directory prefix.
			dirPath := relPath + "/"
			if fnmatch.Match(pattern, dirPath, 0) || strings.HasPrefix(dirPath, pattern) {
				return true
			}
			continue
		}

		if fnmatch.Match(pattern, relPath, 0) {
			return true
		}

		// Rules without a slash also match the basename at any depth.
		if !strings.Contains(pattern, "/") && fnmatch.Match(pattern, path.Base(relPath), 0) {
			return true
		}
	}
	return false
}
