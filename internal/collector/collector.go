// Package collector walks input paths and produces the candidate file list.
package collector

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"promptdump/internal/exclude"
	"promptdump/internal/gitroot"
	"promptdump/internal/ignore"
	"promptdump/internal/logger"
)

// File is one collected candidate: an absolute file path plus the base
// directory its display-relative path is computed against. Path always lies
// at or below Base.
type File struct {
	Path string
	Base string
}

// Rel returns the slash-separated display path of f relative to its base.
func (f File) Rel() string {
	rel, err := filepath.Rel(f.Base, f.Path)
	if err != nil {
		return filepath.ToSlash(f.Path)
	}
	return filepath.ToSlash(rel)
}

// Collector traverses input paths, pruning with ignore rules and the
// exclusion engine, and accumulates candidate files.
type Collector struct {
	engine *exclude.Engine
	log    logger.Logger
}

// New creates a Collector. A nil logger disables logging.
func New(engine *exclude.Engine, log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop{}
	}
	return &Collector{engine: engine, log: log}
}

// Collect walks every input path and returns the deduplicated candidate
// list, sorted ascending by absolute path. Soft-excluded files are retained
// (they still appear in the structure listing); directories matching any
// rule are pruned, so files below them never become candidates. A missing
// input path is a fatal error.
func (c *Collector) Collect(inputs []string) ([]File, error) {
	seen := make(map[string]struct{})
	var files []File

	add := func(f File) {
		if _, dup := seen[f.Path]; dup {
			return
		}
		seen[f.Path] = struct{}{}
		files = append(files, f)
	}

	for _, input := range inputs {
		abs, err := filepath.Abs(input)
		if err != nil {
			return nil, fmt.Errorf("collector: cannot resolve input path %q: %w", input, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("collector: cannot access input path %q: %w", input, err)
		}

		root := gitroot.Find(abs)
		base := root
		rules := &ignore.RuleSet{}
		if root != "" {
			rules, err = ignore.Load(filepath.Join(root, ".gitignore"))
			if err != nil {
				c.log.Warn("collector: cannot read .gitignore in %s: %v", root, err)
				rules = &ignore.RuleSet{}
			}
		} else if info.IsDir() {
			base = abs
		} else {
			base = filepath.Dir(abs)
		}
		c.log.Debug("collector: input %s (base %s, %d ignore patterns)", abs, base, rules.Len())

		if !info.IsDir() {
			if rel := relSlash(base, abs); !rules.Match(rel) {
				add(File{Path: abs, Base: base})
			}
			continue
		}

		if err := c.walk(abs, base, rules, add); err != nil {
			return nil, err
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func (c *Collector) walk(dir, base string, rules *ignore.RuleSet, add func(File)) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			c.log.Warn("collector: skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == dir {
			return nil
		}

		rel := relSlash(base, path)
		if hasGitSegment(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			// All three rule sources prune directories, soft rules included.
			if rules.Match(rel) || c.engine.IsForcedExcluded(path) || c.engine.IsExcluded(path, base) {
				c.log.Debug("collector: pruned directory %s", rel)
				return filepath.SkipDir
			}
			return nil
		}

		// Files are only filtered by ignore rules here; forced and soft
		// exclusion of files is decided at classification time.
		if rules.Match(rel) {
			c.log.Debug("collector: ignored file %s", rel)
			return nil
		}

		add(File{Path: path, Base: base})
		return nil
	})
}

func relSlash(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func hasGitSegment(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if part == ".git" {
			return true
		}
	}
	return false
}
