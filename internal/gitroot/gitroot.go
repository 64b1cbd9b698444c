// Package gitroot locates the enclosing git repository for a path.
package gitroot

import (
	"os"
	"path/filepath"
)

// Find returns the nearest ancestor directory of path that contains a .git
// directory, or "" if there is none. If path is a file, the search starts
// from its containing directory. The lookup never fails; unreadable or
// missing paths simply yield "".
func Find(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}

	dir := abs
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		marker := filepath.Join(dir, ".git")
		if info, err := os.Stat(marker); err == nil && info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
