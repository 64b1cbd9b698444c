package exclude

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Path carries the forms of a candidate path that rules may match against.
type Path struct {
	Abs string // normalized absolute path
	Rel string // base-relative form, "" when no base applies
}

// Rule is a single exclusion predicate over a candidate path.
type Rule interface {
	Matches(p Path) bool
}

// PrefixRule excludes a path equal to, or located under, an absolute prefix.
type PrefixRule struct {
	Prefix string
}

func (r PrefixRule) Matches(p Path) bool {
	if p.Abs == r.Prefix {
		return true
	}
	return strings.HasPrefix(p.Abs, r.Prefix+string(filepath.Separator))
}

// RegexRule excludes a path whose absolute form contains a regexp match.
// The expression is searched, not anchored.
type RegexRule struct {
	Pattern *regexp.Regexp
}

func (r RegexRule) Matches(p Path) bool {
	return r.Pattern.MatchString(p.Abs)
}

// SubstringRule excludes a path containing a literal fragment. The soft
// variant also inspects the base-relative form and the basename; the forced
// variant (AbsOnly) checks the absolute path alone.
type SubstringRule struct {
	Fragment string
	AbsOnly  bool
}

func (r SubstringRule) Matches(p Path) bool {
	if strings.Contains(p.Abs, r.Fragment) {
		return true
	}
	if r.AbsOnly {
		return false
	}
	if p.Rel != "" && strings.Contains(p.Rel, r.Fragment) {
		return true
	}
	return strings.Contains(filepath.Base(p.Abs), r.Fragment)
}
