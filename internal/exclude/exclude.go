// Package exclude implements the user-supplied exclusion rule engine.
//
// Rules come in two strengths. Soft rules keep a path visible in the
// structure listing but omit its content; forced rules remove it from the
// output entirely. Each strength accepts three matching kinds: exact
// path/prefix, regular expression, and plain substring. Within a strength
// the kinds reduce with a logical OR.
package exclude

import (
	"path/filepath"
	"regexp"

	"promptdump/internal/logger"
)

// Options enumerates the raw rule strings for all six buckets.
type Options struct {
	SoftPaths       []string
	SoftRegexps     []string
	SoftSubstrings  []string
	ForcePaths      []string
	ForceRegexps    []string
	ForceSubstrings []string
}

// Engine answers exclusion queries for candidate paths.
type Engine struct {
	soft   []Rule
	forced []Rule
	log    logger.Logger
}

// New builds an Engine. Relative path patterns are resolved against every
// base directory; absolute patterns are used as-is. A pattern that fails to
// compile as a regexp is logged and degrades to a rule that never matches,
// so one bad pattern cannot abort a run.
func New(bases []string, opts Options, log logger.Logger) *Engine {
	if log == nil {
		log = logger.Noop{}
	}
	e := &Engine{log: log}
	e.soft = e.compile(bases, opts.SoftPaths, opts.SoftRegexps, opts.SoftSubstrings, false)
	e.forced = e.compile(bases, opts.ForcePaths, opts.ForceRegexps, opts.ForceSubstrings, true)
	return e
}

func (e *Engine) compile(bases, paths, regexps, substrings []string, forced bool) []Rule {
	var rules []Rule

	for _, p := range paths {
		for _, prefix := range resolvePrefixes(p, bases) {
			rules = append(rules, PrefixRule{Prefix: prefix})
		}
	}

	for _, expr := range regexps {
		re, err := regexp.Compile(expr)
		if err != nil {
			e.log.Warn("exclude: invalid regexp %q ignored: %v", expr, err)
			continue
		}
		rules = append(rules, RegexRule{Pattern: re})
	}

	for _, s := range substrings {
		if s == "" {
			continue
		}
		rules = append(rules, SubstringRule{Fragment: s, AbsOnly: forced})
	}

	return rules
}

// resolvePrefixes turns one user pattern into the absolute prefixes it
// covers. An absolute pattern stands alone; a relative one is anchored at
// every base directory.
func resolvePrefixes(pattern string, bases []string) []string {
	if filepath.IsAbs(pattern) {
		return []string{filepath.Clean(pattern)}
	}
	prefixes := make([]string, 0, len(bases))
	for _, base := range bases {
		prefixes = append(prefixes, filepath.Join(base, pattern))
	}
	return prefixes
}

// IsExcluded reports whether abs matches any soft rule. base is the
// directory relative paths are displayed against; it feeds substring rules.
func (e *Engine) IsExcluded(abs, base string) bool {
	return matchAny(e.soft, pathInfo(abs, base))
}

// IsForcedExcluded reports whether abs matches any forced rule.
func (e *Engine) IsForcedExcluded(abs string) bool {
	return matchAny(e.forced, Path{Abs: abs})
}

func matchAny(rules []Rule, p Path) bool {
	for _, r := range rules {
		if r.Matches(p) {
			return true
		}
	}
	return false
}

func pathInfo(abs, base string) Path {
	p := Path{Abs: abs}
	if base != "" {
		if rel, err := filepath.Rel(base, abs); err == nil {
			p.Rel = rel
		}
	}
	return p
}
