package exclude

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_SoftPrefix(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "work", "proj")
	e := New([]string{base}, Options{SoftPaths: []string{"vendor"}}, nil)

	assert.True(t, e.IsExcluded(filepath.Join(base, "vendor"), base))
	assert.True(t, e.IsExcluded(filepath.Join(base, "vendor", "dep", "a.go"), base))
	assert.False(t, e.IsExcluded(filepath.Join(base, "vendored.go"), base), "prefix must stop at a separator")
	assert.False(t, e.IsExcluded(filepath.Join(base, "src", "a.go"), base))
}

func TestEngine_AbsolutePrefixUsedAsIs(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "work", "proj")
	other := filepath.Join(string(filepath.Separator), "elsewhere", "cache")
	e := New([]string{base}, Options{SoftPaths: []string{other}}, nil)

	assert.True(t, e.IsExcluded(filepath.Join(other, "x"), base))
	assert.False(t, e.IsExcluded(filepath.Join(base, "cache", "x"), base))
}

func TestEngine_RelativePrefixResolvesAgainstEveryBase(t *testing.T) {
	baseA := filepath.Join(string(filepath.Separator), "a")
	baseB := filepath.Join(string(filepath.Separator), "b")
	e := New([]string{baseA, baseB}, Options{SoftPaths: []string{"dist"}}, nil)

	assert.True(t, e.IsExcluded(filepath.Join(baseA, "dist", "x.js"), baseA))
	assert.True(t, e.IsExcluded(filepath.Join(baseB, "dist", "y.js"), baseB))
}

func TestEngine_Regex(t *testing.T) {
	base := t.TempDir()
	e := New([]string{base}, Options{
		SoftRegexps:  []string{`_generated\.go$`},
		ForceRegexps: []string{`\.lock$`},
	}, nil)

	assert.True(t, e.IsExcluded(filepath.Join(base, "api_generated.go"), base))
	assert.False(t, e.IsExcluded(filepath.Join(base, "api.go"), base))

	assert.True(t, e.IsForcedExcluded(filepath.Join(base, "a.lock")))
	assert.False(t, e.IsForcedExcluded(filepath.Join(base, "b.txt")))
}

func TestEngine_MalformedRegexDegradesToNoMatch(t *testing.T) {
	base := t.TempDir()
	e := New([]string{base}, Options{
		SoftRegexps:  []string{`([unclosed`},
		ForceRegexps: []string{`*invalid`},
	}, nil)

	// The bad patterns are dropped; nothing matches, nothing panics.
	assert.False(t, e.IsExcluded(filepath.Join(base, "anything.txt"), base))
	assert.False(t, e.IsForcedExcluded(filepath.Join(base, "anything.txt")))
}

func TestEngine_SoftSubstring(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "work", "proj")
	e := New([]string{base}, Options{SoftSubstrings: []string{"test"}}, nil)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "matches basename", path: filepath.Join(base, "src", "foo_test.py"), want: true},
		{name: "matches relative path component", path: filepath.Join(base, "tests", "foo.py"), want: true},
		{name: "no match", path: filepath.Join(base, "src", "foo.py"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.IsExcluded(tt.path, base))
		})
	}
}

func TestEngine_ForcedSubstringChecksAbsoluteOnly(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "work", "proj")
	e := New([]string{base}, Options{ForceSubstrings: []string{"secret"}}, nil)

	assert.True(t, e.IsForcedExcluded(filepath.Join(base, "config", "secrets.yaml")))
	assert.False(t, e.IsForcedExcluded(filepath.Join(base, "config", "app.yaml")))
}

func TestEngine_StrengthsAreIndependent(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "work", "proj")
	e := New([]string{base}, Options{
		SoftSubstrings:  []string{"draft"},
		ForceSubstrings: []string{"secret"},
	}, nil)

	draft := filepath.Join(base, "draft.md")
	assert.True(t, e.IsExcluded(draft, base))
	assert.False(t, e.IsForcedExcluded(draft))

	secret := filepath.Join(base, "secret.md")
	assert.True(t, e.IsForcedExcluded(secret))
	assert.False(t, e.IsExcluded(secret, base))
}

func TestEngine_EmptyRules(t *testing.T) {
	base := t.TempDir()
	e := New([]string{base}, Options{}, nil)
	require.False(t, e.IsExcluded(filepath.Join(base, "a.go"), base))
	require.False(t, e.IsForcedExcluded(filepath.Join(base, "a.go")))
}
