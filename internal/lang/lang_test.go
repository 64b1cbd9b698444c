package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{file: "main.go", want: "Go"},
		{file: "src/app.PY", want: "Python"},
		{file: "component.tsx", want: "TypeScript"},
		{file: "README", want: ""},
		{file: "archive.tar.gz", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Detect(tt.file), "file %q", tt.file)
	}
}

func TestGuidanceFor_DeduplicatedAndSorted(t *testing.T) {
	blocks := GuidanceFor([]string{"a.py", "b.py", "main.go", "x.bin"})

	assert.Len(t, blocks, 2)
	assert.Equal(t, Guidance("Go"), blocks[0])
	assert.Equal(t, Guidance("Python"), blocks[1])
}

func TestGuidanceFor_NoKnownLanguages(t *testing.T) {
	assert.Empty(t, GuidanceFor([]string{"data.bin", "notes"}))
}
