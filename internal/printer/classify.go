package printer

import (
	"bytes"
	"io"
	"os"

	"promptdump/internal/collector"
	"promptdump/internal/exclude"
)

// Class is the final visibility of one candidate file.
type Class int

const (
	// ClassInvisible files contribute nothing to the output.
	ClassInvisible Class = iota
	// ClassOmitted files are listed in the structure but their content is
	// not emitted.
	ClassOmitted
	// ClassIncluded files are listed with an index and emitted in full.
	ClassIncluded
)

// Classify maps a candidate to exactly one class. Forced exclusion is
// checked first and dominates soft exclusion.
func Classify(f collector.File, engine *exclude.Engine) Class {
	if engine.IsForcedExcluded(f.Path) {
		return ClassInvisible
	}
	if engine.IsExcluded(f.Path, f.Base) {
		return ClassOmitted
	}
	return ClassIncluded
}

// sniffLen is how much of a file the binary check reads.
const sniffLen = 8192

// isBinary reports whether the first few KiB of the file contain a NUL
// byte. Unreadable files are not treated as binary; the read error will
// surface later as an inline marker.
func isBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false
	}
	return bytes.IndexByte(buf[:n], 0) >= 0
}
