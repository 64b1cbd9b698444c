// Package printer classifies candidate files and renders the final
// concatenated text artifact.
package printer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"promptdump/internal/collector"
	"promptdump/internal/exclude"
	"promptdump/internal/lang"
	"promptdump/internal/logger"
)

const preamble = `Act as an experienced senior software engineer. Produce clean, complete,
production-ready code that follows current best practices.

Requirements:
- Code must be ready to copy-paste without modifications
- Use current, non-deprecated APIs and libraries
- Include error handling where appropriate
- Apply only the requested changes and nothing else

Comments policy:
- Good code documents itself; only comment complex logic or non-obvious decisions
- Never add placeholder comments marking what was changed

If the requirements are unclear, ask for clarification rather than guessing.`

// omittedMarker replaces the index of soft-excluded structure lines.
const omittedMarker = "[x]"

// Printer renders the output artifact for a classified candidate list.
type Printer struct {
	output        io.Writer
	log           logger.Logger
	showPreamble  bool
	showStructure bool
	treeMode      bool
	workers       int
}

// New creates a Printer with default settings: stdout, preamble and
// structure enabled, flat listing, sequential reads.
func New() *Printer {
	return &Printer{
		output:        os.Stdout,
		log:           logger.Noop{},
		showPreamble:  true,
		showStructure: true,
		workers:       1,
	}
}

// WithOutput sets the output destination.
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithLogger sets the diagnostic logger.
func (p *Printer) WithLogger(log logger.Logger) *Printer {
	if log != nil {
		p.log = log
	}
	return p
}

// WithPreamble toggles the instructional preamble and guidance blocks.
func (p *Printer) WithPreamble(enabled bool) *Printer {
	p.showPreamble = enabled
	return p
}

// WithStructure toggles the structure listing section.
func (p *Printer) WithStructure(enabled bool) *Printer {
	p.showStructure = enabled
	return p
}

// WithTree renders the structure listing as an ASCII tree instead of the
// flat indexed list.
func (p *Printer) WithTree(enabled bool) *Printer {
	p.treeMode = enabled
	return p
}

// WithWorkers bounds how many file reads may run in parallel. Values below
// one mean sequential. The output is byte-identical regardless.
func (p *Printer) WithWorkers(n int) *Printer {
	if n > 0 {
		p.workers = n
	}
	return p
}

// entry is one classified candidate.
type entry struct {
	file  collector.File
	rel   string
	class Class
	index int // 1-based, assigned only to included files
}

// Render classifies files (already deduplicated and sorted by the
// collector) and writes the complete artifact. Per-file read failures are
// embedded as inline markers; only write errors on the output are returned.
func (p *Printer) Render(files []collector.File, engine *exclude.Engine) error {
	entries := p.classify(files, engine)

	w := bufio.NewWriter(p.output)

	if p.showPreamble {
		fmt.Fprintf(w, "%s\n\n", preamble)
		p.writeGuidance(w, entries)
	}
	if p.showStructure {
		p.writeStructure(w, entries)
	}
	if err := p.writeContents(w, entries); err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("printer: writing output: %w", err)
	}
	return nil
}

// classify runs the binary pre-pass and assigns each surviving candidate
// its class and, for included files, a contiguous 1-based index.
func (p *Printer) classify(files []collector.File, engine *exclude.Engine) []entry {
	entries := make([]entry, 0, len(files))
	index := 0
	for _, f := range files {
		if isBinary(f.Path) {
			p.log.Debug("printer: dropping binary file %s", f.Path)
			continue
		}
		e := entry{file: f, rel: f.Rel(), class: Classify(f, engine)}
		switch e.class {
		case ClassInvisible:
			continue
		case ClassIncluded:
			index++
			e.index = index
		}
		entries = append(entries, e)
	}
	return entries
}

func (p *Printer) writeGuidance(w io.Writer, entries []entry) {
	var included []string
	for _, e := range entries {
		if e.class == ClassIncluded {
			included = append(included, e.rel)
		}
	}
	for _, block := range lang.GuidanceFor(included) {
		fmt.Fprintf(w, "%s\n\n", block)
	}
}

func (p *Printer) writeStructure(w io.Writer, entries []entry) {
	fmt.Fprint(w, "PROJECT STRUCTURE:\n")

	if p.treeMode {
		rels := make([]string, 0, len(entries))
		for _, e := range entries {
			rels = append(rels, e.rel)
		}
		for _, line := range renderTree(buildTree(rels)) {
			fmt.Fprintln(w, line)
		}
	} else {
		for _, e := range entries {
			if e.class == ClassOmitted {
				fmt.Fprintf(w, "%s %s\n", omittedMarker, e.rel)
			} else {
				fmt.Fprintf(w, "[%d] %s\n", e.index, e.rel)
			}
		}
	}
	fmt.Fprint(w, "\n")
}

func (p *Printer) writeContents(w io.Writer, entries []entry) error {
	var included []entry
	for _, e := range entries {
		if e.class == ClassIncluded {
			included = append(included, e)
		}
	}

	// Reads may run in parallel; emission stays in index order so the
	// output is deterministic either way.
	contents := make([]string, len(included))
	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, e := range included {
		i, e := i, e
		g.Go(func() error {
			contents[i] = p.readContent(e)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, e := range included {
		fmt.Fprintf(w, "[%d] %s:\n```\n%s\n```\n\n", e.index, e.rel, contents[i])
	}
	return nil
}

// readContent reads a file leniently: invalid UTF-8 is substituted, and a
// read failure becomes an inline marker instead of aborting the run.
func (p *Printer) readContent(e entry) string {
	data, err := os.ReadFile(e.file.Path)
	if err != nil {
		p.log.Warn("printer: cannot read %s: %v", e.rel, err)
		return fmt.Sprintf("<error reading file: %v>", err)
	}
	return strings.ToValidUTF8(string(data), "\uFFFD")
}
