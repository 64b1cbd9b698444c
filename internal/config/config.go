// Package config holds the resolved settings for one run.
package config

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Config collects every knob of a run. It is populated from command-line
// flags and treated as read-only afterwards.
type Config struct {
	// Inputs are the files or directories to collect. Defaults to ".".
	Inputs []string

	// Soft exclusion rules: hide content, keep the path listed.
	Exclude          []string
	ExcludeRegex     []string
	ExcludeSubstring []string

	// Forced exclusion rules: drop the path from the output entirely.
	ForceExclude          []string
	ForceExcludeRegex     []string
	ForceExcludeSubstring []string

	// Output shaping.
	NoPrompt    bool
	NoStructure bool
	Tree        bool
	OutputFile  string
	Workers     int

	// Logging.
	Verbose bool
	Quiet   bool
	NoColor bool

	UseColors bool
}

// Finalize applies defaults and derived settings after flag parsing.
func (c *Config) Finalize() {
	if len(c.Inputs) == 0 {
		c.Inputs = []string{"."}
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())
}
