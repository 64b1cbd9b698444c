// Package cli defines the command-line surface.
package cli

import (
	"github.com/spf13/cobra"

	"promptdump/internal/app"
	"promptdump/internal/config"
)

// New builds the root command.
func New() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "promptdump",
		Short: "Concatenate a project's files into a single language-model prompt",
		Long: `promptdump walks the given paths, filters files with .gitignore-style and
user-supplied exclusion rules, and writes one concatenated text artifact:
an instructional preamble, a structure listing, and the file contents.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Finalize()
			return app.New(cfg).Run()
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&cfg.Inputs, "input", "i", nil, "input file or directory (repeatable, default: current directory)")
	f.StringArrayVarP(&cfg.Exclude, "exclude", "e", nil, "soft-exclude path or prefix: listed but content omitted (repeatable)")
	f.StringArrayVar(&cfg.ExcludeRegex, "exclude-regex", nil, "soft-exclude paths matching a regular expression (repeatable)")
	f.StringArrayVar(&cfg.ExcludeSubstring, "exclude-match", nil, "soft-exclude paths containing a substring (repeatable)")
	f.StringArrayVar(&cfg.ForceExclude, "force-exclude", nil, "drop path or prefix from the output entirely (repeatable)")
	f.StringArrayVar(&cfg.ForceExcludeRegex, "force-exclude-regex", nil, "drop paths matching a regular expression (repeatable)")
	f.StringArrayVar(&cfg.ForceExcludeSubstring, "force-exclude-match", nil, "drop paths containing a substring (repeatable)")
	f.BoolVar(&cfg.NoPrompt, "no-prompt", false, "suppress the instructional preamble")
	f.BoolVar(&cfg.NoStructure, "no-structure", false, "suppress the structure listing")
	f.BoolVar(&cfg.Tree, "tree", false, "render the structure listing as an ASCII tree")
	f.StringVarP(&cfg.OutputFile, "output", "o", "", "write to a file instead of stdout")
	f.IntVar(&cfg.Workers, "workers", 1, "max parallel file reads (output is identical regardless)")
	f.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	f.BoolVarP(&cfg.Quiet, "quiet", "q", false, "suppress informational logging")
	f.BoolVar(&cfg.NoColor, "no-color", false, "disable colored logging")

	return cmd
}
