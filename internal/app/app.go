// Package app wires the collector, exclusion engine and printer together
// for one run.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"promptdump/internal/collector"
	"promptdump/internal/config"
	"promptdump/internal/exclude"
	"promptdump/internal/gitroot"
	"promptdump/internal/logger"
	"promptdump/internal/printer"
)

// App executes a configured run.
type App struct {
	cfg *config.Config
	log *logger.Leveled
}

// New creates an App and its logger.
func New(cfg *config.Config) *App {
	level := logger.LevelInfo
	if cfg.Verbose {
		level = logger.LevelDebug
	} else if cfg.Quiet {
		level = logger.LevelWarn
	}
	return &App{
		cfg: cfg,
		log: logger.New(os.Stderr, level, cfg.UseColors),
	}
}

// Run collects, classifies and renders. It returns an error only for
// conditions with no sensible partial result, such as a missing input path.
func (a *App) Run() error {
	start := time.Now()

	bases, err := a.resolveBases()
	if err != nil {
		return err
	}

	engine := exclude.New(bases, exclude.Options{
		SoftPaths:       a.cfg.Exclude,
		SoftRegexps:     a.cfg.ExcludeRegex,
		SoftSubstrings:  a.cfg.ExcludeSubstring,
		ForcePaths:      a.cfg.ForceExclude,
		ForceRegexps:    a.cfg.ForceExcludeRegex,
		ForceSubstrings: a.cfg.ForceExcludeSubstring,
	}, a.log)

	files, err := collector.New(engine, a.log).Collect(a.cfg.Inputs)
	if err != nil {
		return err
	}
	a.log.Info("Collected %d candidate files from %d input(s).", len(files), len(a.cfg.Inputs))

	out, closeOut, err := a.openOutput()
	if err != nil {
		return err
	}
	defer closeOut()

	p := printer.New().
		WithOutput(out).
		WithLogger(a.log).
		WithPreamble(!a.cfg.NoPrompt).
		WithStructure(!a.cfg.NoStructure).
		WithTree(a.cfg.Tree).
		WithWorkers(a.cfg.Workers)

	if err := p.Render(files, engine); err != nil {
		return err
	}

	a.log.Info("Done in %v.", time.Since(start).Round(time.Millisecond))
	return nil
}

// resolveBases computes the base directory of every input the same way the
// collector does, so relative exclusion patterns anchor correctly.
func (a *App) resolveBases() ([]string, error) {
	var bases []string
	for _, input := range a.cfg.Inputs {
		abs, err := filepath.Abs(input)
		if err != nil {
			return nil, fmt.Errorf("app: cannot resolve input path %q: %w", input, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("app: cannot access input path %q: %w", input, err)
		}

		base := gitroot.Find(abs)
		if base == "" {
			if info.IsDir() {
				base = abs
			} else {
				base = filepath.Dir(abs)
			}
		}
		bases = append(bases, base)
	}
	return bases, nil
}

func (a *App) openOutput() (io.Writer, func(), error) {
	if a.cfg.OutputFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(a.cfg.OutputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("app: cannot create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
