package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across runs.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for the md2note command.
type convertFlags struct {
	common   commonFlags
	dryRun   bool
	workers  int
	excludes []string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show failures")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "surface info-level diagnostics and timing")
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("md2note", flag.ContinueOnError)
	f := &convertFlags{}

	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "compute conversions but write nothing")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringArrayVar(&f.excludes, "exclude", nil, "skip files whose name contains this substring (repeatable)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the command usage to w.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `md2note %s - convert Markdown files to note.com dialect

Usage:
  md2note [flags] <directory|file.md>

Converts every Markdown file under the directory and writes X.note.md next
to X.md. A dry run computes everything, including the conversion report,
without writing files.

Flags:
%s`, Version, fs.FlagUsages())
}
