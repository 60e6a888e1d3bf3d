package main

import (
	"fmt"
	"time"

	md2note "github.com/alnah/go-md2note"
)

// maxShownPerSeverity caps how many diagnostics are listed per severity;
// the rest collapse into a count.
const maxShownPerSeverity = 10

// printResults writes per-file outcomes: failures to stderr, successes to
// stdout unless quiet.
func printResults(results []ConversionResult, flags *convertFlags, env *Environment) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if flags.common.quiet {
			continue
		}

		switch {
		case flags.common.verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		case !r.Written:
			fmt.Fprintf(env.Stdout, "[dry-run] %s -> %s\n", r.InputPath, r.OutputPath)
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}
}

// printDiagnostics renders the report's diagnostics grouped by severity.
// Warnings always show; info records only under --verbose. Collection is
// unconditional either way - verbosity is a rendering decision.
func printDiagnostics(report *md2note.Report, flags *convertFlags, env *Environment) {
	if flags.common.quiet {
		return
	}

	printSeverity(report, md2note.SeverityWarning, "Warnings", env)
	if flags.common.verbose {
		printSeverity(report, md2note.SeverityInfo, "Info", env)
	}
}

func printSeverity(report *md2note.Report, severity md2note.Severity, label string, env *Environment) {
	diags := report.BySeverity(severity)
	if len(diags) == 0 {
		return
	}

	fmt.Fprintf(env.Stdout, "\n%s (%d):\n", label, len(diags))
	for i, d := range diags {
		if i == maxShownPerSeverity {
			fmt.Fprintf(env.Stdout, "  ... and %d more\n", len(diags)-maxShownPerSeverity)
			break
		}
		fmt.Fprintf(env.Stdout, "  %s:%d %s\n", d.File, d.Line, d.Message)
	}
}

// printSummary writes the final converted/detected tally.
func printSummary(report *md2note.Report, flags *convertFlags, env *Environment) {
	if flags.common.quiet {
		return
	}

	counts := report.Counts()
	prefix := ""
	if flags.dryRun {
		prefix = "[dry-run] "
	}
	fmt.Fprintf(env.Stdout, "\n%sconverted %d/%d files", prefix, counts.Converted, counts.Detected)
	if counts.Failed > 0 {
		fmt.Fprintf(env.Stdout, ", %d failed", counts.Failed)
	}
	fmt.Fprintln(env.Stdout)
}
