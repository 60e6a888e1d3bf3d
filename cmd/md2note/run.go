package main

import (
	"context"
	"errors"
	"fmt"

	md2note "github.com/alnah/go-md2note"
	"github.com/alnah/go-md2note/internal/config"
)

// ErrPartialFailure marks a run where some files failed but others were
// still processed.
var ErrPartialFailure = errors.New("some files failed to convert")

// run executes a full batch: config, discovery, conversion, report.
func run(ctx context.Context, flags *convertFlags, args []string, env *Environment) error {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(args, cfg)
	if err != nil {
		return err
	}

	// A bad root path is fatal: nothing has been processed yet.
	files, err := discoverFiles(inputPath, cfg.Exclude)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(env.Stdout, "no markdown files found in %s\n", inputPath)
		return nil
	}

	report := &md2note.Report{}
	report.MarkDetected(len(files))

	svc := md2note.New()
	results := convertBatch(ctx, svc, files, batchOptions{
		dryRun:  cfg.Convert.DryRun,
		workers: cfg.Convert.Workers,
	}, report)

	printResults(results, flags, env)
	printDiagnostics(report, flags, env)
	printSummary(report, flags, env)

	if counts := report.Counts(); counts.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrPartialFailure, counts.Failed, counts.Detected)
	}
	return nil
}

// mergeFlags folds CLI flags into the config; flags win over file values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.dryRun {
		cfg.Convert.DryRun = true
	}
	if flags.common.verbose {
		cfg.Convert.Verbose = true
	}
	if flags.workers != 0 {
		cfg.Convert.Workers = flags.workers
	}
	cfg.Exclude = append(cfg.Exclude, flags.excludes...)

	// Rendering reads the flags, so reflect config defaults back.
	flags.dryRun = cfg.Convert.DryRun
	flags.common.verbose = cfg.Convert.Verbose
}

// resolveInputPath picks the input from positional args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}
