package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2note/internal/fileutil"
)

func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &Environment{Stdout: stdout, Stderr: stderr}, stdout, stderr
}

func TestRunConvertsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "# Title\n\nbody\n")

	env, stdout, _ := testEnv()
	err := run(context.Background(), &convertFlags{}, []string{dir}, env)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	outPath := filepath.Join(dir, "a.note.md")
	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if string(content) != "## Title\n\nbody\n" {
		t.Errorf("output = %q, want %q", content, "## Title\n\nbody\n")
	}

	if !strings.Contains(stdout.String(), "converted 1/1 files") {
		t.Errorf("summary missing from output: %q", stdout.String())
	}
}

func TestRunDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "# Title\n")

	env, stdout, _ := testEnv()
	err := run(context.Background(), &convertFlags{dryRun: true}, []string{dir}, env)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if fileutil.FileExists(filepath.Join(dir, "a.note.md")) {
		t.Error("dry run wrote an output file")
	}
	if !strings.Contains(stdout.String(), "[dry-run]") {
		t.Errorf("dry-run marker missing: %q", stdout.String())
	}
}

func TestRunPartialFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.md"), "# Good\n")
	writeFile(t, filepath.Join(dir, "bad.md"), "# Bad\n")
	// A directory squatting on the output path makes the write fail.
	if err := os.Mkdir(filepath.Join(dir, "bad.note.md"), 0o750); err != nil {
		t.Fatal(err)
	}

	env, _, stderr := testEnv()
	err := run(context.Background(), &convertFlags{}, []string{dir}, env)
	if !errors.Is(err, ErrPartialFailure) {
		t.Fatalf("run() error = %v, want ErrPartialFailure", err)
	}

	// The good file is still converted.
	if !fileutil.FileExists(filepath.Join(dir, "good.note.md")) {
		t.Error("good file was not converted")
	}
	if !strings.Contains(stderr.String(), "FAILED") {
		t.Errorf("failure not reported on stderr: %q", stderr.String())
	}
}

func TestRunEmptyFileConverts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "empty.md"), "")

	env, stdout, _ := testEnv()
	if err := run(context.Background(), &convertFlags{}, []string{dir}, env); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "empty.note.md"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("output = %q, want empty", content)
	}
	if !strings.Contains(stdout.String(), "converted 1/1 files") {
		t.Errorf("summary = %q, want converted 1/1", stdout.String())
	}
}

func TestRunWarningsRendered(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "a footnote[^1]\n")

	env, stdout, _ := testEnv()
	if err := run(context.Background(), &convertFlags{}, []string{dir}, env); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "Warnings (1):") {
		t.Errorf("warning block missing: %q", out)
	}
	if !strings.Contains(out, "footnote") {
		t.Errorf("warning message missing: %q", out)
	}
}

func TestRunInfoHiddenWithoutVerbose(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "# Title\n")

	env, stdout, _ := testEnv()
	if err := run(context.Background(), &convertFlags{}, []string{dir}, env); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if strings.Contains(stdout.String(), "Info (") {
		t.Errorf("info block rendered without --verbose: %q", stdout.String())
	}

	env2, stdout2, _ := testEnv()
	flags := &convertFlags{}
	flags.common.verbose = true
	if err := run(context.Background(), flags, []string{dir}, env2); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout2.String(), "Info (") {
		t.Errorf("info block missing with --verbose: %q", stdout2.String())
	}
}

func TestRunExcludedFileSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "README.md"), "# Readme\n")
	writeFile(t, filepath.Join(dir, "post.md"), "# Post\n")

	env, stdout, _ := testEnv()
	flags := &convertFlags{excludes: []string{"README"}}
	if err := run(context.Background(), flags, []string{dir}, env); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if fileutil.FileExists(filepath.Join(dir, "README.note.md")) {
		t.Error("excluded file was converted")
	}
	if strings.Contains(stdout.String(), "README") {
		t.Errorf("excluded file appears in report: %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "converted 1/1 files") {
		t.Errorf("summary = %q, want converted 1/1", stdout.String())
	}
}

func TestRunNoInput(t *testing.T) {
	env, _, _ := testEnv()
	err := run(context.Background(), &convertFlags{}, nil, env)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("run() error = %v, want ErrNoInput", err)
	}
}

func TestRunMissingDirectoryIsFatal(t *testing.T) {
	env, _, _ := testEnv()
	err := run(context.Background(), &convertFlags{}, []string{filepath.Join(t.TempDir(), "missing")}, env)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("run() error = %v, want os.ErrNotExist", err)
	}
}

func TestRunNoFilesFound(t *testing.T) {
	dir := t.TempDir()
	env, stdout, _ := testEnv()
	if err := run(context.Background(), &convertFlags{}, []string{dir}, env); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "no markdown files found") {
		t.Errorf("output = %q", stdout.String())
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "skipme.md"), "# Skip\n")
	writeFile(t, filepath.Join(dir, "keep.md"), "# Keep\n")

	cfgPath := filepath.Join(t.TempDir(), "md2note.yaml")
	cfg := "input:\n  defaultDir: " + dir + "\nexclude:\n  - skipme\nconvert:\n  dryRun: true\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	env, stdout, _ := testEnv()
	flags := &convertFlags{}
	flags.common.config = cfgPath
	if err := run(context.Background(), flags, nil, env); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if fileutil.FileExists(filepath.Join(dir, "keep.note.md")) {
		t.Error("config dryRun ignored")
	}
	if !strings.Contains(stdout.String(), "converted 1/1 files") {
		t.Errorf("summary = %q, want converted 1/1 (skipme excluded)", stdout.String())
	}
}
