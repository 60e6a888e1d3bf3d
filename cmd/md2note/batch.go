package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	md2note "github.com/alnah/go-md2note"
	"github.com/alnah/go-md2note/internal/fileutil"
)

// filePermissions for written outputs: rw-r--r--.
const filePermissions = 0o644

// autoWorkerCap bounds auto-sized pools; conversion is cheap enough that
// more workers just fight over the disk.
const autoWorkerCap = 8

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteNote    = errors.New("failed to write converted file")
)

// Converter is the interface the batch driver needs from the library.
type Converter interface {
	Convert(ctx context.Context, input md2note.Input) (*md2note.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*md2note.Service)(nil)

// ConversionResult holds the outcome of a single file.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Written    bool
	Err        error
	Duration   time.Duration
}

// batchOptions groups settings shared across the batch.
type batchOptions struct {
	dryRun  bool
	workers int
}

// resolveWorkers turns the configured worker count into a pool size.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	if cpus := runtime.NumCPU(); cpus < autoWorkerCap {
		return cpus
	}
	return autoWorkerCap
}

// convertBatch processes files concurrently with a shared Service and a
// shared Report. Documents are independent; the Report is the only state
// that crosses file boundaries and its methods are mutex-guarded.
func convertBatch(ctx context.Context, svc Converter, files []string, opts batchOptions, report *md2note.Report) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := resolveWorkers(opts.workers)
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = ConversionResult{InputPath: files[idx], Err: err}
					report.MarkFailed(files[idx], err)
					continue
				}
				results[idx] = convertFile(ctx, svc, files[idx], opts, report)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile converts one document and, unless dry-running, writes the
// output next to the input. Failures are tallied in the report; diagnostics
// are accumulated either way.
func convertFile(ctx context.Context, svc Converter, inputPath string, opts batchOptions, report *md2note.Report) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  inputPath,
		OutputPath: fileutil.NoteOutputPath(inputPath),
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		report.MarkFailed(inputPath, result.Err)
		result.Duration = time.Since(start)
		return result
	}

	// An empty document converts to itself; the library sentinel is for
	// direct callers, not a batch failure.
	converted := &md2note.ConvertResult{}
	if len(content) > 0 {
		converted, err = svc.Convert(ctx, md2note.Input{
			Markdown: string(content),
			Name:     inputPath,
		})
		if err != nil {
			result.Err = err
			report.MarkFailed(inputPath, err)
			result.Duration = time.Since(start)
			return result
		}
	}

	report.Add(converted.Diagnostics...)

	if !opts.dryRun {
		// #nosec G306 -- converted documents are meant to be readable
		if err := os.WriteFile(result.OutputPath, []byte(converted.Markdown), filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteNote, err)
			report.MarkFailed(inputPath, result.Err)
			result.Duration = time.Since(start)
			return result
		}
		result.Written = true
	}

	report.MarkConverted()
	result.Duration = time.Since(start)
	return result
}
