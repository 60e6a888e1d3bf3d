package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2note/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// discoverFiles finds all Markdown files to convert under inputPath, which
// may be a directory or a single file. Files whose base name contains one
// of the exclusion substrings (case-sensitive) are skipped without being
// read, and files this tool produced (.note.md) are never candidates.
// Directory walking is lexical, so the result order is deterministic.
func discoverFiles(inputPath string, excludes []string) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("resolving input: %w", err)
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdown(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		if fileutil.IsNoteOutput(inputPath) || isExcluded(inputPath, excludes) {
			return nil, nil
		}
		return []string{inputPath}, nil
	}

	var files []string
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) || fileutil.IsNoteOutput(path) {
			return nil
		}
		if isExcluded(path, excludes) {
			return nil
		}
		files = append(files, path)
		return nil
	})

	return files, err
}

// isExcluded reports whether the file's base name contains any exclusion
// substring.
func isExcluded(path string, excludes []string) bool {
	name := filepath.Base(path)
	for _, pattern := range excludes {
		if strings.Contains(name, pattern) {
			return true
		}
	}
	return false
}
