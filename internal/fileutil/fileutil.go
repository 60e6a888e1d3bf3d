// Package fileutil provides file and path helpers for the converter.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// noteSuffix marks a file this tool produced.
const noteSuffix = ".note.md"

// NoteOutputPath derives the output path for a converted document: X.md
// becomes X.note.md in the same directory.
func NoteOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + noteSuffix
}

// IsNoteOutput reports whether the path names a file this tool produced.
// Discovery skips these so outputs are never converted again.
func IsNoteOutput(path string) bool {
	return strings.HasSuffix(filepath.Base(path), noteSuffix)
}

// IsMarkdown reports whether the path has a Markdown extension.
func IsMarkdown(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
