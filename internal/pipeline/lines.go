package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns shared by the line-oriented passes.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Fenced code block delimiter (backticks or tildes)
	fencedCodeBlock = regexp.MustCompile("^(```|~~~)")
)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// mapLines rewrites content line by line, skipping lines inside fenced code
// blocks. The callback receives the 1-based line number and the line without
// its terminator, and returns the replacement line.
func mapLines(content string, rewrite func(num int, line string) string) string {
	lines := strings.Split(content, "\n")
	inCodeBlock := false

	for i, line := range lines {
		if fencedCodeBlock.MatchString(line) {
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			continue
		}
		lines[i] = rewrite(i+1, line)
	}

	return strings.Join(lines, "\n")
}
