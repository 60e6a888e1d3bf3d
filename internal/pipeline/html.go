package pipeline

import (
	"regexp"
	"strings"
)

var (
	// A complete HTML comment within one line.
	htmlComment = regexp.MustCompile(`<!--.*?-->`)

	// A well-formed HTML tag: open, close, or self-closing. The tag name
	// must follow the angle bracket directly, so math text such as
	// \langle or a < b is never mistaken for markup.
	htmlTag = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9-]*(?:\s[^<>]*)?/?>`)

	// Start of a comment left unclosed on its line.
	htmlCommentOpen = regexp.MustCompile(`<!--.*$`)

	// End of a comment opened on an earlier line.
	htmlCommentClose = regexp.MustCompile(`^.*?-->`)
)

// StripHTML removes HTML comments silently and deletes well-formed HTML
// tags while keeping the text between them, warning once per line that had
// tags removed. note.com renders raw HTML as literal text, so leaving the
// markup in place would be worse than dropping it. Fenced code blocks are
// untouched.
//
// Comment removal is whole: a line left empty after comment stripping is
// dropped from the output instead of surviving as a blank line, so the
// pass keeps its own line loop rather than using mapLines.
func StripHTML(content string, c *Collector) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	inFence := false
	inComment := false

	for num, line := range lines {
		if !inComment && fencedCodeBlock.MatchString(line) {
			inFence = !inFence
			out = append(out, line)
			continue
		}
		if inFence {
			out = append(out, line)
			continue
		}

		hadComment := false
		if inComment {
			if !htmlCommentClose.MatchString(line) {
				continue
			}
			line = htmlCommentClose.ReplaceAllString(line, "")
			inComment = false
			hadComment = true
		}

		if htmlComment.MatchString(line) {
			line = htmlComment.ReplaceAllString(line, "")
			hadComment = true
		}
		if htmlCommentOpen.MatchString(line) {
			line = htmlCommentOpen.ReplaceAllString(line, "")
			inComment = true
			hadComment = true
		}

		if htmlTag.MatchString(line) {
			c.Warn(num+1, "unsupported HTML tag removed")
			line = htmlTag.ReplaceAllString(line, "")
		}

		if hadComment && strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
