package pipeline

import "regexp"

// footnoteSyntax matches a footnote reference [^id] or the start of a
// definition [^id]: — both warn the same way, so one pattern covers both.
var footnoteSyntax = regexp.MustCompile(`\[\^[^\]]+\]`)

// DetectFootnotes warns about footnote syntax without altering the text.
// note.com has no footnote support and no automatic rewrite is safe, so the
// author has to inline them by hand. One warning per affected line.
func DetectFootnotes(content string, c *Collector) string {
	return mapLines(content, func(num int, line string) string {
		if footnoteSyntax.MatchString(line) {
			c.Warn(num, "footnote syntax is not supported; inline it manually")
		}
		return line
	})
}
