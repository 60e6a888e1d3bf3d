package pipeline

import (
	"regexp"
	"strings"
)

// Patterns for the operator-line cleanup inside $$ blocks.
var (
	// A $$...$$ region, inline or display, possibly spanning lines.
	displayBlock = regexp.MustCompile(`(?s)\$\$\s*\n?(.*?)\n?\s*\$\$`)

	// A line holding nothing but a bare operator.
	operatorOnlyLine = regexp.MustCompile(`^\s*[=≈≃≡+\-]\s*$`)

	// A line holding nothing but a LaTeX comparison macro.
	latexOperatorOnlyLine = regexp.MustCompile(`^\s*\\(simeq|approx|equiv|leq|geq|neq|le|ge|ne)\s*$`)

	// A continuation line starting with a sign operator.
	leadingOperatorLine = regexp.MustCompile(`^\s*[+\-]\s+\S`)
)

// TranslateMath rewrites the four source math delimiter conventions into
// note.com's two: inline math becomes $${...}$$ and display math becomes a
// $$ block with the content on its own lines. Spans already in note form
// are opaque: they are copied verbatim and never re-wrapped, and inline
// rules do not scan inside a display region. A lone dollar sign that never
// closes stays literal text. Each rewrite emits an info diagnostic at the
// line where the span starts.
func TranslateMath(content string, c *Collector) string {
	var out strings.Builder
	out.Grow(len(content))

	line := 1
	inFence := false

	for i := 0; i < len(content); {
		if i == 0 || content[i-1] == '\n' {
			l := lineAt(content, i)
			if fencedCodeBlock.MatchString(l) {
				inFence = !inFence
				out.WriteString(l)
				i += len(l)
				continue
			}
			if inFence && len(l) > 0 {
				out.WriteString(l)
				i += len(l)
				continue
			}
		}

		rest := content[i:]

		switch {
		case strings.HasPrefix(rest, "$$"):
			// Already in target form: copy the whole span untouched.
			span, ok := noteMathSpan(rest)
			if !ok {
				span = "$$"
			}
			out.WriteString(span)
			line += strings.Count(span, "\n")
			i += len(span)

		case strings.HasPrefix(rest, "$`"):
			end := strings.Index(rest[2:], "`$")
			if end < 0 {
				out.WriteByte('$')
				i++
				continue
			}
			span := rest[:2+end+2]
			inner := strings.TrimSpace(rest[2 : 2+end])
			out.WriteString("$${" + inner + "}$$")
			c.Info(line, "inline math $`...`$ rewritten to $${...}$$")
			line += strings.Count(span, "\n")
			i += len(span)

		case strings.HasPrefix(rest, `\(`):
			end := strings.Index(rest[2:], `\)`)
			if end < 0 {
				out.WriteString(`\(`)
				i += 2
				continue
			}
			span := rest[:2+end+2]
			inner := strings.TrimSpace(rest[2 : 2+end])
			out.WriteString("$${" + inner + "}$$")
			c.Info(line, `inline math \(...\) rewritten to $${...}$$`)
			line += strings.Count(span, "\n")
			i += len(span)

		case strings.HasPrefix(rest, `\[`):
			end := strings.Index(rest[2:], `\]`)
			if end < 0 {
				out.WriteString(`\[`)
				i += 2
				continue
			}
			span := rest[:2+end+2]
			inner := strings.TrimSpace(rest[2 : 2+end])
			out.WriteString("$$\n" + inner + "\n$$")
			c.Info(line, `display math \[...\] rewritten to $$ block`)
			line += strings.Count(span, "\n")
			i += len(span)

		case rest[0] == '$':
			// Single-dollar inline math: the closing dollar must sit on the
			// same line and must not be doubled. Anything else leaves the
			// dollar sign as plain text rather than swallowing the document.
			stop := strings.IndexAny(rest[1:], "$\n")
			if stop <= 0 || rest[1+stop] != '$' || strings.HasPrefix(rest[1+stop+1:], "$") {
				out.WriteByte('$')
				i++
				continue
			}
			inner := strings.TrimSpace(rest[1 : 1+stop])
			if inner == "" {
				out.WriteByte('$')
				i++
				continue
			}
			out.WriteString("$${" + inner + "}$$")
			c.Info(line, "inline math $...$ rewritten to $${...}$$")
			i += 1 + stop + 1

		default:
			if rest[0] == '\n' {
				line++
			}
			out.WriteByte(rest[0])
			i++
		}
	}

	return fixOperatorLines(out.String())
}

// noteMathSpan returns the complete $${...}$$ or $$...$$ span at the start
// of s, which must begin with "$$". ok is false when the span never closes.
func noteMathSpan(s string) (span string, ok bool) {
	if strings.HasPrefix(s, "$${") {
		if end := strings.Index(s[3:], "}$$"); end >= 0 {
			return s[:3+end+3], true
		}
	}
	if end := strings.Index(s[2:], "$$"); end >= 0 {
		return s[:2+end+2], true
	}
	return "", false
}

// lineAt returns the line containing position i, without its terminator.
func lineAt(content string, i int) string {
	if end := strings.IndexByte(content[i:], '\n'); end >= 0 {
		return content[i : i+end]
	}
	return content[i:]
}

// fixOperatorLines joins operator-only lines inside $$ blocks to the end of
// the previous line. note.com's renderer misplaces operators that sit on a
// line of their own.
func fixOperatorLines(content string) string {
	return displayBlock.ReplaceAllStringFunc(content, joinOperatorLines)
}

func joinOperatorLines(block string) string {
	lines := strings.Split(block, "\n")
	joined := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if i+1 < len(lines) {
			next := lines[i+1]
			operatorOnly := operatorOnlyLine.MatchString(next) || latexOperatorOnlyLine.MatchString(next)
			if operatorOnly || (leadingOperatorLine.MatchString(next) && strings.TrimSpace(line) != "") {
				joined = append(joined, strings.TrimRight(line, " \t")+" "+strings.TrimSpace(next))
				i++
				continue
			}
		}
		joined = append(joined, line)
	}

	return strings.Join(joined, "\n")
}
