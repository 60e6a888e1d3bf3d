package pipeline

import (
	"regexp"
	"strings"
)

// separatorCell matches one cell of a table separator row. Alignment colons
// are accepted and ignored: the array form has no alignment concept.
var separatorCell = regexp.MustCompile(`^:?-+:?$`)

// TranslateTables rewrites pipe-delimited Markdown tables as display-math
// LaTeX array blocks, the only tabular construct note.com renders. Cell
// content is copied verbatim, so inline decoration (bold, links) becomes
// literal LaTeX; every converted table therefore emits exactly one warning.
// Blocks that do not form a well-shaped table (no separator row, rows wider
// than the header) are left untouched and not reported.
func TranslateTables(content string, c *Collector) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	inFence := false

	for i := 0; i < len(lines); {
		line := lines[i]

		if fencedCodeBlock.MatchString(line) {
			inFence = !inFence
			out = append(out, line)
			i++
			continue
		}
		if inFence || !isTableRow(line) {
			out = append(out, line)
			i++
			continue
		}

		block := tableBlockAt(lines, i)
		array, ok := tableToArray(block)
		if !ok {
			out = append(out, block...)
			i += len(block)
			continue
		}

		c.Warn(i+1, "table converted to array form; decoration is lost")
		out = append(out, array...)
		i += len(block)
	}

	return strings.Join(out, "\n")
}

// isTableRow reports whether a line can open a table: it starts and ends
// with a pipe and has at least one interior pipe, so a table needs two or
// more columns in its header.
func isTableRow(line string) bool {
	s := strings.TrimSpace(line)
	return len(s) >= 3 &&
		strings.HasPrefix(s, "|") &&
		strings.HasSuffix(s, "|") &&
		strings.Count(s, "|") >= 3
}

// isTableContinuation reports whether a line continues a table block.
// Continuation rows only need the outer pipes: a single-cell data row like
// "| 1 |" is still part of the table and gets padded to the header width.
func isTableContinuation(line string) bool {
	s := strings.TrimSpace(line)
	return len(s) >= 2 &&
		strings.HasPrefix(s, "|") &&
		strings.HasSuffix(s, "|")
}

// tableBlockAt collects the contiguous run of table rows starting at i.
func tableBlockAt(lines []string, i int) []string {
	end := i + 1
	for end < len(lines) && isTableContinuation(lines[end]) {
		end++
	}
	return lines[i:end]
}

// isSeparatorRow reports whether the row consists only of separator cells.
func isSeparatorRow(line string) bool {
	cells := splitTableRow(line)
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if !separatorCell.MatchString(cell) {
			return false
		}
	}
	return true
}

// splitTableRow splits a pipe-delimited row into trimmed cells.
func splitTableRow(line string) []string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")

	cells := strings.Split(s, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// tableToArray renders a table block as a $$-wrapped LaTeX array. ok is
// false when the block is not a well-shaped table: header plus separator
// plus at least one data row, separator matching the header width, and no
// data row wider than the header. Narrow data rows are padded with empty
// cells.
func tableToArray(block []string) (array []string, ok bool) {
	if len(block) < 3 {
		return nil, false
	}

	header := splitTableRow(block[0])
	columns := len(header)

	if !isSeparatorRow(block[1]) || len(splitTableRow(block[1])) != columns {
		return nil, false
	}

	rows := [][]string{header}
	for _, line := range block[2:] {
		cells := splitTableRow(line)
		if len(cells) > columns {
			return nil, false
		}
		for len(cells) < columns {
			cells = append(cells, "")
		}
		rows = append(rows, cells)
	}

	array = []string{
		"$$",
		`\begin{array}{` + columnSpec(columns) + `} \hline`,
	}
	for _, cells := range rows {
		array = append(array, strings.Join(cells, " & ")+` \\ \hline`)
	}
	array = append(array, `\end{array}`, "$$")
	return array, true
}

// columnSpec builds the |c|c|...| column specifier for n columns.
func columnSpec(n int) string {
	var b strings.Builder
	b.WriteByte('|')
	for i := 0; i < n; i++ {
		b.WriteString("c|")
	}
	return b.String()
}
