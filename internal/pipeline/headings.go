package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// headingPattern matches an ATX heading: 1-6 markers, required whitespace,
// then text. A marker run without following whitespace (e.g. "#hashtag",
// "####" alone) is not a heading.
var headingPattern = regexp.MustCompile(`^(#{1,6})([ \t]+)(.*\S.*)$`)

// headingRemap translates source heading levels to the levels note.com
// supports. The editor only renders H2 and H3.
var headingRemap = [7]int{0, 2, 2, 3, 3, 3, 3}

// NormalizeHeadings rewrites ATX heading levels per the fixed remap table
// (1→2, 2→2, 3→3, 4+→3). Each changed heading emits an info diagnostic.
// Lines inside fenced code blocks are left untouched.
func NormalizeHeadings(content string, c *Collector) string {
	return mapLines(content, func(num int, line string) string {
		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			return line
		}

		level := len(m[1])
		target := headingRemap[level]
		if target == level {
			return line
		}

		c.Info(num, fmt.Sprintf("heading level %d -> %d", level, target))
		return strings.Repeat("#", target) + m[2] + m[3]
	})
}
