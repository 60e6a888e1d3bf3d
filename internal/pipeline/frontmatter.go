package pipeline

import (
	"strings"

	"github.com/alnah/go-md2note/internal/yamlutil"
)

// frontMatterDelimiter marks the start and end of a YAML front matter block.
const frontMatterDelimiter = "---"

// StripFrontMatter removes a leading YAML front matter block, delimiter
// lines included. The block is only removed when the document starts with a
// delimiter line, a matching closing delimiter exists, and the enclosed
// lines parse as a YAML mapping; otherwise the content is returned
// unmodified. Removal is silent: front matter is expected input, not a
// reportable condition.
func StripFrontMatter(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontMatterDelimiter {
		return content
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontMatterDelimiter {
			closing = i
			break
		}
	}
	if closing < 0 {
		return content
	}

	body := strings.Join(lines[1:closing], "\n")
	var meta map[string]any
	if err := yamlutil.Unmarshal([]byte(body), &meta); err != nil || len(meta) == 0 {
		// Not metadata (e.g. a pair of thematic breaks); leave it alone.
		return content
	}

	return strings.Join(lines[closing+1:], "\n")
}
