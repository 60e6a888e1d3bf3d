package md2note

import (
	"context"

	"github.com/alnah/go-md2note/internal/pipeline"
)

// pass is one rewrite step: text in, text out, diagnostics appended to the
// collector.
type pass struct {
	name  string
	apply func(content string, c *pipeline.Collector) string
}

// Service orchestrates the Markdown-to-note rewrite pipeline. It holds no
// per-document state, so one Service is safe for concurrent use across
// documents.
type Service struct {
	passes []pass
}

// New creates a Service with the fixed pass order. Order matters: front
// matter first, math before tables (tables emit $$ blocks the math pass
// must not re-wrap), HTML stripping after math so translated math text is
// never mistaken for markup.
func New() *Service {
	return &Service{
		passes: []pass{
			{name: "front matter", apply: func(content string, _ *pipeline.Collector) string {
				return pipeline.StripFrontMatter(content)
			}},
			{name: "headings", apply: pipeline.NormalizeHeadings},
			{name: "math", apply: pipeline.TranslateMath},
			{name: "tables", apply: pipeline.TranslateTables},
			{name: "html", apply: pipeline.StripHTML},
			{name: "footnotes", apply: pipeline.DetectFootnotes},
		},
	}
}

// Convert runs the full pipeline over one document and returns the
// converted text with the diagnostics collected along the way. Rewrite
// passes never fail: malformed constructs degrade to no-ops or warnings.
// The context is checked between passes for cancellation.
func (s *Service) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	collector := pipeline.NewCollector(input.Name)
	content := pipeline.NormalizeLineEndings(input.Markdown)

	for _, p := range s.passes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content = p.apply(content, collector)
	}

	return &ConvertResult{
		Markdown:    content,
		Diagnostics: collector.Diagnostics(),
	}, nil
}
