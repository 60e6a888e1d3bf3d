package md2note

import "github.com/alnah/go-md2note/internal/pipeline"

// Severity classifies a diagnostic record.
type Severity = pipeline.Severity

// Severity levels, ordered from least to most serious.
const (
	SeverityInfo    = pipeline.SeverityInfo
	SeverityWarning = pipeline.SeverityWarning
	SeverityError   = pipeline.SeverityError
)

// Diagnostic is an immutable record of a condition observed during
// conversion: the document it belongs to, a best-effort 1-based line
// number, a severity, and a message.
type Diagnostic = pipeline.Diagnostic

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	Name     string // Document name used in diagnostics (optional)
}

// ConvertResult holds the converted document and its diagnostics in
// insertion order.
type ConvertResult struct {
	Markdown    string
	Diagnostics []Diagnostic
}

// Warnings returns only the warning-level diagnostics.
func (r *ConvertResult) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}
