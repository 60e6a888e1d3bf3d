// Package pipeline implements the Markdown-to-note rewrite passes.
//
// Each pass is a pure function from document text to document text plus
// diagnostics appended to a Collector:
//   - Front matter stripping (silent)
//   - Heading level normalization (note.com renders only H2/H3)
//   - Math delimiter translation into note.com's $${...}$$ / $$ block forms
//   - Table translation into LaTeX array blocks
//   - HTML comment and tag removal
//   - Footnote detection (warn only, no safe rewrite exists)
//
// Passes never touch the filesystem and never depend on each other's
// internals; the root md2note package runs them in a fixed order over one
// document at a time. Content inside fenced code blocks is left untouched
// by every pass.
package pipeline
