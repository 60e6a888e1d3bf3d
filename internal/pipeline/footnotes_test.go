package pipeline

import "testing"

func TestDetectFootnotes(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantWarnings int
	}{
		{
			name:         "reference detected",
			input:        "claim[^1] made",
			wantWarnings: 1,
		},
		{
			name:         "definition detected",
			input:        "[^1]: the source",
			wantWarnings: 1,
		},
		{
			name:         "named identifier detected",
			input:        "see[^note-a]",
			wantWarnings: 1,
		},
		{
			name:         "reference and definition on separate lines",
			input:        "claim[^1]\n\n[^1]: the source",
			wantWarnings: 2,
		},
		{
			name:         "plain brackets ignored",
			input:        "[link](url) and [text]",
			wantWarnings: 0,
		},
		{
			name:         "inside code fence ignored",
			input:        "```\n[^1]: literal\n```",
			wantWarnings: 0,
		},
		{
			name:         "no footnotes",
			input:        "plain text",
			wantWarnings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector("test.md")
			got := DetectFootnotes(tt.input, c)
			if got != tt.input {
				t.Errorf("DetectFootnotes() altered text: %q, want %q", got, tt.input)
			}
			if len(c.Diagnostics()) != tt.wantWarnings {
				t.Errorf("diagnostics = %d, want %d", len(c.Diagnostics()), tt.wantWarnings)
			}
			for _, d := range c.Diagnostics() {
				if d.Severity != SeverityWarning {
					t.Errorf("severity = %s, want warning", d.Severity)
				}
			}
		})
	}
}
