package md2note

import "sync"

// Report accumulates the outcome of a batch run: every diagnostic plus the
// file counts. One Report serves a whole run; Add and the Mark methods are
// safe for concurrent workers.
type Report struct {
	mu        sync.Mutex
	diags     []Diagnostic
	detected  int
	converted int
	failed    int
}

// Counts is a read-only snapshot of the batch counters.
type Counts struct {
	Detected  int // files discovered and not excluded
	Converted int // files converted and written (or previewed)
	Failed    int // files that failed to read or write
}

// Add appends diagnostics to the report.
func (r *Report) Add(diags ...Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diags = append(r.diags, diags...)
}

// MarkDetected records the number of discovered files.
func (r *Report) MarkDetected(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detected += n
}

// MarkConverted records one successful conversion.
func (r *Report) MarkConverted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.converted++
}

// MarkFailed records one failed file with an error-level diagnostic.
func (r *Report) MarkFailed(file string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed++
	r.diags = append(r.diags, Diagnostic{
		File:     file,
		Severity: SeverityError,
		Message:  err.Error(),
	})
}

// Counts returns a snapshot of the batch counters.
func (r *Report) Counts() Counts {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Counts{Detected: r.detected, Converted: r.converted, Failed: r.failed}
}

// Diagnostics returns a copy of all records in insertion order.
func (r *Report) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// BySeverity returns the records of one severity, in insertion order.
func (r *Report) BySeverity(severity Severity) []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Diagnostic
	for _, d := range r.diags {
		if d.Severity == severity {
			out = append(out, d)
		}
	}
	return out
}
