package pipeline

// Severity classifies a diagnostic record.
type Severity string

// Severity levels, ordered from least to most serious.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// String returns the severity name.
func (s Severity) String() string {
	return string(s)
}

// Diagnostic is an immutable record of a condition observed during
// conversion. Line is 1-based and best-effort; 0 means the whole document.
type Diagnostic struct {
	File     string
	Line     int
	Severity Severity
	Message  string
}

// Collector accumulates diagnostics for a single document in insertion
// order. Passes append to it and never read it back.
type Collector struct {
	file  string
	diags []Diagnostic
}

// NewCollector creates a Collector attributing records to the given file.
func NewCollector(file string) *Collector {
	return &Collector{file: file}
}

// Info appends an info-level record.
func (c *Collector) Info(line int, message string) {
	c.append(SeverityInfo, line, message)
}

// Warn appends a warning-level record.
func (c *Collector) Warn(line int, message string) {
	c.append(SeverityWarning, line, message)
}

func (c *Collector) append(severity Severity, line int, message string) {
	c.diags = append(c.diags, Diagnostic{
		File:     c.file,
		Line:     line,
		Severity: severity,
		Message:  message,
	})
}

// Diagnostics returns the accumulated records in insertion order.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diags
}
