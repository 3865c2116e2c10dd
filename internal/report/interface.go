package report

// Entry is one diagnostic row joined with its owning hardware
type Entry struct {
	SerialNumber  string  `json:"serial_number"`
	Type          string  `json:"type"`
	Location      string  `json:"location"`
	Technician    string  `json:"technician"`
	Timestamp     string  `json:"timestamp"`
	Temperature   float64 `json:"temperature_celsius"`
	CPUUsage      float64 `json:"cpu_usage_percent"`
	MemoryUsage   float64 `json:"memory_usage_percent"`
	IssueDetected string  `json:"issue_detected"`
}

// Summary counts rows by the threshold clauses their classification
// contains. A single row counts toward every clause it carries; NoIssues
// counts rows whose classification is exactly the clean sentinel.
type Summary struct {
	Temperature int `json:"Temperature"`
	CPU         int `json:"CPU"`
	Memory      int `json:"Memory"`
	NoIssues    int `json:"No issues"`
}

// Report is the aggregated view over stored diagnostics
type Report struct {
	TotalDiagnostics int     `json:"total_diagnostics"`
	Diagnostics      []Entry `json:"diagnostics"`
	IssueSummary     Summary `json:"issue_summary"`
}

// Engine aggregates stored readings and derives escalation suggestions
type Engine interface {
	// Generate builds a report over all diagnostics, or only those of
	// the device with the given serial number when it is non-empty.
	// Row order is insertion-consistent within a single query and not
	// otherwise contractual.
	Generate(serialNumber, technician string) (*Report, error)

	// SuggestEscalations produces one escalation line per diagnostic
	// whose classification is not clean, across all hardware
	SuggestEscalations(technician string) ([]string, error)
}
