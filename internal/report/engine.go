// Package report implements the aggregation of stored diagnostics into
// structured reports and escalation suggestions.
package report

import (
	"database/sql"
	"fmt"
	"strings"

	"codeberg.org/mutker/dcdiag/internal/activity"
	"codeberg.org/mutker/dcdiag/internal/diagnostic"
	"codeberg.org/mutker/dcdiag/internal/errors"
	"codeberg.org/mutker/dcdiag/internal/logger"
)

const reportQuery = `
    SELECT h.serial_number, h.type, h.location, d.technician, d.timestamp,
           d.temperature_celsius, d.cpu_usage_percent, d.memory_usage_percent,
           d.issue_detected
    FROM hardware AS h
    JOIN diagnostics AS d ON h.id = d.hardware_id`

type engine struct {
	db  *sql.DB
	log activity.Recorder
}

func NewEngine(db *sql.DB, log activity.Recorder) Engine {
	return &engine{
		db:  db,
		log: log,
	}
}

func (e *engine) Generate(serialNumber, technician string) (*Report, error) {
	errFactory := errors.New()

	query := reportQuery
	var params []any
	if serialNumber != "" {
		query += " WHERE h.serial_number = ?"
		params = append(params, serialNumber)
	}
	query += " ORDER BY d.id"

	rows, err := e.db.Query(query, params...)
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrStorageAccess, err)
	}
	defer rows.Close()

	report := &Report{
		Diagnostics: []Entry{},
	}
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.SerialNumber, &entry.Type, &entry.Location,
			&entry.Technician, &entry.Timestamp,
			&entry.Temperature, &entry.CPUUsage, &entry.MemoryUsage,
			&entry.IssueDetected,
		); err != nil {
			return nil, errFactory.Wrap(errors.ErrStorageAccess, err)
		}
		report.Diagnostics = append(report.Diagnostics, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errFactory.Wrap(errors.ErrStorageAccess, err)
	}

	report.TotalDiagnostics = len(report.Diagnostics)
	report.IssueSummary = summarize(report.Diagnostics)

	scope := "all hardware"
	if serialNumber != "" {
		scope = "Serial: " + serialNumber
	}
	e.log.Record(technician, "Generated diagnostic report for "+scope)
	logger.Debug().
		Str("scope", scope).
		Int("total", report.TotalDiagnostics).
		Msg("Report generated")

	return report, nil
}

func (e *engine) SuggestEscalations(technician string) ([]string, error) {
	report, err := e.Generate("", technician)
	if err != nil {
		return nil, err
	}

	escalations := []string{}
	for _, entry := range report.Diagnostics {
		if entry.IssueDetected == diagnostic.NoIssues {
			continue
		}
		escalations = append(escalations, fmt.Sprintf(
			"Escalate: Hardware %s (%s) at %s - Issue: %s",
			entry.SerialNumber, entry.Type, entry.Location, entry.IssueDetected))
	}

	e.log.Record(technician, fmt.Sprintf("Suggested escalations: %d issues found", len(escalations)))

	return escalations, nil
}

// summarize buckets classifications by the metric clauses they contain.
// Substring matching mirrors how the clauses are built: a multi-clause
// classification increments every bucket it names.
func summarize(entries []Entry) Summary {
	var summary Summary
	for _, entry := range entries {
		if strings.Contains(entry.IssueDetected, "Temperature") {
			summary.Temperature++
		}
		if strings.Contains(entry.IssueDetected, "CPU") {
			summary.CPU++
		}
		if strings.Contains(entry.IssueDetected, "Memory") {
			summary.Memory++
		}
		if entry.IssueDetected == diagnostic.NoIssues {
			summary.NoIssues++
		}
	}

	return summary
}
