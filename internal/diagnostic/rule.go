package diagnostic

import (
	"strconv"
	"strings"

	"codeberg.org/mutker/dcdiag/internal/config"
)

// NoIssues is the classification of a reading that breaches no
// threshold. Report summarization and escalation matching depend on
// this exact string.
const NoIssues = "No issues detected"

// Classify applies the threshold rule to a reading. Each metric is
// compared independently against its configured upper bound (exclusive);
// breached metrics produce one clause each, in the fixed order
// Temperature, CPU, Memory.
func Classify(reading Reading, thresholds config.Thresholds) string {
	var issues []string

	if reading.Temperature > thresholds.MaxTemperature {
		issues = append(issues, "Temperature exceeds "+formatThreshold(thresholds.MaxTemperature)+"°C")
	}
	if reading.CPUUsage > thresholds.MaxCPUUsage {
		issues = append(issues, "CPU usage exceeds "+formatThreshold(thresholds.MaxCPUUsage)+"%")
	}
	if reading.MemoryUsage > thresholds.MaxMemoryUsage {
		issues = append(issues, "Memory usage exceeds "+formatThreshold(thresholds.MaxMemoryUsage)+"%")
	}

	if len(issues) == 0 {
		return NoIssues
	}

	return strings.Join(issues, ", ")
}

func formatThreshold(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
