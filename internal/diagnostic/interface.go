package diagnostic

// Reading holds the three caller-supplied metrics of one diagnostic
// measurement. No range validation is applied beyond the threshold
// comparison at classification time.
type Reading struct {
	Temperature float64
	CPUUsage    float64
	MemoryUsage float64
}

// Store owns write access to diagnostic records
type Store interface {
	// Log resolves the serial number, classifies the reading against
	// the current thresholds, persists it with a store-assigned
	// timestamp and returns the classification string. The stored
	// classification is immutable: historical reports reflect the
	// threshold policy at the time of the reading.
	Log(serialNumber, technician string, reading Reading) (string, error)

	// Count returns the number of stored diagnostic records
	Count() (int, error)
}
