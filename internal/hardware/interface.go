package hardware

// Hardware represents a registered physical device
type Hardware struct {
	ID           int64
	Type         string
	SerialNumber string
	Location     string
}

// Registry owns write access to hardware records
type Registry interface {
	// Add registers a new device and returns its assigned id. The type
	// must be a member of the configured hardware-type set and the
	// serial number must be globally unique.
	Add(hardwareType, serialNumber, location, technician string) (int64, error)

	// FindBySerial resolves a serial number to the registered device
	FindBySerial(serialNumber string) (*Hardware, error)

	// Count returns the number of registered devices
	Count() (int, error)
}
