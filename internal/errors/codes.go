package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"

	// Configuration errors
	ErrInvalidConfig ErrorCode = "invalid_configuration"
	ErrReadConfig    ErrorCode = "read_config_failed"
	ErrWriteConfig   ErrorCode = "write_config_failed"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Initialization errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"

	// Storage errors
	ErrStorageAccess     ErrorCode = "storage_access_failed"
	ErrTransactionFailed ErrorCode = "transaction_failed"

	// Domain errors
	ErrInvalidHardwareType   ErrorCode = "invalid_hardware_type"
	ErrDuplicateSerialNumber ErrorCode = "duplicate_serial_number"
	ErrHardwareNotFound      ErrorCode = "hardware_not_found"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:              "Internal error occurred",
	ErrInvalidArgument:       "Invalid argument provided",
	ErrInvalidConfig:         "Invalid configuration",
	ErrReadConfig:            "Failed to read configuration",
	ErrWriteConfig:           "Failed to write configuration",
	ErrInvalidLogLevel:       "Invalid log level",
	ErrInitFailed:            "Initialization failed",
	ErrShutdownFailed:        "Shutdown failed",
	ErrStorageAccess:         "Storage access failed",
	ErrTransactionFailed:     "Transaction failed",
	ErrInvalidHardwareType:   "Hardware type is not supported",
	ErrDuplicateSerialNumber: "Hardware with this serial number already exists",
	ErrHardwareNotFound:      "Hardware not found",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
