package hardware

import "codeberg.org/mutker/dcdiag/internal/errors"

const (
	ErrInvalidHardwareType   = errors.ErrInvalidHardwareType
	ErrDuplicateSerialNumber = errors.ErrDuplicateSerialNumber
	ErrHardwareNotFound      = errors.ErrHardwareNotFound
	ErrStorageAccess         = errors.ErrStorageAccess
)
