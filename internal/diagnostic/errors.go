package diagnostic

import "codeberg.org/mutker/dcdiag/internal/errors"

const (
	ErrHardwareNotFound = errors.ErrHardwareNotFound
	ErrStorageAccess    = errors.ErrStorageAccess
)
