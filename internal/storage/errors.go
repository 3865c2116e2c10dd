package storage

import "codeberg.org/mutker/dcdiag/internal/errors"

const (
	ErrInvalidDBPath    = errors.ErrorCode("storage_invalid_db_path")
	ErrStorageInit      = errors.ErrorCode("storage_init_failed")
	ErrStorageClose     = errors.ErrorCode("storage_close_failed")
	ErrSchemaInitFailed = errors.ErrorCode("storage_schema_init_failed")
	ErrStorageAccess    = errors.ErrStorageAccess
)
