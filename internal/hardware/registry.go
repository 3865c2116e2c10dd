// Package hardware implements the registry of physical devices. Every
// mutation records exactly one activity event, success or failure, and
// validation failures are logged before the error is returned so the
// audit trail stays complete.
package hardware

import (
	"database/sql"
	"fmt"

	"codeberg.org/mutker/dcdiag/internal/activity"
	"codeberg.org/mutker/dcdiag/internal/config"
	"codeberg.org/mutker/dcdiag/internal/errors"
	"codeberg.org/mutker/dcdiag/internal/logger"
	"github.com/mattn/go-sqlite3"
)

type registry struct {
	db  *sql.DB
	cfg *config.Config
	log activity.Recorder
}

func NewRegistry(db *sql.DB, cfg *config.Config, log activity.Recorder) Registry {
	return &registry{
		db:  db,
		cfg: cfg,
		log: log,
	}
}

func (r *registry) Add(hardwareType, serialNumber, location, technician string) (int64, error) {
	errFactory := errors.New()

	if !r.cfg.SupportsHardwareType(hardwareType) {
		msg := fmt.Sprintf("Hardware type %s is not supported. Choose from %v",
			hardwareType, r.cfg.HardwareTypes)
		r.log.Record(technician, "Failed to add hardware: "+msg)

		return 0, errFactory.WithMessage(ErrInvalidHardwareType, msg)
	}

	result, err := r.db.Exec(
		"INSERT INTO hardware (type, serial_number, location) VALUES (?, ?, ?)",
		hardwareType, serialNumber, location,
	)
	if err != nil {
		if isUniqueViolation(err) {
			msg := fmt.Sprintf("Hardware with serial number %s already exists", serialNumber)
			r.log.Record(technician, "Failed to add hardware: "+msg)

			return 0, errFactory.WithMessage(ErrDuplicateSerialNumber, msg)
		}

		return 0, errFactory.Wrap(ErrStorageAccess, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, errFactory.Wrap(ErrStorageAccess, err)
	}

	r.log.Record(technician, fmt.Sprintf("Added hardware: %s, Serial: %s, Location: %s",
		hardwareType, serialNumber, location))
	logger.Debug().
		Int64("id", id).
		Str("type", hardwareType).
		Str("serial_number", serialNumber).
		Msg("Hardware registered")

	return id, nil
}

func (r *registry) FindBySerial(serialNumber string) (*Hardware, error) {
	errFactory := errors.New()

	hw := &Hardware{}
	err := r.db.QueryRow(
		"SELECT id, type, serial_number, location FROM hardware WHERE serial_number = ?",
		serialNumber,
	).Scan(&hw.ID, &hw.Type, &hw.SerialNumber, &hw.Location)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errFactory.WithMessage(ErrHardwareNotFound,
			fmt.Sprintf("Hardware with serial number %s not found", serialNumber))
	}
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageAccess, err)
	}

	return hw, nil
}

func (r *registry) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM hardware").Scan(&count); err != nil {
		return 0, errors.New().Wrap(ErrStorageAccess, err)
	}

	return count, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}
