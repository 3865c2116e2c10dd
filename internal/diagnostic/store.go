// Package diagnostic implements the time-ordered store of diagnostic
// readings and the threshold rule that classifies them at insertion.
package diagnostic

import (
	"database/sql"
	"fmt"
	"time"

	"codeberg.org/mutker/dcdiag/internal/activity"
	"codeberg.org/mutker/dcdiag/internal/config"
	"codeberg.org/mutker/dcdiag/internal/errors"
	"codeberg.org/mutker/dcdiag/internal/hardware"
	"codeberg.org/mutker/dcdiag/internal/logger"
)

type store struct {
	db       *sql.DB
	cfg      *config.Config
	registry hardware.Registry
	log      activity.Recorder
}

func NewStore(db *sql.DB, cfg *config.Config, registry hardware.Registry, log activity.Recorder) Store {
	return &store{
		db:       db,
		cfg:      cfg,
		registry: registry,
		log:      log,
	}
}

func (s *store) Log(serialNumber, technician string, reading Reading) (string, error) {
	errFactory := errors.New()

	hw, err := s.registry.FindBySerial(serialNumber)
	if err != nil {
		if errors.CodeOf(err) == ErrHardwareNotFound {
			s.log.Record(technician, fmt.Sprintf(
				"Failed to log diagnostic data: Hardware with serial number %s not found", serialNumber))
		}

		return "", err
	}

	issue := Classify(reading, s.cfg.Thresholds)
	timestamp := time.Now().Format(time.RFC3339)

	_, err = s.db.Exec(`
        INSERT INTO diagnostics (
            hardware_id, technician, timestamp,
            temperature_celsius, cpu_usage_percent, memory_usage_percent,
            issue_detected
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		hw.ID, technician, timestamp,
		reading.Temperature, reading.CPUUsage, reading.MemoryUsage,
		issue,
	)
	if err != nil {
		return "", errFactory.Wrap(ErrStorageAccess, err)
	}

	s.log.Record(technician, fmt.Sprintf("Logged diagnostic for Serial: %s, Issue: %s",
		serialNumber, issue))
	logger.Debug().
		Str("serial_number", serialNumber).
		Float64("temperature", reading.Temperature).
		Float64("cpu_usage", reading.CPUUsage).
		Float64("memory_usage", reading.MemoryUsage).
		Str("issue", issue).
		Msg("Diagnostic recorded")

	return issue, nil
}

func (s *store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM diagnostics").Scan(&count); err != nil {
		return 0, errors.New().Wrap(ErrStorageAccess, err)
	}

	return count, nil
}
