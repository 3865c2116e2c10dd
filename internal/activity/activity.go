// Package activity implements the append-only technician activity log.
// Every registry and store operation records exactly one event here,
// success or failure, so the audit trail stays complete even when a
// mutation is rejected.
package activity

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/mutker/dcdiag/internal/errors"
	"codeberg.org/mutker/dcdiag/internal/logger"
)

const (
	defaultDirPerm  = 0o755
	defaultFilePerm = 0o644
)

// SystemActor names events not attributable to a technician
const SystemActor = "System"

type Log struct {
	file *os.File
	path string
}

// Open opens (or creates) the activity log file for appending
func Open(path string) (*Log, error) {
	errFactory := errors.New()

	if path == "" {
		return nil, errFactory.WithMessage(errors.ErrInvalidArgument, "activity log path must not be empty")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
			return nil, errFactory.Wrap(errors.ErrInitFailed, err)
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, defaultFilePerm)
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrInitFailed, err)
	}

	return &Log{
		file: file,
		path: path,
	}, nil
}

// Record appends one timestamped line naming the actor and the action.
// Sink failures are logged and swallowed: an audit write must never fail
// the operation being audited.
func (l *Log) Record(actor, message string) {
	line := fmt.Sprintf("[%s] Technician: %s | Action: %s\n",
		time.Now().Format(time.RFC3339), actor, message)

	if _, err := l.file.WriteString(line); err != nil {
		logger.Error().
			Err(err).
			Str("path", l.path).
			Str("actor", actor).
			Msg("Failed to append activity log entry")
	}
}

func (l *Log) Close() error {
	if err := l.file.Close(); err != nil {
		return errors.New().Wrap(errors.ErrShutdownFailed, err)
	}

	return nil
}
