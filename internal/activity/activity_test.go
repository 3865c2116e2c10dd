package activity_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/mutker/dcdiag/internal/activity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAppendsLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")

	log, err := activity.Open(path)
	require.NoError(t, err)
	defer log.Close()

	log.Record("Alice", "Added hardware: Server, Serial: SN-1, Location: Rack 1A")
	log.Record("Bob", "Logged diagnostic for Serial: SN-1, Issue: No issues detected")

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Technician: Alice | Action: Added hardware: Server, Serial: SN-1, Location: Rack 1A")
	assert.Contains(t, lines[1], "Technician: Bob | Action: Logged diagnostic for Serial: SN-1, Issue: No issues detected")
	assert.True(t, strings.HasPrefix(lines[0], "["), "Expected timestamped line")
}

func TestRecordAfterCloseDoesNotFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")

	log, err := activity.Open(path)
	require.NoError(t, err)
	require.NoError(t, log.Close())

	// Fire-and-forget: a broken sink must not panic or surface an error
	assert.NotPanics(t, func() {
		log.Record("Alice", "Event after close")
	})
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "activity.log")

	log, err := activity.Open(path)
	require.NoError(t, err)
	defer log.Close()

	assert.FileExists(t, path)
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := activity.Open("")
	require.Error(t, err)
}
