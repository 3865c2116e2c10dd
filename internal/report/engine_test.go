package report_test

import (
	"path/filepath"
	"testing"

	"codeberg.org/mutker/dcdiag/internal/config"
	"codeberg.org/mutker/dcdiag/internal/diagnostic"
	"codeberg.org/mutker/dcdiag/internal/hardware"
	"codeberg.org/mutker/dcdiag/internal/report"
	"codeberg.org/mutker/dcdiag/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activityStub struct {
	events []string
}

func (s *activityStub) Record(actor, message string) {
	s.events = append(s.events, actor+" | "+message)
}

type testEnv struct {
	registry    hardware.Registry
	diagnostics diagnostic.Store
	log         *activityStub
}

func newTestEngine(t *testing.T) (report.Engine, *testEnv) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "hardware.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		HardwareTypes: []string{"Server", "Switch", "Storage", "Disk"},
		Thresholds: config.Thresholds{
			MaxTemperature: 40,
			MaxCPUUsage:    90,
			MaxMemoryUsage: 85,
		},
	}
	log := &activityStub{}
	registry := hardware.NewRegistry(store.DB(), cfg, log)
	diagnostics := diagnostic.NewStore(store.DB(), cfg, registry, log)

	env := &testEnv{
		registry:    registry,
		diagnostics: diagnostics,
		log:         log,
	}

	return report.NewEngine(store.DB(), log), env
}

func mustLog(t *testing.T, env *testEnv, serial string, reading diagnostic.Reading) {
	t.Helper()
	_, err := env.diagnostics.Log(serial, "Alice", reading)
	require.NoError(t, err)
}

func TestGenerateAllHardware(t *testing.T) {
	engine, env := newTestEngine(t)

	_, err := env.registry.Add("Server", "SN-1", "Rack 1A", "Alice")
	require.NoError(t, err)
	_, err = env.registry.Add("Switch", "SN-2", "Rack 2B", "Alice")
	require.NoError(t, err)

	mustLog(t, env, "SN-1", diagnostic.Reading{Temperature: 45, CPUUsage: 50, MemoryUsage: 50})
	mustLog(t, env, "SN-1", diagnostic.Reading{Temperature: 20, CPUUsage: 10, MemoryUsage: 10})
	mustLog(t, env, "SN-2", diagnostic.Reading{Temperature: 30, CPUUsage: 95, MemoryUsage: 90})

	result, err := engine.Generate("", "Alice")
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalDiagnostics)
	require.Len(t, result.Diagnostics, 3)

	first := result.Diagnostics[0]
	assert.Equal(t, "SN-1", first.SerialNumber)
	assert.Equal(t, "Server", first.Type)
	assert.Equal(t, "Rack 1A", first.Location)
	assert.Equal(t, "Alice", first.Technician)
	assert.NotEmpty(t, first.Timestamp)
	assert.InDelta(t, 45, first.Temperature, 0)
	assert.Equal(t, "Temperature exceeds 40°C", first.IssueDetected)

	assert.Contains(t, env.log.events[len(env.log.events)-1],
		"Alice | Generated diagnostic report for all hardware")
}

func TestGenerateScopedBySerial(t *testing.T) {
	engine, env := newTestEngine(t)

	_, err := env.registry.Add("Server", "SN-1", "Rack 1A", "Alice")
	require.NoError(t, err)
	_, err = env.registry.Add("Switch", "SN-2", "Rack 2B", "Alice")
	require.NoError(t, err)

	mustLog(t, env, "SN-1", diagnostic.Reading{Temperature: 45, CPUUsage: 50, MemoryUsage: 50})
	mustLog(t, env, "SN-2", diagnostic.Reading{Temperature: 30, CPUUsage: 95, MemoryUsage: 50})

	result, err := engine.Generate("SN-2", "Alice")
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalDiagnostics)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, "SN-2", result.Diagnostics[0].SerialNumber)

	assert.Contains(t, env.log.events[len(env.log.events)-1],
		"Alice | Generated diagnostic report for Serial: SN-2")
}

func TestGenerateEmptyStore(t *testing.T) {
	engine, _ := newTestEngine(t)

	result, err := engine.Generate("", "Alice")
	require.NoError(t, err)

	assert.Zero(t, result.TotalDiagnostics)
	assert.Empty(t, result.Diagnostics)
	assert.Zero(t, result.IssueSummary.Temperature)
	assert.Zero(t, result.IssueSummary.NoIssues)
}

func TestIssueSummaryBuckets(t *testing.T) {
	engine, env := newTestEngine(t)

	_, err := env.registry.Add("Server", "SN-1", "Rack 1A", "Alice")
	require.NoError(t, err)

	mustLog(t, env, "SN-1", diagnostic.Reading{Temperature: 45, CPUUsage: 50, MemoryUsage: 50})
	mustLog(t, env, "SN-1", diagnostic.Reading{Temperature: 42, CPUUsage: 10, MemoryUsage: 10})
	mustLog(t, env, "SN-1", diagnostic.Reading{Temperature: 20, CPUUsage: 10, MemoryUsage: 10})

	result, err := engine.Generate("", "Alice")
	require.NoError(t, err)

	assert.Equal(t, 2, result.IssueSummary.Temperature)
	assert.Zero(t, result.IssueSummary.CPU)
	assert.Zero(t, result.IssueSummary.Memory)
	assert.Equal(t, 1, result.IssueSummary.NoIssues)
}

func TestIssueSummaryCountsRowInMultipleBuckets(t *testing.T) {
	engine, env := newTestEngine(t)

	_, err := env.registry.Add("Server", "SN-1", "Rack 1A", "Alice")
	require.NoError(t, err)

	mustLog(t, env, "SN-1", diagnostic.Reading{Temperature: 45, CPUUsage: 95, MemoryUsage: 90})

	result, err := engine.Generate("", "Alice")
	require.NoError(t, err)

	assert.Equal(t, 1, result.IssueSummary.Temperature)
	assert.Equal(t, 1, result.IssueSummary.CPU)
	assert.Equal(t, 1, result.IssueSummary.Memory)
	assert.Zero(t, result.IssueSummary.NoIssues)
}

func TestSuggestEscalations(t *testing.T) {
	engine, env := newTestEngine(t)

	_, err := env.registry.Add("Server", "SN-1", "Rack 1A", "Alice")
	require.NoError(t, err)
	_, err = env.registry.Add("Disk", "SN-2", "Rack 2B", "Alice")
	require.NoError(t, err)

	mustLog(t, env, "SN-1", diagnostic.Reading{Temperature: 45, CPUUsage: 50, MemoryUsage: 50})
	mustLog(t, env, "SN-1", diagnostic.Reading{Temperature: 20, CPUUsage: 10, MemoryUsage: 10})
	mustLog(t, env, "SN-2", diagnostic.Reading{Temperature: 30, CPUUsage: 95, MemoryUsage: 50})

	escalations, err := engine.SuggestEscalations("Alice")
	require.NoError(t, err)

	require.Len(t, escalations, 2)
	assert.Equal(t,
		"Escalate: Hardware SN-1 (Server) at Rack 1A - Issue: Temperature exceeds 40°C",
		escalations[0])
	assert.Equal(t,
		"Escalate: Hardware SN-2 (Disk) at Rack 2B - Issue: CPU usage exceeds 90%",
		escalations[1])

	assert.Contains(t, env.log.events[len(env.log.events)-1],
		"Alice | Suggested escalations: 2 issues found")
}

func TestSuggestEscalationsAllClean(t *testing.T) {
	engine, env := newTestEngine(t)

	_, err := env.registry.Add("Server", "SN-1", "Rack 1A", "Alice")
	require.NoError(t, err)
	mustLog(t, env, "SN-1", diagnostic.Reading{Temperature: 20, CPUUsage: 10, MemoryUsage: 10})

	escalations, err := engine.SuggestEscalations("Alice")
	require.NoError(t, err)
	assert.Empty(t, escalations)

	assert.Contains(t, env.log.events[len(env.log.events)-1],
		"Alice | Suggested escalations: 0 issues found")
}

func TestSuggestEscalationsEmptyStore(t *testing.T) {
	engine, _ := newTestEngine(t)

	escalations, err := engine.SuggestEscalations("Alice")
	require.NoError(t, err)
	assert.Empty(t, escalations)
}
