package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"codeberg.org/mutker/dcdiag/internal/activity"
	"codeberg.org/mutker/dcdiag/internal/config"
	"codeberg.org/mutker/dcdiag/internal/diagnostic"
	"codeberg.org/mutker/dcdiag/internal/hardware"
	"codeberg.org/mutker/dcdiag/internal/logger"
	"codeberg.org/mutker/dcdiag/internal/report"
	"codeberg.org/mutker/dcdiag/internal/storage"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := pflag.String("config", "", "Path to config file")
	dbPath := pflag.String("db", "", "Path to hardware database (overrides config)")
	activityLog := pflag.String("activity-log", "", "Path to activity log (overrides config)")
	logLevel := pflag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *activityLog != "" {
		cfg.ActivityLog = *activityLog
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}

	workLog, err := activity.Open(cfg.ActivityLog)
	if err != nil {
		return err
	}
	defer workLog.Close()

	if cfg.Synthesized {
		workLog.Record(activity.SystemActor, "Created default config file: "+cfg.Path)
	} else {
		workLog.Record(activity.SystemActor, "Loaded config file: "+cfg.Path)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	// The store must be released on every exit path, and its closure is
	// the last event the activity log sees.
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close storage")
		}
		workLog.Record(activity.SystemActor, "Closed diagnostic tool")
	}()

	workLog.Record(activity.SystemActor, "Initialized diagnostic tool")

	registry := hardware.NewRegistry(store.DB(), cfg, workLog)
	diagnostics := diagnostic.NewStore(store.DB(), cfg, registry, workLog)
	reports := report.NewEngine(store.DB(), workLog)

	menu(cfg, registry, diagnostics, reports)

	return nil
}

func menu(cfg *config.Config, registry hardware.Registry, diagnostics diagnostic.Store, reports report.Engine) {
	input := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("\nData Center Diagnostic Tool")
		fmt.Println("1. Add Hardware")
		fmt.Println("2. Log Diagnostic")
		fmt.Println("3. Generate Diagnostic Report")
		fmt.Println("4. Suggest Escalations")
		fmt.Println("5. Exit")

		choice, ok := prompt(input, "Select an option (1-5): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			addHardware(input, cfg, registry)
		case "2":
			logDiagnostic(input, diagnostics)
		case "3":
			generateReport(input, reports)
		case "4":
			suggestEscalations(input, reports)
		case "5":
			fmt.Println("Exiting...")
			return
		default:
			fmt.Println("Invalid choice. Try again.")
		}
	}
}

func addHardware(input *bufio.Scanner, cfg *config.Config, registry hardware.Registry) {
	technician, ok := prompt(input, "Enter technician name: ")
	if !ok {
		return
	}
	hardwareType, ok := prompt(input, fmt.Sprintf("Enter hardware type %v: ", cfg.HardwareTypes))
	if !ok {
		return
	}
	serialNumber, ok := prompt(input, "Enter serial number: ")
	if !ok {
		return
	}
	location, ok := prompt(input, "Enter location (e.g., Rack 1A): ")
	if !ok {
		return
	}

	if _, err := registry.Add(hardwareType, serialNumber, location, technician); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Hardware added successfully!")
}

func logDiagnostic(input *bufio.Scanner, diagnostics diagnostic.Store) {
	technician, ok := prompt(input, "Enter technician name: ")
	if !ok {
		return
	}
	serialNumber, ok := prompt(input, "Enter hardware serial number: ")
	if !ok {
		return
	}

	temperature, ok := promptFloat(input, "Enter temperature (°C): ")
	if !ok {
		return
	}
	cpuUsage, ok := promptFloat(input, "Enter CPU usage (%): ")
	if !ok {
		return
	}
	memoryUsage, ok := promptFloat(input, "Enter memory usage (%): ")
	if !ok {
		return
	}

	reading := diagnostic.Reading{
		Temperature: temperature,
		CPUUsage:    cpuUsage,
		MemoryUsage: memoryUsage,
	}
	if _, err := diagnostics.Log(serialNumber, technician, reading); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Diagnostic logged successfully!")
}

func generateReport(input *bufio.Scanner, reports report.Engine) {
	technician, ok := prompt(input, "Enter technician name: ")
	if !ok {
		return
	}
	serialNumber, ok := prompt(input, "Enter serial number for specific report (or press Enter for all): ")
	if !ok {
		return
	}

	result, err := reports.Generate(serialNumber, technician)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("\nDiagnostic Report:")
	fmt.Printf("Total Diagnostics: %d\n", result.TotalDiagnostics)
	fmt.Printf("Issue Summary: Temperature: %d, CPU: %d, Memory: %d, No issues: %d\n",
		result.IssueSummary.Temperature, result.IssueSummary.CPU,
		result.IssueSummary.Memory, result.IssueSummary.NoIssues)
	for _, entry := range result.Diagnostics {
		fmt.Printf("\n- Serial: %s, Type: %s, Location: %s\n",
			entry.SerialNumber, entry.Type, entry.Location)
		fmt.Printf("  Technician: %s, Time: %s\n", entry.Technician, entry.Timestamp)
		fmt.Printf("  Temp: %g°C, CPU: %g%%, Memory: %g%%\n",
			entry.Temperature, entry.CPUUsage, entry.MemoryUsage)
		fmt.Printf("  Issue: %s\n", entry.IssueDetected)
	}
}

func suggestEscalations(input *bufio.Scanner, reports report.Engine) {
	technician, ok := prompt(input, "Enter technician name: ")
	if !ok {
		return
	}

	escalations, err := reports.SuggestEscalations(technician)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("\nEscalation Suggestions:")
	for _, escalation := range escalations {
		fmt.Printf("- %s\n", escalation)
	}
}

func prompt(input *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !input.Scan() {
		return "", false
	}

	return strings.TrimSpace(input.Text()), true
}

func promptFloat(input *bufio.Scanner, label string) (float64, bool) {
	text, ok := prompt(input, label)
	if !ok {
		return 0, false
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		fmt.Println("Invalid number. Try again.")
		return 0, false
	}

	return value, true
}
