package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/rps/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir           string
	telemetryFile *os.File
	perfFile      *os.File
	runsFile      *os.File

	// Track if headers have been written
	telemetryHeaderWritten bool
	perfHeaderWritten      bool
	runsHeaderWritten      bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	var err error
	if om.telemetryFile, err = os.Create(filepath.Join(dir, "telemetry.csv")); err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	if om.perfFile, err = os.Create(filepath.Join(dir, "perf.csv")); err != nil {
		om.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	if om.runsFile, err = os.Create(filepath.Join(dir, "runs.csv")); err != nil {
		om.Close()
		return nil, fmt.Errorf("creating runs.csv: %w", err)
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// appendRecord writes one record, with a header on the first call.
func appendRecord[T any](f *os.File, headerWritten *bool, record T) error {
	records := []T{record}
	if !*headerWritten {
		if err := gocsv.Marshal(records, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, f)
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := appendRecord(om.telemetryFile, &om.telemetryHeaderWritten, stats); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	if err := appendRecord(om.perfFile, &om.perfHeaderWritten, stats.Row(windowEnd)); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// WriteRun appends a finished run's summary to runs.csv.
func (om *OutputManager) WriteRun(rec RunRecord) error {
	if om == nil {
		return nil
	}
	if err := appendRecord(om.runsFile, &om.runsHeaderWritten, rec); err != nil {
		return fmt.Errorf("writing run: %w", err)
	}
	return nil
}

// WriteSeries writes a run's full time series to <run-id>.csv.
func (om *OutputManager) WriteSeries(runID string, samples []Sample) error {
	if om == nil {
		return nil
	}
	path := filepath.Join(om.dir, runID+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	if err := WriteCSV(f, samples); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.telemetryFile, om.perfFile, om.runsFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
