package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	fittracker "github.com/lucasjlepore/fit-tracker"
	"github.com/lucasjlepore/fit-tracker/fitimport"
)

// Run decodes every FIT file, computes its workout summary and writes the
// summary bundle. Files with a sport other than run, walk or swim are
// skipped with a warning; any other failure aborts the run.
func Run(opts Options) (*Result, error) {
	if len(opts.FitPaths) == 0 {
		return nil, fmt.Errorf("at least one fit path is required")
	}
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	labels := opts.Labels
	if labels.Template == "" {
		labels = fittracker.English
	}

	var (
		warnings []string
		sources  []string
		packages []fittracker.Package
	)
	for _, path := range opts.FitPaths {
		imp, err := fitimport.DecodeFile(path, fitimport.Options{
			WeightKG: opts.WeightKG,
			HeightCM: opts.HeightCM,
		})
		if errors.Is(err, fitimport.ErrUnsupportedSport) {
			logger.Warn("skipping fit file", "path", path, "error", err)
			warnings = append(warnings, fmt.Sprintf("%s: %v", filepath.Base(path), err))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("import %s: %w", path, err)
		}
		logger.Info("fit file imported", "path", path, "sport", imp.Sport, "code", imp.Package.Code)
		sources = append(sources, path)
		packages = append(packages, imp.Package)
	}
	if len(packages) == 0 {
		return nil, fmt.Errorf("no supported workouts found")
	}

	messages, err := fittracker.Run(packages, fittracker.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("compute summaries: %w", err)
	}

	summaries := make([]Summary, 0, len(messages))
	for i, m := range messages {
		summaries = append(summaries, NewSummary(sources[i], packages[i].Code, m, labels))
	}

	res, err := Write(opts.OutDir, summaries, WriteOptions{
		Format:    opts.Format,
		Overwrite: opts.Overwrite,
		Lang:      labels.Lang,
		Sources:   sources,
	})
	if err != nil {
		return nil, err
	}
	res.Warnings = warnings
	return res, nil
}

// Write stores summaries in the requested format next to a manifest.json.
func Write(outDir string, summaries []Summary, opts WriteOptions) (*Result, error) {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "parquet" && format != "json" {
		return nil, fmt.Errorf("unsupported format %q (expected csv|parquet|json)", format)
	}
	if err := ensureOutputDir(outDir, opts.Overwrite); err != nil {
		return nil, err
	}

	summariesPath := filepath.Join(outDir, "summaries."+format)
	switch format {
	case "csv":
		if err := writeSummariesCSV(summariesPath, summaries); err != nil {
			return nil, fmt.Errorf("write summaries csv: %w", err)
		}
	case "parquet":
		data, err := MarshalParquet(summaries)
		if err != nil {
			return nil, fmt.Errorf("encode summaries parquet: %w", err)
		}
		if err := os.WriteFile(summariesPath, data, 0o644); err != nil {
			return nil, fmt.Errorf("write summaries parquet: %w", err)
		}
	case "json":
		if err := writeJSON(summariesPath, summaries); err != nil {
			return nil, fmt.Errorf("write summaries json: %w", err)
		}
	}

	manifest := Manifest{
		FormatVersion: FormatVersion,
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		Format:        format,
		Lang:          opts.Lang,
		SummariesPath: filepath.Base(summariesPath),
		RowCount:      len(summaries),
		Sources:       opts.Sources,
	}
	manifestPath := filepath.Join(outDir, "manifest.json")
	if err := writeJSON(manifestPath, manifest); err != nil {
		return nil, fmt.Errorf("write manifest.json: %w", err)
	}

	return &Result{
		OutputDir:     outDir,
		ManifestPath:  manifestPath,
		SummariesPath: summariesPath,
		RunID:         manifest.RunID,
		RowCount:      len(summaries),
	}, nil
}

func ensureOutputDir(path string, overwrite bool) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("read output directory: %w", err)
	}
	if len(entries) > 0 && !overwrite {
		return fmt.Errorf("output directory is not empty: %s (set overwrite=true to allow)", path)
	}
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var summaryCSVHeader = []string{
	"source", "code", "training_type", "duration_h", "distance_km", "speed_kmh", "calories", "message",
}

func writeSummariesCSV(path string, summaries []Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(summaryCSVHeader); err != nil {
		return err
	}
	for _, s := range summaries {
		row := []string{
			s.Source,
			s.Code,
			s.TrainingType,
			formatFloat(s.DurationH),
			formatFloat(s.DistanceKM),
			formatFloat(s.SpeedKMH),
			formatFloat(s.Calories),
			s.Message,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
