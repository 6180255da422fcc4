package pipeline

import (
	"log/slog"
	"time"

	fittracker "github.com/lucasjlepore/fit-tracker"
)

// FormatVersion identifies the on-disk schema of a summary bundle.
const FormatVersion = "fit_tracker_summaries_v1"

// Options configures the FIT-to-summary pipeline.
type Options struct {
	FitPaths  []string
	OutDir    string
	WeightKG  float64
	HeightCM  float64
	Format    string // csv|parquet|json
	Labels    fittracker.Labels
	Overwrite bool
	Logger    *slog.Logger
}

// WriteOptions configures how summaries are written.
type WriteOptions struct {
	Format    string // csv|parquet|json
	Overwrite bool
	Lang      string
	Sources   []string
}

// Result returns generated output paths.
type Result struct {
	OutputDir     string   `json:"output_dir"`
	ManifestPath  string   `json:"manifest_path"`
	SummariesPath string   `json:"summaries_path"`
	RunID         string   `json:"run_id"`
	RowCount      int      `json:"row_count"`
	Warnings      []string `json:"warnings,omitempty"`
}

// Summary is one exported workout row.
type Summary struct {
	Source       string  `json:"source"`
	Code         string  `json:"code"`
	TrainingType string  `json:"training_type"`
	DurationH    float64 `json:"duration_h"`
	DistanceKM   float64 `json:"distance_km"`
	SpeedKMH     float64 `json:"speed_kmh"`
	Calories     float64 `json:"calories"`
	Message      string  `json:"message"`
}

// Manifest captures bundle metadata and a pointer to the summaries file.
type Manifest struct {
	FormatVersion string    `json:"format_version"`
	RunID         string    `json:"run_id"`
	GeneratedAt   time.Time `json:"generated_at"`
	Format        string    `json:"format"`
	Lang          string    `json:"lang"`
	SummariesPath string    `json:"summaries_path"`
	RowCount      int       `json:"row_count"`
	Sources       []string  `json:"sources,omitempty"`
}

// NewSummary flattens a computed message into an export row.
func NewSummary(source, code string, m fittracker.InfoMessage, labels fittracker.Labels) Summary {
	return Summary{
		Source:       source,
		Code:         code,
		TrainingType: m.TrainingType,
		DurationH:    m.Duration,
		DistanceKM:   m.Distance,
		SpeedKMH:     m.Speed,
		Calories:     m.Calories,
		Message:      m.Format(labels),
	}
}
