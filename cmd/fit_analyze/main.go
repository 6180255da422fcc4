package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fittracker "github.com/lucasjlepore/fit-tracker"
	"github.com/lucasjlepore/fit-tracker/internal/config"
	"github.com/lucasjlepore/fit-tracker/pipeline"
)

func main() {
	var (
		envFile   = flag.String("env", "", "Optional .env file with FITTRACKER_* settings")
		outDir    = flag.String("out", "", "Output directory")
		weightKG  = flag.Float64("weight", 0, "Athlete weight in kg (overrides FITTRACKER_WEIGHT_KG)")
		heightCM  = flag.Float64("height", 0, "Athlete height in cm, required for walks (overrides FITTRACKER_HEIGHT_CM)")
		format    = flag.String("format", "", "Summary format: csv|parquet|json (overrides FITTRACKER_FORMAT)")
		lang      = flag.String("lang", "", "Summary language: en|ru (overrides FITTRACKER_LANG)")
		overwrite = flag.Bool("overwrite", true, "Allow writing into non-empty output directories")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --out outdir [--weight 72.5] [--height 180] [--format csv|parquet|json] <file.fit>...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || strings.TrimSpace(*outDir) == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fit_analyze failed: %v\n", err)
		os.Exit(1)
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fit_analyze failed: %v\n", err)
		os.Exit(1)
	}
	if *weightKG > 0 {
		cfg.WeightKG = *weightKG
	}
	if *heightCM > 0 {
		cfg.HeightCM = *heightCM
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *lang != "" {
		cfg.Lang = *lang
	}
	labels, err := fittracker.LabelsFor(cfg.Lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fit_analyze failed: %v\n", err)
		os.Exit(2)
	}

	result, err := pipeline.Run(pipeline.Options{
		FitPaths:  flag.Args(),
		OutDir:    *outDir,
		WeightKG:  cfg.WeightKG,
		HeightCM:  cfg.HeightCM,
		Format:    cfg.Format,
		Labels:    labels,
		Overwrite: *overwrite,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "fit_analyze failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("fit_analyze complete\n")
	fmt.Printf("Output dir:  %s\n", result.OutputDir)
	fmt.Printf("manifest:    %s\n", result.ManifestPath)
	fmt.Printf("summaries:   %s (%d rows)\n", result.SummariesPath, result.RowCount)
	fmt.Printf("run id:      %s\n", result.RunID)
	for _, w := range result.Warnings {
		fmt.Printf("warning:     %s\n", w)
	}
}
