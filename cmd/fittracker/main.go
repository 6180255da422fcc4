package main

import (
	"flag"
	"fmt"
	"os"

	fittracker "github.com/lucasjlepore/fit-tracker"
	"github.com/lucasjlepore/fit-tracker/internal/config"
)

func main() {
	var (
		envFile      = flag.String("env", "", "Optional .env file with FITTRACKER_* settings")
		packagesPath = flag.String("packages", "", "YAML batch of workout packages (defaults to the built-in samples)")
		lang         = flag.String("lang", "", "Summary language: en|ru (overrides FITTRACKER_LANG)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [--packages batch.yaml] [--lang en|ru] [--env .env]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fittracker failed: %v\n", err)
		os.Exit(1)
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fittracker failed: %v\n", err)
		os.Exit(1)
	}
	if *lang != "" {
		cfg.Lang = *lang
	}
	labels, err := fittracker.LabelsFor(cfg.Lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fittracker failed: %v\n", err)
		os.Exit(2)
	}

	packages := fittracker.SamplePackages()
	if *packagesPath != "" {
		packages, err = fittracker.LoadPackages(*packagesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fittracker failed: %v\n", err)
			os.Exit(1)
		}
	}

	messages, runErr := fittracker.Run(packages, fittracker.WithLogger(logger))
	// Packages processed before a failure are still reported.
	if err := fittracker.Print(os.Stdout, messages, labels); err != nil {
		fmt.Fprintf(os.Stderr, "fittracker failed: %v\n", err)
		os.Exit(1)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "fittracker failed: %v\n", runErr)
		os.Exit(1)
	}
}
