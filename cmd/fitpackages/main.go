package main

import (
	"flag"
	"fmt"
	"os"

	fittracker "github.com/lucasjlepore/fit-tracker"
	"github.com/lucasjlepore/fit-tracker/fitimport"
	"github.com/lucasjlepore/fit-tracker/internal/config"
)

func main() {
	var (
		envFile  = flag.String("env", "", "Optional .env file with FITTRACKER_* settings")
		weightKG = flag.Float64("weight", 0, "Athlete weight in kg (overrides FITTRACKER_WEIGHT_KG)")
		heightCM = flag.Float64("height", 0, "Athlete height in cm, required for walks (overrides FITTRACKER_HEIGHT_CM)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file.fit>...\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Prints a YAML package batch readable by fittracker --packages.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fitpackages failed: %v\n", err)
		os.Exit(1)
	}
	opts := fitimport.Options{WeightKG: cfg.WeightKG, HeightCM: cfg.HeightCM}
	if *weightKG > 0 {
		opts.WeightKG = *weightKG
	}
	if *heightCM > 0 {
		opts.HeightCM = *heightCM
	}

	packages := make([]fittracker.Package, 0, flag.NArg())
	for _, path := range flag.Args() {
		imp, err := fitimport.DecodeFile(path, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fitpackages failed: %s: %v\n", path, err)
			os.Exit(1)
		}
		packages = append(packages, imp.Package)
	}

	out, err := fittracker.MarshalPackages(packages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fitpackages failed: %v\n", err)
		os.Exit(1)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		fmt.Fprintf(os.Stderr, "fitpackages failed: %v\n", err)
		os.Exit(1)
	}
}
