package fittracker

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Package is one recorded workout: a type code and its positional values.
type Package struct {
	Code string    `yaml:"code" json:"code"`
	Data []float64 `yaml:"data" json:"data"`
}

type packageFile struct {
	Packages []Package `yaml:"packages"`
}

// SamplePackages returns the built-in demo workouts.
func SamplePackages() []Package {
	return []Package{
		{Code: CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{Code: CodeRunning, Data: []float64{16000, 1, 75}},
		{Code: CodeWalking, Data: []float64{9000, 1, 75, 180}},
	}
}

// ParsePackages reads a YAML batch of packages, preserving order.
// Codes are trimmed but otherwise passed to ReadPackage as written.
func ParsePackages(data []byte) ([]Package, error) {
	var raw packageFile
	if err := yaml.UnmarshalStrict(data, &raw); err != nil {
		return nil, fmt.Errorf("parse packages yaml: %w", err)
	}
	for i := range raw.Packages {
		code := strings.TrimSpace(raw.Packages[i].Code)
		if code == "" {
			return nil, fmt.Errorf("package %d: code is required", i)
		}
		raw.Packages[i].Code = code
	}
	return raw.Packages, nil
}

// LoadPackages reads and parses a YAML batch file.
func LoadPackages(path string) ([]Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read packages file: %w", err)
	}
	return ParsePackages(data)
}

// MarshalPackages renders packages in the format ParsePackages reads.
func MarshalPackages(packages []Package) ([]byte, error) {
	out, err := yaml.Marshal(packageFile{Packages: packages})
	if err != nil {
		return nil, fmt.Errorf("marshal packages yaml: %w", err)
	}
	return out, nil
}
