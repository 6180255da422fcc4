// Package fitimport turns Garmin FIT activity files into workout packages.
package fitimport

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	fittracker "github.com/lucasjlepore/fit-tracker"
	"github.com/tormoder/fit"
)

const (
	secondsPerHour  = 3600.0
	poolLengthScale = 100.0
)

var (
	// ErrUnsupportedSport is returned for sessions that are not a run, walk or swim.
	ErrUnsupportedSport = errors.New("unsupported sport")
	// ErrNoSession is returned for activity files without a session message.
	ErrNoSession = errors.New("activity file has no session message")
)

// Options carries athlete inputs that FIT sessions do not record.
type Options struct {
	WeightKG float64
	HeightCM float64
}

// Import is one decoded activity.
type Import struct {
	Source    string             `json:"source"`
	Sport     string             `json:"sport"`
	SubSport  string             `json:"sub_sport"`
	StartTime time.Time          `json:"start_time"`
	Package   fittracker.Package `json:"package"`
}

// DecodeFile opens and decodes a FIT activity file.
func DecodeFile(path string, opts Options) (*Import, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open FIT file: %w", err)
	}
	defer f.Close()

	imp, err := Decode(f, opts)
	if err != nil {
		return nil, err
	}
	imp.Source = path
	return imp, nil
}

// Decode reads a FIT activity and derives a package from its first session.
//
// Strides (running, walking) and strokes (swimming) come from the session
// cycle count; the duration is the timer time in hours.
func Decode(r io.Reader, opts Options) (*Import, error) {
	decoded, err := fit.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode FIT file: %w", err)
	}
	activity, err := decoded.Activity()
	if err != nil {
		return nil, fmt.Errorf("activity FIT expected: %w", err)
	}
	if len(activity.Sessions) == 0 || activity.Sessions[0] == nil {
		return nil, ErrNoSession
	}
	session := activity.Sessions[0]

	imp := &Import{
		Sport:     fmt.Sprint(session.Sport),
		SubSport:  fmt.Sprint(session.SubSport),
		StartTime: validTimeOrZero(session.StartTime),
	}

	seconds := safePositive(session.GetTotalTimerTimeScaled())
	if seconds == 0 {
		seconds = safePositive(session.GetTotalElapsedTimeScaled())
	}
	if seconds == 0 {
		return nil, fmt.Errorf("session has no timer time")
	}
	hours := seconds / secondsPerHour
	cycles := float64(validUint32(session.TotalCycles))

	weight := safePositive(opts.WeightKG)
	if weight == 0 {
		return nil, fmt.Errorf("athlete weight is required")
	}

	switch session.Sport {
	case fit.SportRunning:
		imp.Package = fittracker.Package{
			Code: fittracker.CodeRunning,
			Data: []float64{cycles, hours, weight},
		}
	case fit.SportWalking:
		height := safePositive(opts.HeightCM)
		if height == 0 {
			return nil, fmt.Errorf("athlete height is required for walking sessions")
		}
		imp.Package = fittracker.Package{
			Code: fittracker.CodeWalking,
			Data: []float64{cycles, hours, weight, height},
		}
	case fit.SportSwimming:
		poolLength := float64(validUint16(session.PoolLength)) / poolLengthScale
		if poolLength == 0 {
			return nil, fmt.Errorf("swimming session has no pool length")
		}
		lengths := validUint16(session.NumActiveLengths)
		if lengths == 0 {
			lengths = validUint16(session.NumLengths)
		}
		imp.Package = fittracker.Package{
			Code: fittracker.CodeSwimming,
			Data: []float64{cycles, hours, weight, poolLength, float64(lengths)},
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSport, imp.Sport)
	}
	return imp, nil
}

func validTimeOrZero(t time.Time) time.Time {
	if t.IsZero() || fit.IsBaseTime(t) {
		return time.Time{}
	}
	return t
}

func validUint16(v uint16) uint16 {
	if v == math.MaxUint16 {
		return 0
	}
	return v
}

func validUint32(v uint32) uint32 {
	if v == math.MaxUint32 {
		return 0
	}
	return v
}

func safePositive(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}
