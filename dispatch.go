package fittracker

import (
	"errors"
	"fmt"
)

// Workout type codes accepted by ReadPackage.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// ErrUnknownWorkoutType matches every *UnknownWorkoutTypeError.
var ErrUnknownWorkoutType = errors.New("unknown workout type")

// UnknownWorkoutTypeError reports a package code with no workout kind.
type UnknownWorkoutTypeError struct {
	Code string
}

func (e *UnknownWorkoutTypeError) Error() string {
	return fmt.Sprintf("unknown workout type %q", e.Code)
}

func (e *UnknownWorkoutTypeError) Is(target error) bool {
	return target == ErrUnknownWorkoutType
}

type trainingMode struct {
	arity int
	build func(data []float64) Training
}

var trainingModes = map[string]trainingMode{
	CodeSwimming: {
		arity: 5,
		build: func(d []float64) Training {
			return NewSwimming(int(d[0]), d[1], d[2], d[3], int(d[4]))
		},
	},
	CodeRunning: {
		arity: 3,
		build: func(d []float64) Training {
			return NewRunning(int(d[0]), d[1], d[2])
		},
	},
	CodeWalking: {
		arity: 4,
		build: func(d []float64) Training {
			return NewSportsWalking(int(d[0]), d[1], d[2], d[3])
		},
	},
}

// ReadPackage builds the workout kind named by code from its positional
// sensor values. Integer positions (strides/strokes, pool lengths) are
// truncated.
func ReadPackage(code string, data []float64) (Training, error) {
	mode, ok := trainingModes[code]
	if !ok {
		return nil, &UnknownWorkoutTypeError{Code: code}
	}
	if len(data) != mode.arity {
		return nil, fmt.Errorf("build %s training: expected %d values, got %d", code, mode.arity, len(data))
	}
	return mode.build(data), nil
}
