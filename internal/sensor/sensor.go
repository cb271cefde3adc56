// Package sensor turns raw sensor packages into typed workout sessions.
package sensor

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"fitness-tracker/internal/training"
)

// ErrUnknownWorkoutType is returned when a package carries an unrecognised code
var ErrUnknownWorkoutType = errors.New("unknown workout type")

// ErrInvalidArgumentCount is returned when a package has too few or too many values
var ErrInvalidArgumentCount = errors.New("invalid argument count")

// ErrInvalidValue is returned when a reading cannot describe a real session
var ErrInvalidValue = errors.New("invalid sensor value")

// Workout codes
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// reader builds a session from positional values of the expected length
type reader struct {
	fields int
	build  func(data []float64) (training.Training, error)
}

var readers = map[string]reader{
	CodeSwimming: {fields: 5, build: readSwimming},
	CodeRunning:  {fields: 3, build: readRunning},
	CodeWalking:  {fields: 4, build: readWalking},
}

// Codes returns the recognised workout codes in sorted order
func Codes() []string {
	codes := make([]string, 0, len(readers))
	for code := range readers {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ReadPackage builds the workout session described by a sensor package.
// Values are assigned positionally: action, duration (hours), weight (kg),
// then the workout-specific extras (height in cm for walking; pool length
// in metres and lap count for swimming).
func ReadPackage(code string, data []float64) (training.Training, error) {
	r, ok := readers[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownWorkoutType, code, strings.Join(Codes(), ", "))
	}
	if len(data) != r.fields {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrInvalidArgumentCount, code, r.fields, len(data))
	}
	return r.build(data)
}

func readRunning(data []float64) (training.Training, error) {
	action, hours, weight, err := readCommon(data)
	if err != nil {
		return nil, err
	}
	return training.NewRunning(action, hours, weight), nil
}

func readWalking(data []float64) (training.Training, error) {
	action, hours, weight, err := readCommon(data)
	if err != nil {
		return nil, err
	}
	height := data[3]
	if !(height > 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: height must be positive, got %v", ErrInvalidValue, height)
	}
	return training.NewSportsWalking(action, hours, weight, height), nil
}

func readSwimming(data []float64) (training.Training, error) {
	action, hours, weight, err := readCommon(data)
	if err != nil {
		return nil, err
	}
	poolLength, err := count("pool length", data[3])
	if err != nil {
		return nil, err
	}
	poolLaps, err := count("pool laps", data[4])
	if err != nil {
		return nil, err
	}
	return training.NewSwimming(action, hours, weight, poolLength, poolLaps), nil
}

// readCommon extracts the action, duration and weight shared by every package
func readCommon(data []float64) (int, float64, float64, error) {
	action, err := count("action", data[0])
	if err != nil {
		return 0, 0, 0, err
	}
	hours := data[1]
	if !(hours > 0) || math.IsInf(hours, 0) {
		return 0, 0, 0, fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidValue, hours)
	}
	weight := data[2]
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, 0, 0, fmt.Errorf("%w: weight must be a finite number, got %v", ErrInvalidValue, weight)
	}
	return action, hours, weight, nil
}

// count converts a reading that must be a non-negative whole number
func count(field string, v float64) (int, error) {
	if v < 0 || v != math.Trunc(v) || math.IsInf(v, 0) || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be a non-negative whole number, got %v", ErrInvalidValue, field, v)
	}
	return int(v), nil
}
