// Package validation provides boundary checks for shot parameters.
// The core sampler accepts any finite input, so everything rejected
// here is rejected before a simulation starts; nothing errors
// mid-flight.
package validation

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidParameter marks inputs the simulation refuses to run with.
// Callers match it with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// Finite rejects NaN and infinite values.
func Finite(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParameter, name, value)
	}
	return nil
}

// Positive rejects non-finite and non-positive values.
func Positive(name string, value float64) error {
	if err := Finite(name, value); err != nil {
		return err
	}
	if value <= 0 {
		return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidParameter, name, value)
	}
	return nil
}

// MinSteps rejects step counts too small to describe an arc. Two
// instants (release and one more) is the floor.
func MinSteps(name string, value int) error {
	if value < 2 {
		return fmt.Errorf("%w: %s must be >= 2, got %d", ErrInvalidParameter, name, value)
	}
	return nil
}

// AllFinite applies Finite to a set of named values, checking in name
// order so the reported field is stable across runs. Angles and
// heights pass through here rather than Positive: a downward or
// backward throw is legal physics.
func AllFinite(values map[string]float64) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := Finite(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}
