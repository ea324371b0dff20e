// pkg/validation/validation_test.go
package validation

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestFinite(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"ordinary", 9.8, false},
		{"zero", 0, false},
		{"negative", -3.05, false},
		{"nan", math.NaN(), true},
		{"pos_inf", math.Inf(1), true},
		{"neg_inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Finite("value", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Finite(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("error %v does not wrap ErrInvalidParameter", err)
			}
		})
	}
}

func TestPositive(t *testing.T) {
	if err := Positive("speed", 10); err != nil {
		t.Errorf("Positive(10) = %v", err)
	}
	for _, v := range []float64{0, -1, math.NaN()} {
		if err := Positive("speed", v); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Positive(%v) = %v, expected ErrInvalidParameter", v, err)
		}
	}
}

func TestMinSteps(t *testing.T) {
	if err := MinSteps("steps", 2); err != nil {
		t.Errorf("MinSteps(2) = %v", err)
	}
	if err := MinSteps("steps", 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("MinSteps(1) = %v, expected ErrInvalidParameter", err)
	}
}

func TestAllFinite(t *testing.T) {
	if err := AllFinite(map[string]float64{"x": 1, "y": -2.5}); err != nil {
		t.Errorf("AllFinite = %v", err)
	}
	err := AllFinite(map[string]float64{"x": 1, "angle": math.NaN()})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("AllFinite with NaN = %v, expected ErrInvalidParameter", err)
	}
}

func TestAllFinite_StableReport(t *testing.T) {
	// With several invalid fields the error must name the same field
	// on every run: first in name order.
	values := map[string]float64{
		"z.far":  math.Inf(1),
		"m.mid":  math.Inf(-1),
		"a.near": math.NaN(),
	}
	for i := 0; i < 20; i++ {
		err := AllFinite(values)
		if err == nil || !strings.Contains(err.Error(), "a.near") {
			t.Fatalf("run %d: reported %v, expected a.near", i, err)
		}
	}
}
