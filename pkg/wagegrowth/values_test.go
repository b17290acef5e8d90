package wagegrowth

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestWageGrowthReductionAny_NumericKinds(t *testing.T) {
	tests := []struct {
		name                  string
		beta, share, deltaSSC any
		want                  float64
	}{
		{"float64", 0.6, 50.0, 2.0, -0.6},
		{"ints", 1, 100, -5, 5},
		{"mixed widths", float32(0.5), uint8(40), int64(1), -0.2},
		{"json.Number", json.Number("0.8"), json.Number("100"), json.Number("-5"), 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := WageGrowthReductionAny(tc.beta, tc.share, tc.deltaSSC)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got, tc.want, 1e-6) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWageGrowthReductionAny_NonNumeric(t *testing.T) {
	tests := []struct {
		name                  string
		beta, share, deltaSSC any
		wantParam             string
	}{
		{"string beta", "0.6", 50, 2, "beta"},
		{"nil share", 0.6, nil, 2, "employerShare"},
		{"bool delta", 0.6, 50, true, "deltaSSC"},
		{"bad json.Number", 0.6, 50, json.Number("x"), "deltaSSC"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := WageGrowthReductionAny(tc.beta, tc.share, tc.deltaSSC)
			var ia *InvalidArgumentError
			if !errors.As(err, &ia) {
				t.Fatalf("error = %v, want *InvalidArgumentError", err)
			}
			if ia.Param != tc.wantParam {
				t.Errorf("Param = %q, want %q", ia.Param, tc.wantParam)
			}
		})
	}
}

func TestSensitivityAnalysisAny_NotASequence(t *testing.T) {
	for _, in := range []any{"not-an-array", nil, 42, map[string]any{"a": 1}} {
		got, err := SensitivityAnalysisAny(0.6, 50, in)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SensitivityAnalysisAny(%#v) error = %v, want ErrInvalidArgument", in, err)
		}
		if got != nil {
			t.Errorf("SensitivityAnalysisAny(%#v) returned %v", in, got)
		}
	}
}

func TestSensitivityAnalysisAny_Sequences(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"[]any from JSON", []any{1.0, 2.0, -1.0}},
		{"[]float64", []float64{1, 2, -1}},
		{"[]int", []int{1, 2, -1}},
		{"array", [3]float64{1, 2, -1}},
	}
	want := []Point{{1, -0.3}, {2, -0.6}, {-1, 0.3}}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SensitivityAnalysisAny(0.6, 50, tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("len = %d, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i].DeltaSSC != want[i].DeltaSSC || !almostEqual(got[i].Reduction, want[i].Reduction, 1e-9) {
					t.Errorf("[%d] = %+v, want %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestSensitivityAnalysisAny_NonNumericElementFailsAtItsIndex(t *testing.T) {
	got, err := SensitivityAnalysisAny(0.6, 50, []any{1.0, 2.0, "three", 4.0})
	var ia *InvalidArgumentError
	if !errors.As(err, &ia) {
		t.Fatalf("error = %v, want *InvalidArgumentError", err)
	}
	if ia.Param != "deltaRange[2]" {
		t.Errorf("Param = %q, want deltaRange[2]", ia.Param)
	}
	if got != nil {
		t.Errorf("partial result returned: %v", got)
	}
}

func TestSensitivityAnalysisAny_InvalidBase(t *testing.T) {
	_, err := SensitivityAnalysisAny(0.3, 50, []any{})
	var ia *InvalidArgumentError
	if !errors.As(err, &ia) || ia.Param != "beta" {
		t.Fatalf("error = %v, want beta InvalidArgument", err)
	}
	_, err = SensitivityAnalysisAny(0.6, "fifty", []any{1.0})
	if !errors.As(err, &ia) || ia.Param != "employerShare" {
		t.Fatalf("error = %v, want employerShare InvalidArgument", err)
	}
}
