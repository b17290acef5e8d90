package wagegrowth

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// WageGrowthReductionAny is WageGrowthReduction for values of unknown type,
// such as those produced by decoding JSON into interface{}. Each argument must
// hold a Go numeric value or a json.Number; strings, booleans and nil are
// rejected with ErrInvalidArgument.
func WageGrowthReductionAny(beta, employerShare, deltaSSC any) (float64, error) {
	b, err := toFloat("beta", beta)
	if err != nil {
		return 0, err
	}
	s, err := toFloat("employerShare", employerShare)
	if err != nil {
		return 0, err
	}
	d, err := toFloat("deltaSSC", deltaSSC)
	if err != nil {
		return 0, err
	}
	return WageGrowthReduction(b, s, d)
}

// SensitivityAnalysisAny is SensitivityAnalysis for a deltaRange of unknown
// type. deltaRange must be a slice or array; anything else fails before any
// computation. Elements are converted one at a time as the sweep reaches them,
// so a non-numeric element fails at its own turn.
func SensitivityAnalysisAny(baseBeta, baseShare, deltaRange any) ([]Point, error) {
	rv := reflect.ValueOf(deltaRange)
	if deltaRange == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, invalid("deltaRange", "must be a sequence of numbers")
	}
	b, err := toFloat("beta", baseBeta)
	if err != nil {
		return nil, err
	}
	s, err := toFloat("employerShare", baseShare)
	if err != nil {
		return nil, err
	}
	if err := ValidateParams(b, s); err != nil {
		return nil, err
	}

	out := make([]Point, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		d, err := toFloat(fmt.Sprintf("deltaRange[%d]", i), rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		r, err := WageGrowthReduction(b, s, d)
		if err != nil {
			return nil, err
		}
		out = append(out, Point{DeltaSSC: d, Reduction: r})
	}
	return out, nil
}

// toFloat converts a numeric value of any Go kind to float64.
func toFloat(param string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, invalid(param, "must be a number")
		}
		return f, nil
	default:
		return 0, invalid(param, "must be a number")
	}
}
