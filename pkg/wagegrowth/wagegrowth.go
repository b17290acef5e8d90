package wagegrowth

import "math"

// Bounds for the validated inputs.
const (
	MinBeta = 0.5
	MaxBeta = 1.0

	MinEmployerShare = 0.0
	MaxEmployerShare = 100.0
)

// Impact labels returned by Classify.
const (
	ImpactDrag    Impact = "drag"
	ImpactBoost   Impact = "boost"
	ImpactNeutral Impact = "neutral"
)

// Impact names the direction of a wage-growth change.
type Impact string

// Point pairs one ΔSSC input with the reduction it produces.
type Point struct {
	DeltaSSC  float64 `json:"delta_ssc"`
	Reduction float64 `json:"reduction"`
}

// WageGrowthReduction returns the annual wage-growth impact in percent of a
// deltaSSC percentage-point change in the employer payroll tax rate.
//
//	result = -beta * (employerShare / 100) * deltaSSC
//
// beta must lie in [0.5, 1.0] and employerShare in [0, 100]; deltaSSC may be
// any finite value. The first violated constraint is returned as an
// *InvalidArgumentError.
func WageGrowthReduction(beta, employerShare, deltaSSC float64) (float64, error) {
	if err := ValidateParams(beta, employerShare); err != nil {
		return 0, err
	}
	if !isFinite(deltaSSC) {
		return 0, invalid("deltaSSC", "must be a finite number")
	}
	return -beta * (employerShare / 100) * deltaSSC, nil
}

// SensitivityAnalysis runs WageGrowthReduction for every delta in deltaRange,
// in order, and returns one Point per element.
//
// The base parameters are checked before the first element so an invalid
// beta or share fails even for an empty range. The first failing element
// aborts the sweep; no partial result is returned.
func SensitivityAnalysis(baseBeta, baseShare float64, deltaRange []float64) ([]Point, error) {
	if err := ValidateParams(baseBeta, baseShare); err != nil {
		return nil, err
	}
	out := make([]Point, 0, len(deltaRange))
	for _, delta := range deltaRange {
		r, err := WageGrowthReduction(baseBeta, baseShare, delta)
		if err != nil {
			return nil, err
		}
		out = append(out, Point{DeltaSSC: delta, Reduction: r})
	}
	return out, nil
}

// ValidateParams checks beta and employerShare against their domains.
func ValidateParams(beta, employerShare float64) error {
	if !isFinite(beta) || beta < MinBeta || beta > MaxBeta {
		return invalid("beta", "must be a number between 0.5 and 1")
	}
	if !isFinite(employerShare) || employerShare < MinEmployerShare || employerShare > MaxEmployerShare {
		return invalid("employerShare", "must be between 0 and 100")
	}
	return nil
}

// Classify maps a reduction to its direction: negative drags wage growth,
// positive boosts it.
func Classify(reduction float64) Impact {
	switch {
	case reduction < 0:
		return ImpactDrag
	case reduction > 0:
		return ImpactBoost
	default:
		return ImpactNeutral
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
