// Package wagegrowth estimates the annual wage-growth impact of a change in
// employer-side payroll tax (SSC) rates using a linear incidence model:
//
//	ΔW_g = -β × (SSC_e / SSC_t) × ΔSSC_e
//
// β is the shifting coefficient (0.5–1.0, higher for rigid labour markets),
// SSC_e / SSC_t is the employer share of the total tax wedge in percent
// (0–100), and ΔSSC_e is the change in the employer rate in percentage
// points. A negative result is a drag on wage growth, a positive one a boost.
//
// wagegrowth.go holds the typed API: WageGrowthReduction and the
// SensitivityAnalysis sweep built on top of it.
//
// values.go accepts untyped values decoded from YAML or JSON and applies the
// same rules, rejecting non-numeric inputs and non-sequence ranges.
//
// Every function is pure. Validation failures wrap ErrInvalidArgument.
package wagegrowth
