package api

import "github.com/payrollwedge/wagegrowth/pkg/wagegrowth"

// HealthResponse is the payload for GET /api/v1/health.
type HealthResponse struct {
	Status        string `json:"status"`
	ScenarioCount int    `json:"scenario_count"`
	UpdatedAt     string `json:"updated_at,omitempty"` // RFC3339
}

// WageGrowthRequest is the body of POST /api/v1/wage-growth.
// Fields are untyped so that non-numeric values reach validation.
type WageGrowthRequest struct {
	Beta          any `json:"beta"`
	EmployerShare any `json:"employer_share"`
	DeltaSSC      any `json:"delta_ssc"`
}

// WageGrowthResponse is the payload for POST /api/v1/wage-growth.
type WageGrowthResponse struct {
	Reduction float64           `json:"reduction"`
	Impact    wagegrowth.Impact `json:"impact"`
}

// SensitivityRequest is the body of POST /api/v1/sensitivity.
type SensitivityRequest struct {
	Beta          any `json:"beta"`
	EmployerShare any `json:"employer_share"`
	DeltaRange    any `json:"delta_range"`
}

// SensitivityResponse is the payload for POST /api/v1/sensitivity.
type SensitivityResponse struct {
	Points []wagegrowth.Point `json:"points"`
}

type errorResponse struct {
	Error string `json:"error"`
}
