// Package scenario evaluates configured scenarios through the sensitivity sweep.
package scenario

import (
	"fmt"

	"github.com/payrollwedge/wagegrowth/internal/config"
	"github.com/payrollwedge/wagegrowth/pkg/wagegrowth"
)

// Result is one evaluated scenario.
type Result struct {
	Name          string             `json:"name"`
	Description   string             `json:"description,omitempty"`
	Beta          float64            `json:"beta"`
	EmployerShare float64            `json:"employer_share"`
	Points        []wagegrowth.Point `json:"points"`
}

// Run evaluates every scenario in cfg in file order.
// The first failing scenario aborts the run.
func Run(cfg *config.Config) ([]Result, error) {
	out := make([]Result, 0, len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		res, err := Evaluate(sc, cfg.Defaults)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// Evaluate runs the sensitivity sweep for a single scenario, falling back to
// d for any parameter the scenario leaves unset.
func Evaluate(sc config.Scenario, d config.Defaults) (Result, error) {
	beta := sc.EffectiveBeta(d)
	share := sc.EffectiveEmployerShare(d)

	pts, err := wagegrowth.SensitivityAnalysis(beta, share, sc.DeltaRange)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return Result{
		Name:          sc.Name,
		Description:   sc.Description,
		Beta:          beta,
		EmployerShare: share,
		Points:        pts,
	}, nil
}
