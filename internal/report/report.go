// Package report renders evaluated scenarios for the one-shot CLI.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/payrollwedge/wagegrowth/internal/config"
	"github.com/payrollwedge/wagegrowth/internal/expo"
	"github.com/payrollwedge/wagegrowth/internal/scenario"
	"github.com/payrollwedge/wagegrowth/pkg/wagegrowth"
)

// Render writes results to w in the given format: text | json | prometheus.
func Render(w io.Writer, format string, results []scenario.Result) error {
	switch format {
	case config.FormatText:
		return renderText(w, results)
	case config.FormatJSON:
		return renderJSON(w, results)
	case config.FormatPrometheus:
		return expo.Write(w, expo.Families(results))
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

// renderText writes a heading per scenario followed by its own aligned
// table, so a long name or description never widens the numeric columns.
func renderText(w io.Writer, results []scenario.Result) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "scenario %s  beta %.2f  employer share %.1f%%\n", r.Name, r.Beta, r.EmployerShare)
		if r.Description != "" {
			fmt.Fprintln(w, r.Description)
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "ΔSSC (pp)\twage growth (%)\timpact\t")
		for _, p := range r.Points {
			fmt.Fprintf(tw, "%+.2f\t%+.4f\t%s\t\n", p.DeltaSSC, p.Reduction, wagegrowth.Classify(p.Reduction))
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("report: write text: %w", err)
		}
	}
	return nil
}

type jsonPoint struct {
	wagegrowth.Point
	Impact wagegrowth.Impact `json:"impact"`
}

type jsonResult struct {
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	Beta          float64     `json:"beta"`
	EmployerShare float64     `json:"employer_share"`
	Points        []jsonPoint `json:"points"`
}

func renderJSON(w io.Writer, results []scenario.Result) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		pts := make([]jsonPoint, 0, len(r.Points))
		for _, p := range r.Points {
			pts = append(pts, jsonPoint{Point: p, Impact: wagegrowth.Classify(p.Reduction)})
		}
		out = append(out, jsonResult{
			Name:          r.Name,
			Description:   r.Description,
			Beta:          r.Beta,
			EmployerShare: r.EmployerShare,
			Points:        pts,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	return nil
}
