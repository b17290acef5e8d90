// Package expo renders scenario results as Prometheus metric families.
//
// Families maps each result onto three gauges:
//
//	wagegrowth_reduction_percent{scenario, index, delta_ssc}
//	wagegrowth_beta{scenario}
//	wagegrowth_employer_share_percent{scenario}
//
// Write encodes them in the text exposition format; Parse reads such text
// back into families.
//
// index is the position of the point in the scenario's delta_range. A range
// may repeat a ΔSSC value; index keeps every sample a distinct series.
package expo

import (
	"fmt"
	"io"
	"strconv"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/payrollwedge/wagegrowth/internal/scenario"
)

// Metric names emitted by Families.
const (
	MetricReduction     = "wagegrowth_reduction_percent"
	MetricBeta          = "wagegrowth_beta"
	MetricEmployerShare = "wagegrowth_employer_share_percent"
)

// Label names attached to every sample.
const (
	LabelScenario = "scenario"
	LabelDeltaSSC = "delta_ssc"
	LabelIndex    = "index"
)

// Families converts results into gauge families. Families with no samples
// are omitted, since the text format cannot carry them.
func Families(results []scenario.Result) []*dto.MetricFamily {
	reduction := gaugeFamily(MetricReduction,
		"Estimated annual wage-growth impact in percent for a ΔSSC change in percentage points.")
	beta := gaugeFamily(MetricBeta, "Shifting coefficient used by the scenario.")
	share := gaugeFamily(MetricEmployerShare, "Employer SSC share of the total tax wedge in percent.")

	for _, r := range results {
		beta.Metric = append(beta.Metric, gauge(r.Beta, label(LabelScenario, r.Name)))
		share.Metric = append(share.Metric, gauge(r.EmployerShare, label(LabelScenario, r.Name)))
		for i, p := range r.Points {
			reduction.Metric = append(reduction.Metric, gauge(p.Reduction,
				label(LabelDeltaSSC, FormatDelta(p.DeltaSSC)),
				label(LabelIndex, strconv.Itoa(i)),
				label(LabelScenario, r.Name),
			))
		}
	}

	out := make([]*dto.MetricFamily, 0, 3)
	for _, mf := range []*dto.MetricFamily{reduction, beta, share} {
		if len(mf.Metric) > 0 {
			out = append(out, mf)
		}
	}
	return out
}

// Write encodes fams to w in the Prometheus text exposition format.
func Write(w io.Writer, fams []*dto.MetricFamily) error {
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range fams {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("expo: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Parse decodes a Prometheus text exposition from r into metric families.
func Parse(r io.Reader) (map[string]*dto.MetricFamily, error) {
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(r)
	if err != nil {
		return nil, fmt.Errorf("expo: parse text: %w", err)
	}
	return mfs, nil
}

// FormatDelta renders a ΔSSC value as a label value: the shortest
// representation that round-trips, e.g. "-1.5" or "2".
func FormatDelta(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}

func gaugeFamily(name, help string) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: dto.MetricType_GAUGE.Enum(),
	}
}

func gauge(v float64, labels ...*dto.LabelPair) *dto.Metric {
	return &dto.Metric{
		Label: labels,
		Gauge: &dto.Gauge{Value: proto.Float64(v)},
	}
}

func label(name, value string) *dto.LabelPair {
	return &dto.LabelPair{Name: proto.String(name), Value: proto.String(value)}
}
