package aggregate

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Metric identifies a numeric table column that cross-sample statistics can
// run over.
type Metric string

const (
	MetricRetentionRate Metric = "retention_rate"
	MetricMeanLength    Metric = "mean_length"
	MetricQ20Rate       Metric = "q20_rate"
	MetricQ30Rate       Metric = "q30_rate"
	MetricGCContent     Metric = "gc_content"
)

// value extracts one metric from a row, nil when the sample lacks it.
func (r Row) value(m Metric) *float64 {
	switch m {
	case MetricRetentionRate:
		return r.RetentionRate
	case MetricMeanLength:
		return r.MeanLengthAfter
	case MetricQ20Rate:
		return r.Q20Rate
	case MetricQ30Rate:
		return r.Q30Rate
	case MetricGCContent:
		return r.GCContent
	}
	return nil
}

// Stats summarizes one metric across the samples that carry it.
type Stats struct {
	Metric Metric
	N      int
	Mean   float64
	StdDev float64
}

// MetricStats computes mean and standard deviation of a metric over the
// samples where it is present. The second return is false when no sample
// carries the metric.
func (t *Table) MetricStats(m Metric) (Stats, bool) {
	var vals []float64
	for _, r := range t.Rows {
		if v := r.value(m); v != nil {
			vals = append(vals, *v)
		}
	}
	if len(vals) == 0 {
		return Stats{}, false
	}

	mean, std := stat.MeanStdDev(vals, nil)
	if len(vals) < 2 {
		std = 0
	}
	return Stats{Metric: m, N: len(vals), Mean: mean, StdDev: std}, true
}

// Outlier flags a sample whose metric sits beyond the z-score threshold.
type Outlier struct {
	SampleID string
	Metric   Metric
	Value    float64
	ZScore   float64
}

// Outliers returns samples whose metric deviates from the cross-sample mean
// by more than zThreshold standard deviations. Samples missing the metric are
// not candidates.
func (t *Table) Outliers(m Metric, zThreshold float64) []Outlier {
	s, ok := t.MetricStats(m)
	if !ok || s.StdDev == 0 {
		return nil
	}

	var out []Outlier
	for _, r := range t.Rows {
		v := r.value(m)
		if v == nil {
			continue
		}
		z := stat.StdScore(*v, s.Mean, s.StdDev)
		if math.Abs(z) > zThreshold {
			out = append(out, Outlier{SampleID: r.SampleID, Metric: m, Value: *v, ZScore: z})
		}
	}
	return out
}
