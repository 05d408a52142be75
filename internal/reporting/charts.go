// Package reporting turns an aggregate QC table into a single self-contained
// HTML document: a summary table plus comparative SVG charts.
package reporting

import (
	"github.com/omics-tools/fastplong-multireport/internal/aggregate"
)

// ChartKind selects the geometry used to draw a chart's series.
type ChartKind int

const (
	KindLine ChartKind = iota
	KindBar
	KindGroupedBar
	KindStackedBar
	KindScatter
)

// Series is one named trace of a chart.
type Series struct {
	Name   string
	Xs     []float64 // line and scatter geometries
	Ys     []float64
	Labels []string // scatter point labels
}

// ChartSpec is a declarative description of one report chart, assembled from
// the aggregate table and rendered to SVG by RenderSVG. Samples missing a
// metric a chart needs are left out of that chart entirely; they are never
// plotted as zero.
type ChartSpec struct {
	ID     string
	Title  string
	Kind   ChartKind
	XLabel string
	YLabel string
	XNames []string // nominal axis for bar geometries: included sample ids
	Series []Series
}

// Empty reports whether no sample contributed data to the chart.
func (s ChartSpec) Empty() bool {
	for _, ser := range s.Series {
		if len(ser.Ys) > 0 {
			return false
		}
	}
	return true
}

// BuildCharts assembles the comparative charts in report order. Quality
// curves longer than maxCurvePoints are thinned before plotting.
func BuildCharts(t *aggregate.Table, maxCurvePoints int) []ChartSpec {
	return []ChartSpec{
		qualityByPosition(t, maxCurvePoints),
		readCounts(t),
		retentionRate(t),
		meanLength(t),
		qualityRates(t),
		lengthVsQuality(t),
		filteringBreakdown(t),
	}
}

func qualityByPosition(t *aggregate.Table, maxPoints int) ChartSpec {
	spec := ChartSpec{
		ID:     "quality_curves",
		Title:  "Mean base quality by position",
		Kind:   KindLine,
		XLabel: "Position in read",
		YLabel: "Mean quality (Phred)",
	}
	for _, r := range t.Rows {
		if len(r.QualityCurve) == 0 {
			continue
		}
		xs, ys := downsampleCurve(r.QualityCurve, maxPoints)
		spec.Series = append(spec.Series, Series{Name: r.SampleID, Xs: xs, Ys: ys})
	}
	return spec
}

func readCounts(t *aggregate.Table) ChartSpec {
	spec := ChartSpec{
		ID:     "read_counts",
		Title:  "Read count before vs after filtering",
		Kind:   KindGroupedBar,
		YLabel: "Reads",
	}
	before := Series{Name: "Before filtering"}
	after := Series{Name: "After filtering"}
	for _, r := range t.Rows {
		if r.ReadsBefore == nil || r.ReadsAfter == nil {
			continue
		}
		spec.XNames = append(spec.XNames, r.SampleID)
		before.Ys = append(before.Ys, float64(*r.ReadsBefore))
		after.Ys = append(after.Ys, float64(*r.ReadsAfter))
	}
	spec.Series = []Series{before, after}
	return spec
}

func retentionRate(t *aggregate.Table) ChartSpec {
	spec := ChartSpec{
		ID:     "retention",
		Title:  "Retention rate per sample",
		Kind:   KindBar,
		YLabel: "Reads retained (%)",
	}
	s := Series{Name: "Retention"}
	for _, r := range t.Rows {
		if r.RetentionRate == nil {
			continue
		}
		spec.XNames = append(spec.XNames, r.SampleID)
		s.Ys = append(s.Ys, *r.RetentionRate*100)
	}
	spec.Series = []Series{s}
	return spec
}

func meanLength(t *aggregate.Table) ChartSpec {
	spec := ChartSpec{
		ID:     "mean_length",
		Title:  "Mean read length after filtering",
		Kind:   KindBar,
		YLabel: "Mean length (bp)",
	}
	s := Series{Name: "Mean length"}
	for _, r := range t.Rows {
		if r.MeanLengthAfter == nil {
			continue
		}
		spec.XNames = append(spec.XNames, r.SampleID)
		s.Ys = append(s.Ys, *r.MeanLengthAfter)
	}
	spec.Series = []Series{s}
	return spec
}

func qualityRates(t *aggregate.Table) ChartSpec {
	spec := ChartSpec{
		ID:     "quality_rates",
		Title:  "Base quality rates per sample",
		Kind:   KindGroupedBar,
		YLabel: "Bases (%)",
	}
	q20 := Series{Name: "Q20 rate"}
	q30 := Series{Name: "Q30 rate"}
	for _, r := range t.Rows {
		if r.Q20Rate == nil || r.Q30Rate == nil {
			continue
		}
		spec.XNames = append(spec.XNames, r.SampleID)
		q20.Ys = append(q20.Ys, *r.Q20Rate*100)
		q30.Ys = append(q30.Ys, *r.Q30Rate*100)
	}
	spec.Series = []Series{q20, q30}
	return spec
}

func lengthVsQuality(t *aggregate.Table) ChartSpec {
	spec := ChartSpec{
		ID:     "scatter_length_q30",
		Title:  "Mean read length vs Q30 rate",
		Kind:   KindScatter,
		XLabel: "Mean length (bp)",
		YLabel: "Q30 rate (%)",
	}
	s := Series{Name: "Samples"}
	for _, r := range t.Rows {
		if r.MeanLengthAfter == nil || r.Q30Rate == nil {
			continue
		}
		s.Xs = append(s.Xs, *r.MeanLengthAfter)
		s.Ys = append(s.Ys, *r.Q30Rate*100)
		s.Labels = append(s.Labels, r.SampleID)
	}
	spec.Series = []Series{s}
	return spec
}

func filteringBreakdown(t *aggregate.Table) ChartSpec {
	spec := ChartSpec{
		ID:     "filtering",
		Title:  "Filtering breakdown per sample",
		Kind:   KindStackedBar,
		YLabel: "Reads",
	}

	var rows []aggregate.Row
	for _, r := range t.Rows {
		if r.ReadsAfter == nil {
			continue
		}
		rows = append(rows, r)
		spec.XNames = append(spec.XNames, r.SampleID)
	}
	if len(rows) == 0 {
		return spec
	}

	passed := Series{Name: "Passed"}
	for _, r := range rows {
		passed.Ys = append(passed.Ys, float64(*r.ReadsAfter))
	}
	spec.Series = append(spec.Series, passed)

	// A reason joins the stack only when every charted sample carries it:
	// stacked bars cannot skip positions without faking zeros.
	reasons := []struct {
		name string
		get  func(aggregate.Row) *int64
	}{
		{"Low quality", func(r aggregate.Row) *int64 { return r.Filter.LowQuality }},
		{"Too short", func(r aggregate.Row) *int64 { return r.Filter.TooShort }},
		{"Too long", func(r aggregate.Row) *int64 { return r.Filter.TooLong }},
		{"Too many N", func(r aggregate.Row) *int64 { return r.Filter.TooManyN }},
		{"Other", func(r aggregate.Row) *int64 { return r.OtherFiltered }},
	}
	for _, reason := range reasons {
		vals := make([]float64, 0, len(rows))
		complete := true
		for _, r := range rows {
			v := reason.get(r)
			if v == nil {
				complete = false
				break
			}
			vals = append(vals, float64(*v))
		}
		if complete {
			spec.Series = append(spec.Series, Series{Name: reason.name, Ys: vals})
		}
	}
	return spec
}

// downsampleCurve thins a quality curve to at most max points by even
// striding, preserving position order.
func downsampleCurve(curve []float64, max int) (xs, ys []float64) {
	n := len(curve)
	step := 1
	if max > 0 && n > max {
		step = (n + max - 1) / max
	}
	xs = make([]float64, 0, (n+step-1)/step)
	ys = make([]float64, 0, cap(xs))
	for i := 0; i < n; i += step {
		xs = append(xs, float64(i))
		ys = append(ys, curve[i])
	}
	return xs, ys
}
