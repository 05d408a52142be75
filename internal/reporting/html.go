package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strconv"
	"time"

	"github.com/omics-tools/fastplong-multireport/internal/aggregate"
	"github.com/omics-tools/fastplong-multireport/internal/projectconfig"
	"gonum.org/v1/plot/vg"
)

// Params carries caller-supplied report configuration. Zero values fall back
// to the projectconfig defaults; OutlierZ <= 0 disables outlier notes.
type Params struct {
	Title          string
	ChartWidth     int // vg points
	ChartHeight    int
	MaxCurvePoints int
	OutlierZ       float64
	GeneratedAt    time.Time
	Warnings       []string
}

func (p Params) normalized() Params {
	if p.Title == "" {
		p.Title = projectconfig.DefaultTitle
	}
	if p.ChartWidth <= 0 {
		p.ChartWidth = projectconfig.DefaultChartWidth
	}
	if p.ChartHeight <= 0 {
		p.ChartHeight = projectconfig.DefaultChartHeight
	}
	if p.MaxCurvePoints <= 0 {
		p.MaxCurvePoints = projectconfig.DefaultMaxCurvePoints
	}
	if p.GeneratedAt.IsZero() {
		p.GeneratedAt = time.Now()
	}
	return p
}

// section is one navigable block of the report.
type section struct {
	ID    string
	Title string
	SVG   template.HTML
	Table *summaryTable
}

type summaryTable struct {
	Header []string
	Rows   [][]string
}

type reportData struct {
	Title       string
	GeneratedAt string
	SampleCount int
	Sections    []section
	Outliers    []string
	Warnings    []string
}

// Generate renders the whole report document into memory. Nothing touches the
// filesystem here, so a failed render never leaves a partial file behind.
func Generate(t *aggregate.Table, p Params) ([]byte, error) {
	p = p.normalized()

	sections := []section{{
		ID:    "summary_table",
		Title: "Summary",
		Table: buildSummaryTable(t),
	}}

	for _, spec := range BuildCharts(t, p.MaxCurvePoints) {
		if spec.Empty() {
			continue
		}
		svg, err := RenderSVG(spec, vg.Length(p.ChartWidth), vg.Length(p.ChartHeight))
		if err != nil {
			return nil, err
		}
		sections = append(sections, section{ID: spec.ID, Title: spec.Title, SVG: template.HTML(svg)})
	}

	data := reportData{
		Title:       p.Title,
		GeneratedAt: p.GeneratedAt.Format("2006-01-02 15:04:05"),
		SampleCount: len(t.Rows),
		Sections:    sections,
		Outliers:    outlierNotes(t, p.OutlierZ),
		Warnings:    p.Warnings,
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering report template: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders the report and writes it to path. The file is only created
// once the whole document has rendered.
func Write(path string, t *aggregate.Table, p Params) error {
	data, err := Generate(t, p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func outlierNotes(t *aggregate.Table, z float64) []string {
	if z <= 0 {
		return nil
	}
	var notes []string
	for _, m := range []aggregate.Metric{
		aggregate.MetricRetentionRate,
		aggregate.MetricMeanLength,
		aggregate.MetricQ30Rate,
		aggregate.MetricGCContent,
	} {
		for _, o := range t.Outliers(m, z) {
			notes = append(notes, fmt.Sprintf("%s: %s = %.4g (z = %+.1f)", o.SampleID, o.Metric, o.Value, o.ZScore))
		}
	}
	return notes
}

// missingCell marks a metric the sample's report did not carry. It is
// rendered verbatim, never coerced to zero.
const missingCell = "n/a"

func buildSummaryTable(t *aggregate.Table) *summaryTable {
	st := &summaryTable{
		Header: []string{
			"Sample", "Reads (before)", "Reads (after)", "Retention %", "Base retention %",
			"Mean length (bp)", "Q20 %", "Q30 %", "GC %",
			"Low quality", "Too short", "Too long", "Too many N", "Other", "Total filtered",
		},
	}
	for _, r := range t.Rows {
		st.Rows = append(st.Rows, []string{
			r.SampleID,
			fmtCount(r.ReadsBefore),
			fmtCount(r.ReadsAfter),
			fmtRate(r.RetentionRate, 1),
			fmtRate(r.BaseRetentionRate, 1),
			fmtFloat(r.MeanLengthAfter, 1),
			fmtRate(r.Q20Rate, 1),
			fmtRate(r.Q30Rate, 1),
			fmtRate(r.GCContent, 2),
			fmtCount(r.Filter.LowQuality),
			fmtCount(r.Filter.TooShort),
			fmtCount(r.Filter.TooLong),
			fmtCount(r.Filter.TooManyN),
			fmtCount(r.OtherFiltered),
			fmtCount(r.TotalFiltered),
		})
	}
	return st
}

func fmtCount(v *int64) string {
	if v == nil {
		return missingCell
	}
	return strconv.FormatInt(*v, 10)
}

// fmtRate renders a fraction as a percentage.
func fmtRate(v *float64, digits int) string {
	if v == nil {
		return missingCell
	}
	return strconv.FormatFloat(*v*100, 'f', digits, 64)
}

func fmtFloat(v *float64, digits int) string {
	if v == nil {
		return missingCell
	}
	return strconv.FormatFloat(*v, 'f', digits, 64)
}
