// Package loader parses fastplong JSON reports into flat per-sample records.
// Individual files that fail to parse are collected as failures; only the
// all-failed case is fatal to a run.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/omics-tools/fastplong-multireport/internal/discovery"
	"github.com/omics-tools/fastplong-multireport/internal/models"
)

// MalformedReportError indicates one report file could not be read, is not
// valid JSON, or lacks both filtering summaries. It is recorded per file and
// never aborts the batch.
type MalformedReportError struct {
	Path string
	Err  error
}

func (e *MalformedReportError) Error() string {
	return fmt.Sprintf("malformed report %s: %v", e.Path, e.Err)
}

func (e *MalformedReportError) Unwrap() error { return e.Err }

// NoValidReportsError indicates every discovered report failed to parse,
// leaving nothing to aggregate.
type NoValidReportsError struct {
	Failures int
}

func (e *NoValidReportsError) Error() string {
	return fmt.Sprintf("no valid fastplong reports: all %d discovered file(s) failed to parse", e.Failures)
}

// Failure records one report file that could not be used, or a warning-class
// event such as a sample-id collision. Failures are surfaced in the generated
// report rather than aborting the run.
type Failure struct {
	Path string
	Err  error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

// LoadReport parses a single fastplong JSON report into a SampleReport.
// A document missing both the before- and after-filtering summaries is not a
// usable report; anything less than that degrades to nil metric fields.
func LoadReport(path, sampleID string) (*models.SampleReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &MalformedReportError{Path: path, Err: err}
	}

	var raw rawReport
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedReportError{Path: path, Err: err}
	}

	if raw.Summary == nil || (raw.Summary.BeforeFiltering == nil && raw.Summary.AfterFiltering == nil) {
		return nil, &MalformedReportError{Path: path, Err: errors.New("missing before/after filtering summary")}
	}

	rep := &models.SampleReport{
		SampleID:   sampleID,
		SourcePath: path,
	}

	if bf := raw.Summary.BeforeFiltering; bf != nil {
		rep.ReadsBefore = bf.TotalReads
		rep.BasesBefore = bf.TotalBases
	}
	if af := raw.Summary.AfterFiltering; af != nil {
		rep.ReadsAfter = af.TotalReads
		rep.BasesAfter = af.TotalBases
		rep.MeanLengthAfter = af.ReadMeanLength
		rep.Q20Rate = af.Q20Rate
		rep.Q30Rate = af.Q30Rate
		rep.GCContent = af.GCContent
	}
	if fr := raw.FilteringResult; fr != nil {
		rep.Filter = models.FilterCounts{
			LowQuality: fr.LowQualityReads,
			TooShort:   fr.TooShortReads,
			TooLong:    fr.TooLongReads,
			TooManyN:   fr.TooManyNReads,
		}
	}
	rep.QualityCurve = qualityCurve(raw)

	return rep, nil
}

// qualityCurve prefers the after-filtering curve and falls back to the
// before-filtering one.
func qualityCurve(raw rawReport) []float64 {
	for _, rs := range []*rawReadStats{raw.ReadAfterFiltering, raw.ReadBeforeFiltering} {
		if rs != nil && rs.QualityCurves != nil && len(rs.QualityCurves.Mean) > 0 {
			return rs.QualityCurves.Mean
		}
	}
	return nil
}

// LoadAll parses every discovered report, preserving discovery order.
// Per-file failures are collected, not fatal. When two files map to the same
// sample id, the last-discovered one wins: its record replaces the earlier one
// in place, and the replaced file is reported as a failure so the collision is
// visible in the final report.
func LoadAll(files []discovery.ReportFile) ([]models.SampleReport, []Failure) {
	var (
		reports  []models.SampleReport
		failures []Failure
	)
	index := make(map[string]int, len(files))

	for _, f := range files {
		rep, err := LoadReport(f.Path, f.SampleID)
		if err != nil {
			slog.Warn("skipping report", "path", f.Path, "error", err)
			failures = append(failures, Failure{Path: f.Path, Err: err})
			continue
		}

		if prev, ok := index[f.SampleID]; ok {
			slog.Warn("duplicate sample id, keeping last discovered",
				"sample", f.SampleID, "replaced", reports[prev].SourcePath, "kept", f.Path)
			failures = append(failures, Failure{
				Path: reports[prev].SourcePath,
				Err:  fmt.Errorf("duplicate sample id %q: replaced by %s", f.SampleID, f.Path),
			})
			reports[prev] = *rep
			continue
		}

		index[f.SampleID] = len(reports)
		reports = append(reports, *rep)
	}

	return reports, failures
}
