package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/omics-tools/fastplong-multireport/internal/discovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullReport = `{
  "summary": {
    "before_filtering": {
      "total_reads": 1000,
      "total_bases": 15000000,
      "read_mean_length": 15000.0,
      "q20_rate": 0.91,
      "q30_rate": 0.82,
      "gc_content": 0.44
    },
    "after_filtering": {
      "total_reads": 900,
      "total_bases": 14100000,
      "read_mean_length": 15666.7,
      "q20_rate": 0.95,
      "q30_rate": 0.88,
      "gc_content": 0.45
    }
  },
  "filtering_result": {
    "passed_filter_reads": 900,
    "low_quality_reads": 60,
    "too_short_reads": 30,
    "too_long_reads": 5,
    "too_many_N_reads": 5
  },
  "read_before_filtering": {
    "quality_curves": {"mean": [28.0, 29.5, 30.2]}
  },
  "read_after_filtering": {
    "quality_curves": {"mean": [30.1, 31.2, 31.8]}
  }
}`

// writeReport writes content as <sample>_fastplong_report.json and returns
// the matching ReportFile.
func writeReport(t *testing.T, dir, sample, content string) discovery.ReportFile {
	t.Helper()
	path := filepath.Join(dir, sample+"_fastplong_report.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return discovery.ReportFile{SampleID: sample, Path: path}
}

func TestLoadReportFullDocument(t *testing.T) {
	f := writeReport(t, t.TempDir(), "sample1", fullReport)

	rep, err := LoadReport(f.Path, f.SampleID)
	require.NoError(t, err)

	assert.Equal(t, "sample1", rep.SampleID)
	assert.Equal(t, f.Path, rep.SourcePath)

	require.NotNil(t, rep.ReadsBefore)
	assert.EqualValues(t, 1000, *rep.ReadsBefore)
	require.NotNil(t, rep.ReadsAfter)
	assert.EqualValues(t, 900, *rep.ReadsAfter)
	require.NotNil(t, rep.BasesBefore)
	assert.EqualValues(t, 15000000, *rep.BasesBefore)
	require.NotNil(t, rep.BasesAfter)
	assert.EqualValues(t, 14100000, *rep.BasesAfter)

	require.NotNil(t, rep.MeanLengthAfter)
	assert.InDelta(t, 15666.7, *rep.MeanLengthAfter, 0.01)
	require.NotNil(t, rep.Q20Rate)
	assert.InDelta(t, 0.95, *rep.Q20Rate, 1e-9)
	require.NotNil(t, rep.Q30Rate)
	assert.InDelta(t, 0.88, *rep.Q30Rate, 1e-9)
	require.NotNil(t, rep.GCContent)
	assert.InDelta(t, 0.45, *rep.GCContent, 1e-9)

	require.NotNil(t, rep.Filter.LowQuality)
	assert.EqualValues(t, 60, *rep.Filter.LowQuality)
	require.NotNil(t, rep.Filter.TooManyN)
	assert.EqualValues(t, 5, *rep.Filter.TooManyN)

	// After-filtering curve preferred over before-filtering
	assert.Equal(t, []float64{30.1, 31.2, 31.8}, rep.QualityCurve)
}

func TestLoadReportMissingOptionalField(t *testing.T) {
	doc := `{
	  "summary": {
	    "before_filtering": {"total_reads": 100},
	    "after_filtering": {"total_reads": 90, "q20_rate": 0.9}
	  }
	}`
	f := writeReport(t, t.TempDir(), "partial", doc)

	rep, err := LoadReport(f.Path, f.SampleID)
	require.NoError(t, err)

	// Missing metrics stay nil, never zero
	assert.Nil(t, rep.GCContent)
	assert.Nil(t, rep.Q30Rate)
	assert.Nil(t, rep.MeanLengthAfter)
	assert.Nil(t, rep.BasesBefore)
	assert.Nil(t, rep.Filter.LowQuality)
	assert.Nil(t, rep.QualityCurve)

	require.NotNil(t, rep.Q20Rate)
	assert.InDelta(t, 0.9, *rep.Q20Rate, 1e-9)
}

func TestLoadReportQualityCurveFallback(t *testing.T) {
	doc := `{
	  "summary": {"after_filtering": {"total_reads": 90}},
	  "read_before_filtering": {"quality_curves": {"mean": [25.0, 26.0]}}
	}`
	f := writeReport(t, t.TempDir(), "fallback", doc)

	rep, err := LoadReport(f.Path, f.SampleID)
	require.NoError(t, err)

	assert.Equal(t, []float64{25.0, 26.0}, rep.QualityCurve)
}

func TestLoadReportInvalidJSON(t *testing.T) {
	f := writeReport(t, t.TempDir(), "corrupt", "{not json")

	_, err := LoadReport(f.Path, f.SampleID)

	var malformed *MalformedReportError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, f.Path, malformed.Path)
}

func TestLoadReportMissingSummaries(t *testing.T) {
	f := writeReport(t, t.TempDir(), "empty", `{"filtering_result": {"passed_filter_reads": 1}}`)

	_, err := LoadReport(f.Path, f.SampleID)

	var malformed *MalformedReportError
	require.ErrorAs(t, err, &malformed)
}

func TestLoadReportUnreadableFile(t *testing.T) {
	_, err := LoadReport(filepath.Join(t.TempDir(), "gone.json"), "gone")

	var malformed *MalformedReportError
	require.ErrorAs(t, err, &malformed)
}

func TestLoadAllCollectsFailures(t *testing.T) {
	dir := t.TempDir()
	f1 := writeReport(t, dir, "sample1", fullReport)
	bad := writeReport(t, dir, "sample2", "not json at all")
	f3 := writeReport(t, dir, "sample3", fullReport)

	reports, failures := LoadAll([]discovery.ReportFile{f1, bad, f3})

	require.Len(t, reports, 2)
	assert.Equal(t, "sample1", reports[0].SampleID)
	assert.Equal(t, "sample3", reports[1].SampleID)

	require.Len(t, failures, 1)
	assert.Equal(t, bad.Path, failures[0].Path)
	assert.Contains(t, failures[0].String(), bad.Path)
}

func TestLoadAllDuplicateSampleIDLastWins(t *testing.T) {
	dirA := filepath.Join(t.TempDir(), "a")
	dirB := filepath.Join(t.TempDir(), "b")
	require.NoError(t, os.MkdirAll(dirA, 0o755))
	require.NoError(t, os.MkdirAll(dirB, 0o755))

	first := writeReport(t, dirA, "sample1", fullReport)

	// Same sample id, different content: only q20_rate differs
	second := writeReport(t, dirB, "sample1", `{
	  "summary": {"after_filtering": {"total_reads": 42, "q20_rate": 0.5}}
	}`)

	reports, failures := LoadAll([]discovery.ReportFile{first, second})

	require.Len(t, reports, 1)
	assert.Equal(t, second.Path, reports[0].SourcePath)
	require.NotNil(t, reports[0].ReadsAfter)
	assert.EqualValues(t, 42, *reports[0].ReadsAfter)

	// The replaced file is surfaced as a warning
	require.Len(t, failures, 1)
	assert.Equal(t, first.Path, failures[0].Path)
}

func TestLoadAllAllFailed(t *testing.T) {
	dir := t.TempDir()
	bad := writeReport(t, dir, "sample1", "oops")

	reports, failures := LoadAll([]discovery.ReportFile{bad})

	assert.Empty(t, reports)
	require.Len(t, failures, 1)

	// The caller turns the empty result into NoValidReportsError
	err := &NoValidReportsError{Failures: len(failures)}
	assert.Contains(t, err.Error(), "1 discovered")
}
