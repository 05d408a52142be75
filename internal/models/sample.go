// Package models defines the record types shared across the aggregation
// pipeline.
package models

// FilterCounts holds per-reason counts of reads removed during filtering.
// A nil field means the reason was absent from the source report, which is
// not the same as a count of zero.
type FilterCounts struct {
	LowQuality *int64 `json:"low_quality_reads,omitempty"`
	TooShort   *int64 `json:"too_short_reads,omitempty"`
	TooLong    *int64 `json:"too_long_reads,omitempty"`
	TooManyN   *int64 `json:"too_many_n_reads,omitempty"`
}

// Sum adds up the reason counts that are present. It returns nil when no
// reason count is present at all.
func (f FilterCounts) Sum() *int64 {
	var total int64
	found := false
	for _, c := range []*int64{f.LowQuality, f.TooShort, f.TooLong, f.TooManyN} {
		if c != nil {
			total += *c
			found = true
		}
	}
	if !found {
		return nil
	}
	return &total
}

// SampleReport is the flattened QC record for one sample, extracted from one
// fastplong JSON report. Pointer fields are nil when the source document did
// not carry the metric; nil is preserved through aggregation so charts can
// omit the sample instead of plotting a misleading zero.
type SampleReport struct {
	SampleID   string `json:"sample_id"`
	SourcePath string `json:"source_path"`

	ReadsBefore *int64 `json:"reads_before,omitempty"`
	ReadsAfter  *int64 `json:"reads_after,omitempty"`
	BasesBefore *int64 `json:"bases_before,omitempty"`
	BasesAfter  *int64 `json:"bases_after,omitempty"`

	MeanLengthAfter *float64 `json:"mean_length_after,omitempty"`
	Q20Rate         *float64 `json:"q20_rate,omitempty"`
	Q30Rate         *float64 `json:"q30_rate,omitempty"`
	GCContent       *float64 `json:"gc_content,omitempty"`

	// Mean Phred quality per read position, taken from the after-filtering
	// curve when available. Nil when the report carries no curve.
	QualityCurve []float64 `json:"quality_curve,omitempty"`

	Filter FilterCounts `json:"filtering,omitempty"`
}
