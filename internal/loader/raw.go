package loader

// The raw* types mirror the fastplong JSON document layout. The key names are
// fastplong's output contract; every field is a pointer so an absent key
// survives as nil instead of collapsing to a zero value.

type rawReport struct {
	Summary             *rawSummary         `json:"summary"`
	FilteringResult     *rawFilteringResult `json:"filtering_result"`
	ReadBeforeFiltering *rawReadStats       `json:"read_before_filtering"`
	ReadAfterFiltering  *rawReadStats       `json:"read_after_filtering"`
}

type rawSummary struct {
	BeforeFiltering *rawFilterStats `json:"before_filtering"`
	AfterFiltering  *rawFilterStats `json:"after_filtering"`
}

type rawFilterStats struct {
	TotalReads     *int64   `json:"total_reads"`
	TotalBases     *int64   `json:"total_bases"`
	ReadMeanLength *float64 `json:"read_mean_length"`
	Q20Rate        *float64 `json:"q20_rate"`
	Q30Rate        *float64 `json:"q30_rate"`
	GCContent      *float64 `json:"gc_content"`
}

type rawFilteringResult struct {
	PassedFilterReads *int64 `json:"passed_filter_reads"`
	LowQualityReads   *int64 `json:"low_quality_reads"`
	TooShortReads     *int64 `json:"too_short_reads"`
	TooLongReads      *int64 `json:"too_long_reads"`
	TooManyNReads     *int64 `json:"too_many_N_reads"`
}

type rawReadStats struct {
	QualityCurves *rawQualityCurves `json:"quality_curves"`
}

type rawQualityCurves struct {
	Mean []float64 `json:"mean"`
}
