// Package aggregate assembles per-sample QC records into a single comparison
// table and computes the derived columns shared by every chart.
package aggregate

import (
	"sort"

	"github.com/omics-tools/fastplong-multireport/internal/models"
)

// Row is one sample's entry in the aggregate table: the extracted metrics
// plus derived columns. Derived pointers are nil when the value is not
// computable (zero denominator or missing input) rather than zero, which
// would read as total loss instead of "unknown".
type Row struct {
	models.SampleReport

	RetentionRate     *float64 // reads_after / reads_before
	BaseRetentionRate *float64 // bases_after / bases_before
	TotalFiltered     *int64   // sum of present filtering-reason counts
	OtherFiltered     *int64   // reads removed with no recorded reason
}

// Table is the sample × metric comparison table. Row order matches the input
// order, which reflects discovery order.
type Table struct {
	Rows []Row
}

// Build derives one table row per sample report, preserving input order.
func Build(reports []models.SampleReport) *Table {
	t := &Table{Rows: make([]Row, 0, len(reports))}
	for _, rep := range reports {
		row := Row{SampleReport: rep}
		row.RetentionRate = ratio(rep.ReadsAfter, rep.ReadsBefore)
		row.BaseRetentionRate = ratio(rep.BasesAfter, rep.BasesBefore)
		row.TotalFiltered = rep.Filter.Sum()
		row.OtherFiltered = otherFiltered(rep)
		t.Rows = append(t.Rows, row)
	}
	return t
}

// SortBySampleID reorders the rows by sample id. Callers that want discovery
// order simply never call it.
func (t *Table) SortBySampleID() {
	sort.Slice(t.Rows, func(i, j int) bool {
		return t.Rows[i].SampleID < t.Rows[j].SampleID
	})
}

// SampleIDs returns the row ids in table order.
func (t *Table) SampleIDs() []string {
	ids := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		ids[i] = r.SampleID
	}
	return ids
}

func ratio(num, den *int64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	v := float64(*num) / float64(*den)
	return &v
}

// otherFiltered is the residue of reads removed by no recorded reason:
// reads_before − reads_after − Σ(present reasons), clamped at zero. Nil when
// either read count is missing.
func otherFiltered(rep models.SampleReport) *int64 {
	if rep.ReadsBefore == nil || rep.ReadsAfter == nil {
		return nil
	}
	removed := *rep.ReadsBefore - *rep.ReadsAfter
	if sum := rep.Filter.Sum(); sum != nil {
		removed -= *sum
	}
	if removed < 0 {
		removed = 0
	}
	return &removed
}
