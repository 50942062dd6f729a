// Package analyzer inspects an uploaded table and produces a structured
// analysis: per-column semantic types, likely business domains, and
// per-column statistics. Analysis is a pure function of the table; calling
// it twice on the same input yields equal results.
package analyzer

import "go-kpi-analyser/internal/model"

// Analyze runs type inference, domain detection, and the statistics pass
// over the table and assembles a single immutable analysis record.
func Analyze(t model.Table) *model.Analysis {
	if len(t.Rows) == 0 {
		return &model.Analysis{
			Columns:         []string{},
			ColumnTypes:     map[string]model.ColumnType{},
			DetectedDomains: []string{"general"},
			Statistics:      map[string]*model.ColumnStats{},
		}
	}

	types := inferColumnTypes(t)
	domains := detectDomains(t.Columns)
	stats := computeStatistics(t, types)

	return &model.Analysis{
		RowCount:        len(t.Rows),
		ColumnCount:     len(t.Columns),
		Columns:         t.Columns,
		ColumnTypes:     types,
		DetectedDomains: domains,
		Statistics:      stats,
	}
}
