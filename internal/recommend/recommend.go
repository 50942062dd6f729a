// Package recommend proposes KPI definitions for an analyzed dataset.
// Two implementations share one contract: the deterministic heuristic
// baseline, and a best-effort AI variant that falls back to nothing on
// malformed responses.
package recommend

import (
	"context"

	"go-kpi-analyser/internal/model"
)

// maxRecommendations caps every recommendation list.
const maxRecommendations = 8

// Recommender turns a dataset analysis into a ranked list of KPI proposals.
// dashboardType is a free-form label; the heuristic path accepts it for
// interface parity but only the AI prompt actually uses it.
type Recommender interface {
	Recommend(ctx context.Context, a *model.Analysis, dashboardType string) ([]model.Recommendation, error)
}

// Heuristic is the deterministic baseline recommender.
type Heuristic struct{}

func NewHeuristic() *Heuristic { return &Heuristic{} }

// Recommend builds recommendations from column types alone: SUM/AVG pairs
// for up to two currency columns, SUMs for up to two quantity or numeric
// columns, and a trailing record-count KPI, truncated to 8.
func (h *Heuristic) Recommend(_ context.Context, a *model.Analysis, _ string) ([]model.Recommendation, error) {
	if a == nil || a.RowCount == 0 {
		return []model.Recommendation{{
			Name:        "Total Records",
			Type:        model.AggCount,
			Field:       "rows",
			Category:    "overview",
			Priority:    "high",
			Description: "Total number of records",
			Reasoning:   "Dataset contains records",
		}}, nil
	}

	var recs []model.Recommendation

	currencyCols := columnsOfType(a, 2, model.TypeCurrency)
	quantityCols := columnsOfType(a, 2, model.TypeQuantity, model.TypeNumeric)

	for _, col := range currencyCols {
		recs = append(recs,
			newRecommendation("Total "+col, model.AggSum, col, "financial", "high"),
			newRecommendation("Average "+col, model.AggAvg, col, "financial", "medium"),
		)
	}

	for _, col := range quantityCols {
		recs = append(recs, newRecommendation("Total "+col, model.AggSum, col, "operational", "medium"))
	}

	recs = append(recs, model.Recommendation{
		Name:        "Total Records",
		Type:        model.AggCount,
		Field:       a.Columns[0],
		Category:    "overview",
		Priority:    "high",
		Description: "Total records in dataset",
		Reasoning:   "Baseline dataset size metric",
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs, nil
}

// columnsOfType returns up to limit columns whose inferred type matches any
// of types, in the dataset's column declaration order.
func columnsOfType(a *model.Analysis, limit int, types ...model.ColumnType) []string {
	var cols []string
	for _, col := range a.Columns {
		for _, t := range types {
			if a.ColumnTypes[col] == t {
				cols = append(cols, col)
				break
			}
		}
		if len(cols) == limit {
			break
		}
	}
	return cols
}

func newRecommendation(name string, aggType model.AggType, field, category, priority string) model.Recommendation {
	return model.Recommendation{
		Name:        FormatColumnName(name),
		Type:        aggType,
		Field:       field,
		Category:    category,
		Priority:    priority,
		Description: string(aggType) + " of " + field,
		Reasoning:   field + " is important for " + category + " insights",
	}
}
