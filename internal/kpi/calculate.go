// Package kpi evaluates aggregation metrics over in-memory dataset rows.
// Evaluation is stateless and deterministic: identical rows and config
// always produce the same value.
package kpi

import (
	"go-kpi-analyser/internal/model"
	"go-kpi-analyser/pkg/utils"
)

// Config is the evaluatable part of a KPI definition.
type Config struct {
	Type    model.AggType
	Field   string
	Filters map[string]interface{}
}

// Calculate applies the config's equality filters to the rows and computes
// the aggregate. Unparsable field values coerce to 0 rather than being
// skipped; only an unknown aggregation type is an error.
func Calculate(rows []model.GenericRecord, cfg Config) (float64, error) {
	filtered := applyFilters(rows, cfg.Filters)

	switch cfg.Type {
	case model.AggSum:
		return sum(filtered, cfg.Field), nil

	case model.AggAvg:
		if len(filtered) == 0 {
			return 0, nil
		}
		return sum(filtered, cfg.Field) / float64(len(filtered)), nil

	case model.AggCount:
		return float64(len(filtered)), nil

	case model.AggMin:
		return extremum(filtered, cfg.Field, func(a, b float64) bool { return a < b }), nil

	case model.AggMax:
		return extremum(filtered, cfg.Field, func(a, b float64) bool { return a > b }), nil

	case model.AggPercentChange:
		if len(filtered) < 2 {
			return 0, nil
		}
		current := fieldNumber(filtered[len(filtered)-1], cfg.Field)
		previous := fieldNumber(filtered[len(filtered)-2], cfg.Field)
		if previous == 0 {
			return 0, nil
		}
		return ((current - previous) / previous) * 100, nil

	default:
		return 0, &model.InvalidKPITypeError{Type: cfg.Type}
	}
}

// applyFilters keeps rows where every filter key equals the filter value.
// An empty filter map keeps everything.
func applyFilters(rows []model.GenericRecord, filters map[string]interface{}) []model.GenericRecord {
	if len(filters) == 0 {
		return rows
	}
	var kept []model.GenericRecord
	for _, row := range rows {
		match := true
		for key, want := range filters {
			if !valuesEqual(row[key], want) {
				match = false
				break
			}
		}
		if match {
			kept = append(kept, row)
		}
	}
	return kept
}

// valuesEqual compares two cell values. Numbers compare numerically across
// int/float representations (CSV cells come back as ints, JSON filters as
// float64); everything else requires matching kinds. Strings never equal
// numbers.
func valuesEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == b
	}

	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr || bIsStr {
		return aIsStr && bIsStr && as == bs
	}

	af, aOk := utils.ParseNumber(a)
	bf, bOk := utils.ParseNumber(b)
	if aOk && bOk {
		return af == bf
	}

	return a == b
}

func fieldNumber(row model.GenericRecord, field string) float64 {
	f, ok := utils.ParseNumber(row[field])
	if !ok {
		return 0
	}
	return f
}

func sum(rows []model.GenericRecord, field string) float64 {
	total := 0.0
	for _, row := range rows {
		total += fieldNumber(row, field)
	}
	return total
}

func extremum(rows []model.GenericRecord, field string, better func(a, b float64) bool) float64 {
	if len(rows) == 0 {
		return 0
	}
	best := fieldNumber(rows[0], field)
	for _, row := range rows[1:] {
		if v := fieldNumber(row, field); better(v, best) {
			best = v
		}
	}
	return best
}
