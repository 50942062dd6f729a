package kpi

import (
	"fmt"
	"time"

	"go-kpi-analyser/internal/model"
)

// BatchResult is one KPI's outcome inside a batch evaluation. Exactly one
// of Value and Error is meaningful.
type BatchResult struct {
	KPIID        string    `json:"kpiId"`
	Name         string    `json:"name"`
	Value        *float64  `json:"value,omitempty"`
	Error        string    `json:"error,omitempty"`
	CalculatedAt time.Time `json:"calculatedAt"`
}

// RowFetcher loads the rows of a dataset by id.
type RowFetcher func(datasetID string) ([]model.GenericRecord, error)

// EvaluateBatch evaluates every KPI independently. A failure (missing
// dataset, empty dataset, bad type) is recorded in that KPI's result slot
// and never aborts the remaining evaluations.
func EvaluateBatch(kpis []model.KPI, fetch RowFetcher) []BatchResult {
	results := make([]BatchResult, 0, len(kpis))

	for _, k := range kpis {
		res := BatchResult{KPIID: k.ID, Name: k.Name, CalculatedAt: time.Now().UTC()}

		rows, err := fetch(k.DatasetID)
		if err != nil {
			res.Error = err.Error()
			results = append(results, res)
			continue
		}
		if len(rows) == 0 {
			res.Error = (&model.EmptyDatasetError{DatasetID: k.DatasetID}).Error()
			results = append(results, res)
			continue
		}

		value, err := Calculate(rows, Config{Type: k.Type, Field: k.Field, Filters: k.Filters})
		if err != nil {
			fmt.Printf("❌ Error calculating KPI %s: %v\n", k.ID, err)
			res.Error = err.Error()
		} else {
			res.Value = &value
		}
		results = append(results, res)
	}

	return results
}
