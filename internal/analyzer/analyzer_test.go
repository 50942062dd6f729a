package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-kpi-analyser/internal/model"
)

func salesTable() model.Table {
	return model.Table{
		Columns: []string{"order_id", "price", "quantity", "status"},
		Rows: []model.GenericRecord{
			{"order_id": 1, "price": 10.0, "quantity": 2, "status": "done"},
			{"order_id": 2, "price": 20.0, "quantity": 1, "status": "open"},
			{"order_id": 3, "price": 10.0, "quantity": 2, "status": "done"},
			{"order_id": 4, "price": 30.0, "quantity": 3, "status": "done"},
			{"order_id": 5, "price": 20.0, "quantity": 1, "status": "open"},
		},
	}
}

func TestAnalyzeInvariants(t *testing.T) {
	a := Analyze(salesTable())

	assert.Equal(t, len(a.Columns), a.ColumnCount)
	assert.Equal(t, 5, a.RowCount)
	require.Len(t, a.ColumnTypes, len(a.Columns))
	require.Len(t, a.Statistics, len(a.Columns))
	for _, col := range a.Columns {
		assert.Contains(t, a.ColumnTypes, col)
		assert.Contains(t, a.Statistics, col)
	}
	assert.NotEmpty(t, a.DetectedDomains)
}

func TestAnalyzeColumnTypes(t *testing.T) {
	a := Analyze(salesTable())

	assert.Equal(t, model.TypeIdentifier, a.ColumnTypes["order_id"])
	assert.Equal(t, model.TypeCurrency, a.ColumnTypes["price"])
	assert.Equal(t, model.TypeQuantity, a.ColumnTypes["quantity"])
	assert.Equal(t, model.TypeCategorical, a.ColumnTypes["status"])
}

func TestAnalyzeDomains(t *testing.T) {
	a := Analyze(salesTable())
	// order + price hit sales; nothing else scores.
	assert.Equal(t, []string{"sales"}, a.DetectedDomains)
}

func TestAnalyzeEmptyTable(t *testing.T) {
	a := Analyze(model.Table{})

	assert.Equal(t, 0, a.RowCount)
	assert.Equal(t, 0, a.ColumnCount)
	assert.Empty(t, a.Columns)
	assert.Empty(t, a.ColumnTypes)
	assert.Empty(t, a.Statistics)
	assert.Equal(t, []string{"general"}, a.DetectedDomains)
}

func TestAnalyzeIdempotent(t *testing.T) {
	table := salesTable()
	first := Analyze(table)
	second := Analyze(table)
	assert.Equal(t, first, second)
}
