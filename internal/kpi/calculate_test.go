package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-kpi-analyser/internal/model"
)

func TestCalculateSum(t *testing.T) {
	rows := []model.GenericRecord{{"x": "10"}, {"x": "bad"}, {"x": 5}}

	got, err := Calculate(rows, Config{Type: model.AggSum, Field: "x"})
	require.NoError(t, err)
	assert.Equal(t, 15.0, got)
}

func TestCalculateAvg(t *testing.T) {
	t.Run("counts all filtered rows in the denominator", func(t *testing.T) {
		rows := []model.GenericRecord{{"x": 10}, {"x": "bad"}, {"x": 20}}
		got, err := Calculate(rows, Config{Type: model.AggAvg, Field: "x"})
		require.NoError(t, err)
		assert.Equal(t, 10.0, got)
	})

	t.Run("empty filtered set is zero, not an error", func(t *testing.T) {
		rows := []model.GenericRecord{{"status": "open", "x": 10}}
		got, err := Calculate(rows, Config{
			Type:    model.AggAvg,
			Field:   "x",
			Filters: map[string]interface{}{"status": "done"},
		})
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})
}

func TestCalculateCount(t *testing.T) {
	rows := []model.GenericRecord{{"status": "done"}, {"status": "open"}}

	got, err := Calculate(rows, Config{
		Type:    model.AggCount,
		Field:   "status",
		Filters: map[string]interface{}{"status": "done"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestCalculateMinMax(t *testing.T) {
	rows := []model.GenericRecord{{"x": 7}, {"x": 3}, {"x": 9}}

	minVal, err := Calculate(rows, Config{Type: model.AggMin, Field: "x"})
	require.NoError(t, err)
	assert.Equal(t, 3.0, minVal)

	maxVal, err := Calculate(rows, Config{Type: model.AggMax, Field: "x"})
	require.NoError(t, err)
	assert.Equal(t, 9.0, maxVal)

	empty, err := Calculate(nil, Config{Type: model.AggMin, Field: "x"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty)
}

func TestCalculatePercentChange(t *testing.T) {
	t.Run("last two rows", func(t *testing.T) {
		rows := []model.GenericRecord{{"x": 100}, {"x": 150}}
		got, err := Calculate(rows, Config{Type: model.AggPercentChange, Field: "x"})
		require.NoError(t, err)
		assert.Equal(t, 50.0, got)
	})

	t.Run("uses trailing rows, not leading", func(t *testing.T) {
		rows := []model.GenericRecord{{"x": 1}, {"x": 200}, {"x": 100}}
		got, err := Calculate(rows, Config{Type: model.AggPercentChange, Field: "x"})
		require.NoError(t, err)
		assert.Equal(t, -50.0, got)
	})

	t.Run("fewer than two rows", func(t *testing.T) {
		got, err := Calculate([]model.GenericRecord{{"x": 100}}, Config{Type: model.AggPercentChange, Field: "x"})
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})

	t.Run("zero previous value", func(t *testing.T) {
		rows := []model.GenericRecord{{"x": 0}, {"x": 50}}
		got, err := Calculate(rows, Config{Type: model.AggPercentChange, Field: "x"})
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})
}

func TestCalculateInvalidType(t *testing.T) {
	_, err := Calculate([]model.GenericRecord{{"x": 1}}, Config{Type: "BOGUS", Field: "x"})
	require.Error(t, err)

	var typeErr *model.InvalidKPITypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestApplyFiltersEquality(t *testing.T) {
	rows := []model.GenericRecord{
		{"n": 10, "s": "a"},
		{"n": 10.0, "s": "a"},
		{"n": "10", "s": "a"},
		{"n": 20, "s": "b"},
	}

	t.Run("int and float compare numerically", func(t *testing.T) {
		kept := applyFilters(rows, map[string]interface{}{"n": 10.0})
		assert.Len(t, kept, 2)
	})

	t.Run("string never equals number", func(t *testing.T) {
		kept := applyFilters(rows, map[string]interface{}{"n": "10"})
		assert.Len(t, kept, 1)
	})

	t.Run("multiple keys must all match", func(t *testing.T) {
		kept := applyFilters(rows, map[string]interface{}{"n": 20.0, "s": "b"})
		assert.Len(t, kept, 1)
		kept = applyFilters(rows, map[string]interface{}{"n": 20.0, "s": "a"})
		assert.Empty(t, kept)
	})

	t.Run("missing key never matches", func(t *testing.T) {
		kept := applyFilters(rows, map[string]interface{}{"absent": "x"})
		assert.Empty(t, kept)
	})
}

func TestEvaluateBatchIsolatesFailures(t *testing.T) {
	kpis := []model.KPI{
		{ID: "k1", Name: "Good", Type: model.AggSum, Field: "x", DatasetID: "ds1"},
		{ID: "k2", Name: "Bad type", Type: "BOGUS", Field: "x", DatasetID: "ds1"},
		{ID: "k3", Name: "Empty dataset", Type: model.AggCount, Field: "x", DatasetID: "ds2"},
		{ID: "k4", Name: "Also good", Type: model.AggCount, Field: "x", DatasetID: "ds1"},
	}

	fetch := func(datasetID string) ([]model.GenericRecord, error) {
		if datasetID == "ds1" {
			return []model.GenericRecord{{"x": 1}, {"x": 2}}, nil
		}
		return nil, nil
	}

	results := EvaluateBatch(kpis, fetch)
	require.Len(t, results, 4)

	require.NotNil(t, results[0].Value)
	assert.Equal(t, 3.0, *results[0].Value)
	assert.Empty(t, results[0].Error)

	assert.Nil(t, results[1].Value)
	assert.Contains(t, results[1].Error, "invalid KPI type")

	assert.Nil(t, results[2].Value)
	assert.Contains(t, results[2].Error, "no data available")

	require.NotNil(t, results[3].Value)
	assert.Equal(t, 2.0, *results[3].Value)
}
