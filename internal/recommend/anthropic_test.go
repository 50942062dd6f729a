package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-kpi-analyser/internal/model"
)

func TestParseRecommendations(t *testing.T) {
	t.Run("plain JSON array", func(t *testing.T) {
		recs := parseRecommendations(`[{"name":"Total Revenue","type":"SUM","field":"revenue","priority":"high","category":"financial"}]`)
		require.Len(t, recs, 1)
		assert.Equal(t, "Total Revenue", recs[0].Name)
		assert.Equal(t, model.AggSum, recs[0].Type)
		assert.Equal(t, "revenue", recs[0].Field)
	})

	t.Run("strips markdown fences", func(t *testing.T) {
		response := "```json\n[{\"name\":\"Order Count\",\"type\":\"COUNT\",\"field\":\"order_id\"}]\n```"
		recs := parseRecommendations(response)
		require.Len(t, recs, 1)
		assert.Equal(t, "Order Count", recs[0].Name)
	})

	t.Run("invalid JSON yields empty list", func(t *testing.T) {
		recs := parseRecommendations("Sorry, I cannot help with that.")
		assert.Empty(t, recs)
	})

	t.Run("truncates oversized responses", func(t *testing.T) {
		response := `[
			{"name":"a","type":"SUM","field":"x"},{"name":"b","type":"SUM","field":"x"},
			{"name":"c","type":"SUM","field":"x"},{"name":"d","type":"SUM","field":"x"},
			{"name":"e","type":"SUM","field":"x"},{"name":"f","type":"SUM","field":"x"},
			{"name":"g","type":"SUM","field":"x"},{"name":"h","type":"SUM","field":"x"},
			{"name":"i","type":"SUM","field":"x"},{"name":"j","type":"SUM","field":"x"}
		]`
		recs := parseRecommendations(response)
		assert.Len(t, recs, 8)
	})
}

func TestBuildPrompt(t *testing.T) {
	avg := 42.5
	a := &model.Analysis{
		RowCount:        100,
		ColumnCount:     2,
		Columns:         []string{"revenue", "region"},
		ColumnTypes:     map[string]model.ColumnType{"revenue": model.TypeCurrency, "region": model.TypeCategorical},
		DetectedDomains: []string{"sales", "finance"},
		Statistics: map[string]*model.ColumnStats{
			"revenue": {Type: model.TypeCurrency, Count: 100, UniqueCount: 90, Avg: &avg},
			"region":  {Type: model.TypeCategorical, Count: 100, UniqueCount: 4},
		},
	}

	prompt := buildPrompt(a, "executive")

	assert.Contains(t, prompt, "executive dashboard")
	assert.Contains(t, prompt, "- Rows: 100")
	assert.Contains(t, prompt, "sales, finance")
	assert.Contains(t, prompt, "- revenue (currency)")
	assert.Contains(t, prompt, "avg: 42.50")
	assert.Contains(t, prompt, "exactly 8 KPI recommendations")
	assert.Contains(t, prompt, "Return ONLY the JSON array")
}
