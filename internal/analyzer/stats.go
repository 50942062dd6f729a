package analyzer

import (
	"go-kpi-analyser/internal/model"
	"go-kpi-analyser/pkg/utils"
)

// computeStatistics builds per-column statistics over the non-empty values.
// min/max/avg/sum are only emitted for numeric-like columns where at least
// one value actually parses; garbage-only columns get no placeholders.
func computeStatistics(t model.Table, types map[string]model.ColumnType) map[string]*model.ColumnStats {
	stats := make(map[string]*model.ColumnStats, len(t.Columns))

	for _, col := range t.Columns {
		s := sampleColumn(t.Rows, col)
		cs := &model.ColumnStats{
			Type:        types[col],
			Count:       len(s.values),
			NullCount:   len(t.Rows) - len(s.values),
			UniqueCount: s.uniqueCount,
		}

		if isNumericType(types[col]) {
			var nums []float64
			for _, v := range s.values {
				if f, ok := utils.ParseNumber(v); ok {
					nums = append(nums, f)
				}
			}
			if len(nums) > 0 {
				min, max, sum := nums[0], nums[0], 0.0
				for _, n := range nums {
					if n < min {
						min = n
					}
					if n > max {
						max = n
					}
					sum += n
				}
				avg := sum / float64(len(nums))
				cs.Min = &min
				cs.Max = &max
				cs.Avg = &avg
				cs.Sum = &sum
			}
		}

		stats[col] = cs
	}
	return stats
}

func isNumericType(t model.ColumnType) bool {
	return t == model.TypeNumeric || t == model.TypeCurrency || t == model.TypeQuantity
}
