package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"go-kpi-analyser/internal/model"
	"go-kpi-analyser/pkg/utils"
)

// Classification thresholds.
const (
	numericThreshold = 0.8
	uniqueIDRatio    = 0.9
	categoricalRatio = 0.5
)

var currencyKeywords = []string{"price", "revenue", "cost", "amount", "sales", "profit"}
var quantityKeywords = []string{"quantity", "count", "qty", "units"}

var isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// dateLayouts are tried in order when a value is not ISO-prefixed.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02-01-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// columnSample is the non-empty portion of one column.
type columnSample struct {
	values       []interface{}
	numericRatio float64
	dateRatio    float64
	uniqueRatio  float64
	uniqueCount  int
}

// sampleColumn collects the non-nil, non-empty values of col and computes
// the ratios the classification rules run on. The result depends only on
// the multiset of values, never on row order.
func sampleColumn(rows []model.GenericRecord, col string) columnSample {
	var s columnSample
	numeric := 0
	dates := 0
	seen := make(map[string]struct{})

	for _, row := range rows {
		v, ok := row[col]
		if !ok || v == nil {
			continue
		}
		if str, isStr := v.(string); isStr && str == "" {
			continue
		}
		s.values = append(s.values, v)

		if _, ok := utils.ParseNumber(v); ok {
			numeric++
		}
		if isDateValue(v) {
			dates++
		}
		seen[fmt.Sprint(v)] = struct{}{}
	}

	if n := len(s.values); n > 0 {
		s.numericRatio = float64(numeric) / float64(n)
		s.dateRatio = float64(dates) / float64(n)
		s.uniqueCount = len(seen)
		s.uniqueRatio = float64(len(seen)) / float64(n)
	}
	return s
}

func isDateValue(v interface{}) bool {
	str, ok := v.(string)
	if !ok {
		return false
	}
	if isoDatePrefix.MatchString(str) {
		return true
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, str); err == nil {
			return true
		}
	}
	return false
}

// classifyColumn applies the ordered rule table. First match wins, so the
// precedence (identifier > currency > quantity > numeric > date >
// categorical > text) stays explicit.
func classifyColumn(name string, s columnSample) model.ColumnType {
	if len(s.values) == 0 {
		return model.TypeEmpty
	}

	nameLower := strings.ToLower(name)

	if s.numericRatio > numericThreshold {
		switch {
		case strings.Contains(nameLower, "id") || s.uniqueRatio > uniqueIDRatio:
			return model.TypeIdentifier
		case containsAny(nameLower, currencyKeywords):
			return model.TypeCurrency
		case containsAny(nameLower, quantityKeywords):
			return model.TypeQuantity
		default:
			return model.TypeNumeric
		}
	}
	if s.dateRatio > numericThreshold {
		return model.TypeDate
	}
	if s.uniqueRatio < categoricalRatio {
		return model.TypeCategorical
	}
	return model.TypeText
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// inferColumnTypes classifies every column of the table.
func inferColumnTypes(t model.Table) map[string]model.ColumnType {
	types := make(map[string]model.ColumnType, len(t.Columns))
	for _, col := range t.Columns {
		types[col] = classifyColumn(col, sampleColumn(t.Rows, col))
	}
	return types
}
