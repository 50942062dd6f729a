package analyzer

import (
	"sort"
	"strings"
)

// domainRule scores one business domain from column-name keywords.
type domainRule struct {
	name     string
	keywords []string
}

// domainRules is evaluated in declaration order; ties between equal scores
// keep this order.
var domainRules = []domainRule{
	{"sales", []string{"revenue", "sales", "order", "customer", "product", "price"}},
	{"finance", []string{"revenue", "cost", "profit", "expense", "budget"}},
	{"marketing", []string{"campaign", "lead", "conversion", "click", "engagement"}},
	{"operations", []string{"inventory", "stock", "delivery", "production", "capacity"}},
	{"hr", []string{"employee", "salary", "attendance", "performance"}},
}

// detectDomains guesses the business domains of a dataset from its column
// names. Each keyword counts once no matter how many columns contain it.
// Domains with no hits are dropped; no hits at all falls back to "general".
func detectDomains(columns []string) []string {
	lower := make([]string, len(columns))
	for i, c := range columns {
		lower[i] = strings.ToLower(c)
	}
	haystack := strings.Join(lower, " ")

	type scored struct {
		name  string
		score int
	}
	var detected []scored
	for _, rule := range domainRules {
		score := 0
		for _, k := range rule.keywords {
			if strings.Contains(haystack, k) {
				score++
			}
		}
		if score > 0 {
			detected = append(detected, scored{rule.name, score})
		}
	}

	sort.SliceStable(detected, func(i, j int) bool {
		return detected[i].score > detected[j].score
	})

	if len(detected) == 0 {
		return []string{"general"}
	}
	names := make([]string, len(detected))
	for i, d := range detected {
		names[i] = d.name
	}
	return names
}
