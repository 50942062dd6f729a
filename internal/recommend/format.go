package recommend

import (
	"strings"
	"unicode"
)

// FormatColumnName turns a raw column name into a display label:
// underscores become spaces, a space is inserted before each uppercase
// run, and every word is title-cased. "unit_price" -> "Unit Price",
// "totalAmount" -> "Total Amount".
func FormatColumnName(col string) string {
	s := strings.ReplaceAll(col, "_", " ")

	var b strings.Builder
	prevUpper := false
	for _, r := range s {
		upper := unicode.IsUpper(r)
		if upper && !prevUpper {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prevUpper = upper
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
