package exporter

import (
	"fmt"
	"strings"
	"time"

	"reportgen/internal/report"
)

// displayString coerces a cell value to the string it renders as. Dates use
// the supplied layout; anything unrecognized falls back to fmt formatting,
// keeping the loose display contract for odd caller types.
func displayString(v any, dateLayout string) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(dateLayout)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	default:
		if n, ok := report.NumericValue(v); ok {
			return fmt.Sprintf("%d", int64(n))
		}
		return fmt.Sprintf("%v", v)
	}
}

// formatFloat renders a float without a trailing ".00" for whole values
func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.2f", f)
}

// titleCase uppercases the first letter of each space-separated word,
// turning a report kind like "daily" into "Daily" for summary titles.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
