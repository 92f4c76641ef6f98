package domain

import (
	"math"
	"strconv"
	"strings"
)

// CoerceFloat parses a loosely typed numeric field. Any value that does
// not parse as a finite number becomes 0, so a malformed row can never
// fail a report.
func CoerceFloat(value string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}

// CategoryOf derives a category from the first whitespace-delimited
// token of the product name. Placeholder until order_items carries a
// real category column upstream; empty names fall into "Uncategorized".
func CategoryOf(productName string) string {
	fields := strings.Fields(productName)
	if len(fields) == 0 {
		return "Uncategorized"
	}

	return fields[0]
}
