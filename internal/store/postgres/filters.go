package postgres

import (
	"fmt"
	"sort"
	"strings"
)

// fetchFilter describes the predicates a record fetch can compose:
// field equality, inclusive range bounds, and set membership. Keys are
// column names; they are emitted in sorted order so generated SQL is
// deterministic.
type fetchFilter struct {
	Equals map[string]interface{}
	GTE    map[string]interface{}
	LTE    map[string]interface{}
	InSet  map[string][]interface{}
}

// buildFilterClause constructs a WHERE fragment (" WHERE ..." or empty)
// with positional args starting at startIndex.
func buildFilterClause(filter *fetchFilter, startIndex int) (string, []interface{}) {
	if filter == nil {
		return "", nil
	}

	var (
		clauses []string
		args    []interface{}
	)
	idx := startIndex

	for _, col := range sortedKeys(filter.Equals) {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, filter.Equals[col])
		idx++
	}

	for _, col := range sortedKeys(filter.GTE) {
		clauses = append(clauses, fmt.Sprintf("%s >= $%d", col, idx))
		args = append(args, filter.GTE[col])
		idx++
	}

	for _, col := range sortedKeys(filter.LTE) {
		clauses = append(clauses, fmt.Sprintf("%s <= $%d", col, idx))
		args = append(args, filter.LTE[col])
		idx++
	}

	inCols := make([]string, 0, len(filter.InSet))
	for col := range filter.InSet {
		inCols = append(inCols, col)
	}
	sort.Strings(inCols)
	for _, col := range inCols {
		values := filter.InSet[col]
		placeholders := make([]string, len(values))
		for i, v := range values {
			placeholders[i] = fmt.Sprintf("$%d", idx)
			args = append(args, v)
			idx++
		}
		clauses = append(clauses, fmt.Sprintf("%s IN (%s)", col, strings.Join(placeholders, ",")))
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
