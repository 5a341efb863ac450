package repository

import (
	"fmt"
	"strings"

	"threadbare/internal/domain"
)

// TaskFilter is the list predicate built from a validated query. Zero-value
// fields are omitted from the generated SQL entirely; the zero filter matches
// every task.
type TaskFilter struct {
	Status     domain.Status
	CategoryID string
}

// whereClause renders the filter as a SQL fragment ("" when unfiltered) plus
// its positional arguments, starting at $1.
func (f TaskFilter) whereClause() (string, []any) {
	var conds []string
	var args []any

	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, fmt.Sprintf("t.status = $%d::task_status", len(args)))
	}
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("t.category_id = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
