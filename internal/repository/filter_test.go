package repository

import (
	"reflect"
	"testing"

	"threadbare/internal/domain"
)

func TestWhereClause(t *testing.T) {
	cases := []struct {
		name     string
		filter   TaskFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			"empty filter matches all",
			TaskFilter{},
			"",
			nil,
		},
		{
			"status only",
			TaskFilter{Status: domain.StatusTodo},
			" WHERE t.status = $1::task_status",
			[]any{"todo"},
		},
		{
			"category only",
			TaskFilter{CategoryID: "cat-1"},
			" WHERE t.category_id = $1",
			[]any{"cat-1"},
		},
		{
			"status and category",
			TaskFilter{Status: domain.StatusDone, CategoryID: "cat-2"},
			" WHERE t.status = $1::task_status AND t.category_id = $2",
			[]any{"done", "cat-2"},
		},
	}

	for _, tc := range cases {
		sql, args := tc.filter.whereClause()
		if sql != tc.wantSQL {
			t.Fatalf("%s: sql = %q; want %q", tc.name, sql, tc.wantSQL)
		}
		if !reflect.DeepEqual(args, tc.wantArgs) {
			t.Fatalf("%s: args = %v; want %v", tc.name, args, tc.wantArgs)
		}
	}
}
