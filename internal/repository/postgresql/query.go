package postgresql

import (
	"fmt"
	"strings"
)

// where accumulates AND-ed predicates and their positional arguments.
type where struct {
	conds []string
	args  []interface{}
}

func newWhere() *where {
	return &where{}
}

// arg binds v and returns its placeholder.
func (w *where) arg(v interface{}) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

// add appends a predicate. Every "?" in cond refers to the single value v.
func (w *where) add(cond string, v interface{}) {
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", w.arg(v)))
}

// raw appends a predicate without arguments.
func (w *where) raw(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *where) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func containsPattern(s string) string {
	return "%" + s + "%"
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}
