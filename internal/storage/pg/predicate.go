package pg

import (
	"fmt"
	"strings"
)

// predicate composes a list of conjunctive WHERE conditions with positional
// arguments before executing, instead of mutating a query string in place.
type predicate struct {
	conds []string
	args  []any
}

// where appends a condition; expr must contain exactly one %d verb which
// receives the argument's position ("answer = $%d").
func (p *predicate) where(expr string, arg any) {
	p.args = append(p.args, arg)
	p.conds = append(p.conds, fmt.Sprintf(expr, len(p.args)))
}

// clause renders " WHERE a AND b", or an empty string with no conditions.
func (p *predicate) clause() string {
	if len(p.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conds, " AND ")
}
