package postgres

import (
	"fmt"
	"strings"
)

// searchFilter builds an OR-combined, case-insensitive substring condition
// over the given column expressions. The search term is split on
// whitespace; every column gets one ILIKE condition per token, all joined
// with OR. strings.Fields drops blank tokens, so repeated whitespace never
// produces an always-true condition.
//
// argIndex is the positional-parameter number the first argument should
// use. The returned fragment is empty when the search term carries no
// tokens, in which case no arguments are produced either.
func searchFilter(search string, argIndex int, columns ...string) (string, []any) {
	tokens := strings.Fields(search)
	if len(tokens) == 0 {
		return "", nil
	}
	conds := make([]string, 0, len(columns)*len(tokens))
	args := make([]any, 0, len(columns)*len(tokens))
	for _, col := range columns {
		for _, tok := range tokens {
			conds = append(conds, fmt.Sprintf("%s ILIKE $%d", col, argIndex+len(args)))
			args = append(args, "%"+tok+"%")
		}
	}
	return "(" + strings.Join(conds, " OR ") + ")", args
}
