package sqlconfig

import (
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
)

// DateLayout is how calendar dates are sent to DATE columns.
const DateLayout = "2006-01-02"

// args turns each value into its own bind parameter.
func args(values ...any) []bob.Expression {
	exprs := make([]bob.Expression, len(values))
	for i, v := range values {
		exprs[i] = psql.Arg(v)
	}
	return exprs
}

func columns(names []string) []any {
	cols := make([]any, len(names))
	for i, n := range names {
		cols[i] = psql.Quote(n)
	}
	return cols
}
