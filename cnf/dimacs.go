package cnf

import (
	"strconv"
	"strings"
)

// Dimacs renders f in DIMACS CNF text form: the header "p cnf N M", then one
// line per clause with space-separated literals terminated by " 0". There is
// no trailing newline after the last clause. N counts the bound variables;
// for the ⊥ placeholder it counts the synthetic index 1.
//
// Complexity: O(total literals).
func Dimacs(f *Formula) string {
	nvars := f.NumVars()
	if f.IsContradiction() {
		nvars = 1
	}

	var b strings.Builder
	b.WriteString("p cnf ")
	b.WriteString(strconv.Itoa(nvars))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(len(f.Clauses)))
	b.WriteByte('\n')
	for i, clause := range f.Clauses {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, lit := range clause {
			b.WriteString(strconv.Itoa(lit))
			b.WriteByte(' ')
		}
		b.WriteByte('0')
	}

	return b.String()
}
