// Package verify is the truth-table harness: it enumerates every
// literal combination of each connective, queries the core for the
// computed truth value, and pairs it with the classical definition.
// No axioms are invoked and no evidence is constructed.
package verify

import (
	"github.com/pkg/errors"
	"github.com/vilterp/proplog/pkg/formula"
	pp "github.com/vilterp/proplog/pkg/prettyprint"
)

// Row is one line of a connective's truth table.
type Row struct {
	Args []bool
	Got  bool
	Want bool
}

func (r Row) Matches() bool {
	return r.Got == r.Want
}

func (r Row) Format() pp.Doc {
	cells := make([]pp.Doc, 0, len(r.Args)+2)
	for _, arg := range r.Args {
		cells = append(cells, pp.Text(letter(arg)))
	}
	cells = append(cells, pp.Text("|"), pp.Text(letter(r.Got)))
	if !r.Matches() {
		cells = append(cells, pp.Textf("(classical: %s)", letter(r.Want)))
	}
	return pp.Join(cells, pp.Text(" "))
}

// Table is the truth table of one connective.
type Table struct {
	Connective string
	Rows       []Row
}

func (t *Table) Format() pp.Doc {
	rowDocs := make([]pp.Doc, len(t.Rows))
	for idx, row := range t.Rows {
		rowDocs[idx] = row.Format()
	}
	return pp.Seq(
		pp.Text(t.Connective),
		pp.Newline,
		pp.Nest(2, pp.Lines(rowDocs)),
	)
}

// Tables builds the truth table of every connective.
func Tables() []*Table {
	return []*Table{
		binaryTable("and", func(a, b formula.Formula) formula.Formula {
			return &formula.And{Left: a, Right: b}
		}, func(a, b bool) bool { return a && b }),

		binaryTable("or", func(a, b formula.Formula) formula.Formula {
			return &formula.Or{Left: a, Right: b}
		}, func(a, b bool) bool { return a || b }),

		binaryTable("imply", func(a, b formula.Formula) formula.Formula {
			return &formula.Imply{Left: a, Right: b}
		}, func(a, b bool) bool { return !a || b }),

		unaryTable("not", func(a formula.Formula) formula.Formula {
			return &formula.Not{Inner: a}
		}, func(a bool) bool { return !a }),

		binaryTable("equal", func(a, b formula.Formula) formula.Formula {
			return &formula.Equal{Left: a, Right: b}
		}, func(a, b bool) bool { return a == b }),
	}
}

// Check compares every computed value against the classical definition,
// returning an error describing the first mismatch.
func Check() error {
	for _, table := range Tables() {
		for _, row := range table.Rows {
			if !row.Matches() {
				return errors.Errorf(
					"%s%v: computed %v, but the classical definition says %v",
					table.Connective, row.Args, row.Got, row.Want)
			}
		}
	}
	return nil
}

var literalOrder = []bool{true, false}

func binaryTable(name string, build func(a, b formula.Formula) formula.Formula, classical func(a, b bool) bool) *Table {
	table := &Table{Connective: name}
	for _, a := range literalOrder {
		for _, b := range literalOrder {
			f := build(formula.Lit(a), formula.Lit(b))
			table.Rows = append(table.Rows, Row{
				Args: []bool{a, b},
				Got:  f.Eval(),
				Want: classical(a, b),
			})
		}
	}
	return table
}

func unaryTable(name string, build func(a formula.Formula) formula.Formula, classical func(a bool) bool) *Table {
	table := &Table{Connective: name}
	for _, a := range literalOrder {
		f := build(formula.Lit(a))
		table.Rows = append(table.Rows, Row{
			Args: []bool{a},
			Got:  f.Eval(),
			Want: classical(a),
		})
	}
	return table
}

func letter(b bool) string {
	if b {
		return "T"
	}
	return "F"
}
