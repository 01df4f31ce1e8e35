// Package formula is a runtime representation of closed propositional
// formulas: literals combined with the five connectives, no variables.
// It exists for the verification harness; pkg/logic's propositions are
// types and cannot be built from user input. Eval resolves every
// connective by querying the core's type-level truth tables, so the
// core stays the single source of the connective semantics.
package formula

import (
	pp "github.com/vilterp/proplog/pkg/prettyprint"
)

type Formula interface {
	Eval() bool
	Format() pp.Doc
}

// Lit

type Lit bool

var _ Formula = Lit(false)

func (l Lit) Eval() bool {
	return litTruth(bool(l))
}

func (l Lit) Format() pp.Doc {
	if l {
		return pp.Text("T")
	}
	return pp.Text("F")
}

// And

type And struct {
	Left  Formula
	Right Formula
}

var _ Formula = &And{}

func (f *And) Eval() bool {
	return andTruth(f.Left.Eval(), f.Right.Eval())
}

func (f *And) Format() pp.Doc {
	return binOpDoc(f.Left, "&", f.Right)
}

// Or

type Or struct {
	Left  Formula
	Right Formula
}

var _ Formula = &Or{}

func (f *Or) Eval() bool {
	return orTruth(f.Left.Eval(), f.Right.Eval())
}

func (f *Or) Format() pp.Doc {
	return binOpDoc(f.Left, "|", f.Right)
}

// Imply

type Imply struct {
	Left  Formula
	Right Formula
}

var _ Formula = &Imply{}

func (f *Imply) Eval() bool {
	return implyTruth(f.Left.Eval(), f.Right.Eval())
}

func (f *Imply) Format() pp.Doc {
	return binOpDoc(f.Left, "->", f.Right)
}

// Not

type Not struct {
	Inner Formula
}

var _ Formula = &Not{}

func (f *Not) Eval() bool {
	return notTruth(f.Inner.Eval())
}

func (f *Not) Format() pp.Doc {
	return pp.Seq(pp.Text("~"), f.Inner.Format())
}

// Equal

type Equal struct {
	Left  Formula
	Right Formula
}

var _ Formula = &Equal{}

func (f *Equal) Eval() bool {
	return equalTruth(f.Left.Eval(), f.Right.Eval())
}

func (f *Equal) Format() pp.Doc {
	return binOpDoc(f.Left, "<->", f.Right)
}

func binOpDoc(left Formula, op string, right Formula) pp.Doc {
	return pp.Seq(
		pp.Text("("),
		left.Format(),
		pp.Textf(" %s ", op),
		right.Format(),
		pp.Text(")"),
	)
}
