package formula

import (
	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
	"github.com/pkg/errors"
)

// Surface syntax: T and F literals; ~, &, |, ->, <-> connectives;
// parentheses. Precedence from tightest to loosest: ~, &, |, ->, <->.
// -> is right-associative; & | <-> associate to the left.

var (
	formulaLexer = lexer.Must(lexer.Regexp(`(\s+)` +
		`|(?P<Lit>[TF]\b)` +
		`|(?P<Operators><->|->|[~&|()])`,
	))
	formulaParser = participle.MustBuild(&equivNode{}, formulaLexer)
)

type equivNode struct {
	Left  *implyNode   `@@`
	Right []*implyNode `{ "<->" @@ }`
}

type implyNode struct {
	Left  *orNode    `@@`
	Right *implyNode `[ "->" @@ ]`
}

type orNode struct {
	Left  *andNode   `@@`
	Right []*andNode `{ "|" @@ }`
}

type andNode struct {
	Left  *unaryNode   `@@`
	Right []*unaryNode `{ "&" @@ }`
}

type unaryNode struct {
	Negated *unaryNode `  "~" @@`
	Atom    *atomNode  `| @@`
}

type atomNode struct {
	Lit    string     `  @Lit`
	Parens *equivNode `| "(" @@ ")"`
}

// Parse parses a closed propositional formula.
func Parse(input string) (Formula, error) {
	node := &equivNode{}
	if err := formulaParser.ParseString(input, node); err != nil {
		return nil, errors.Wrap(err, "parsing formula")
	}
	return node.toFormula(), nil
}

func (n *equivNode) toFormula() Formula {
	f := n.Left.toFormula()
	for _, right := range n.Right {
		f = &Equal{Left: f, Right: right.toFormula()}
	}
	return f
}

func (n *implyNode) toFormula() Formula {
	left := n.Left.toFormula()
	if n.Right == nil {
		return left
	}
	return &Imply{Left: left, Right: n.Right.toFormula()}
}

func (n *orNode) toFormula() Formula {
	f := n.Left.toFormula()
	for _, right := range n.Right {
		f = &Or{Left: f, Right: right.toFormula()}
	}
	return f
}

func (n *andNode) toFormula() Formula {
	f := n.Left.toFormula()
	for _, right := range n.Right {
		f = &And{Left: f, Right: right.toFormula()}
	}
	return f
}

func (n *unaryNode) toFormula() Formula {
	if n.Negated != nil {
		return &Not{Inner: n.Negated.toFormula()}
	}
	return n.Atom.toFormula()
}

func (n *atomNode) toFormula() Formula {
	if n.Parens != nil {
		return n.Parens.toFormula()
	}
	return Lit(n.Lit == "T")
}
