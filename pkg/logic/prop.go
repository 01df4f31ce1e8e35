// Package logic encodes propositional logic via the Curry-Howard
// correspondence: propositions are types, and a proof of a proposition
// is a value of that type. A proposition also has a computed boolean
// truth value, which is a property of the type itself, never of a
// particular evidence value.
package logic

// Prop is the capability every proposition type provides: a boolean
// truth value. Truth must return the same answer for every receiver,
// including the zero value, so that TruthValue can evaluate a
// proposition without constructing evidence for it.
type Prop interface {
	Truth() bool
}

// TruthValue evaluates a proposition from its type argument alone.
func TruthValue[P Prop]() bool {
	var p P
	return p.Truth()
}

// Literals

// True and False are the two literal propositions. Go has no const
// generics, so instead of one Bool type parameterized by a boolean
// they are two distinct phantom types, keeping the distinction at the
// type level.
type True struct{}

type False struct{}

var _ Prop = True{}
var _ Prop = False{}

func (True) Truth() bool { return true }

func (False) Truth() bool { return false }

// And

// And is evidence of A and evidence of B together. Both is the only
// way to construct one.
type And[A, B Prop] struct {
	fst A
	snd B
}

var _ Prop = And[True, False]{}

func Both[A, B Prop](a A, b B) And[A, B] {
	return And[A, B]{fst: a, snd: b}
}

func (h And[A, B]) First() A { return h.fst }

func (h And[A, B]) Second() B { return h.snd }

func (And[A, B]) Truth() bool {
	var a A
	var b B
	return a.Truth() && b.Truth()
}

// Or

// Or holds evidence of exactly one side, tagged by which.
type Or[L, R Prop] struct {
	left  *L
	right *R
}

var _ Prop = Or[True, False]{}

func Left[L, R Prop](l L) Or[L, R] {
	return Or[L, R]{left: &l}
}

func Right[L, R Prop](r R) Or[L, R] {
	return Or[L, R]{right: &r}
}

func (h Or[L, R]) IsLeft() bool { return h.left != nil }

func (h Or[L, R]) IsRight() bool { return h.right != nil }

func (Or[L, R]) Truth() bool {
	var l L
	var r R
	return l.Truth() || r.Truth()
}

// Cases eliminates a disjunction by applying the function matching the
// held side.
func Cases[L, R Prop, T any](h Or[L, R], left func(L) T, right func(R) T) T {
	if h.left != nil {
		return left(*h.left)
	}
	if h.right != nil {
		return right(*h.right)
	}
	// only reachable on a zero value, which Left and Right never produce
	panic("disjunction evidence holds neither side")
}

// Imply

// Imply is evidence that Q is derivable from P: a transformer from
// P-evidence to Q-evidence. The one connective whose evidence is an
// executable procedure rather than passive data.
type Imply[P, Q Prop] struct {
	transform func(P) Q
}

var _ Prop = Imply[True, False]{}

func Lambda[P, Q Prop](f func(P) Q) Imply[P, Q] {
	return Imply[P, Q]{transform: f}
}

func (h Imply[P, Q]) Apply(p P) Q {
	return h.transform(p)
}

// Material implication: vacuously true when P is false.
func (Imply[P, Q]) Truth() bool {
	var p P
	var q Q
	return !p.Truth() || q.Truth()
}

// Derived forms

// Not is refutation: a transformer from P-evidence to a contradiction.
type Not[P Prop] = Imply[P, False]

// Equal is logical equivalence: transformers in both directions.
type Equal[P, Q Prop] = And[Imply[P, Q], Imply[Q, P]]
