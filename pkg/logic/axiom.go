package logic

import "fmt"

// AxiomInvocation is the panic value raised when a non-constructive
// postulate is executed. Axioms exist so classical derivations can
// type-check; actually running one means the derivation was only ever
// valid as a type-level certificate, never as a program.
type AxiomInvocation struct {
	Name string
}

func (e *AxiomInvocation) Error() string {
	return fmt.Sprintf("%s invoked at runtime: a postulate cannot produce evidence", e.Name)
}

// Axiom postulates that evidence of any proposition exists. It always
// panics; returning a fabricated witness would make every downstream
// theorem silently wrong instead of loudly incomplete.
func Axiom[P Prop]() P {
	panic(&AxiomInvocation{Name: "axiom"})
}

// Sorry marks a proof obligation as accepted without proof.
//
// Deprecated: replace the call with a real derivation.
func Sorry[P Prop]() P {
	return Axiom[P]()
}

// ExFalso is the principle of explosion: from a contradiction, derive
// evidence of anything.
func ExFalso[P Prop](_ False) P {
	return Axiom[P]()
}

// ExcludedMiddle asserts that every proposition either holds or is
// refutable. This is what lets the classical theorems in theorem.go
// type-check; any derivation that reaches it at runtime panics.
func ExcludedMiddle[P Prop]() Or[P, Not[P]] {
	return Axiom[Or[P, Not[P]]]()
}
