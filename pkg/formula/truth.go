package formula

import (
	"github.com/vilterp/proplog/pkg/logic"
)

// Each helper resolves one connective over runtime booleans by
// dispatching to the type-level proposition with the matching literal
// arguments. Four instantiations per binary connective, covering its
// whole truth table.

func litTruth(b bool) bool {
	if b {
		return logic.TruthValue[logic.True]()
	}
	return logic.TruthValue[logic.False]()
}

func andTruth(a, b bool) bool {
	switch {
	case a && b:
		return logic.TruthValue[logic.And[logic.True, logic.True]]()
	case a:
		return logic.TruthValue[logic.And[logic.True, logic.False]]()
	case b:
		return logic.TruthValue[logic.And[logic.False, logic.True]]()
	default:
		return logic.TruthValue[logic.And[logic.False, logic.False]]()
	}
}

func orTruth(a, b bool) bool {
	switch {
	case a && b:
		return logic.TruthValue[logic.Or[logic.True, logic.True]]()
	case a:
		return logic.TruthValue[logic.Or[logic.True, logic.False]]()
	case b:
		return logic.TruthValue[logic.Or[logic.False, logic.True]]()
	default:
		return logic.TruthValue[logic.Or[logic.False, logic.False]]()
	}
}

func implyTruth(a, b bool) bool {
	switch {
	case a && b:
		return logic.TruthValue[logic.Imply[logic.True, logic.True]]()
	case a:
		return logic.TruthValue[logic.Imply[logic.True, logic.False]]()
	case b:
		return logic.TruthValue[logic.Imply[logic.False, logic.True]]()
	default:
		return logic.TruthValue[logic.Imply[logic.False, logic.False]]()
	}
}

func notTruth(a bool) bool {
	if a {
		return logic.TruthValue[logic.Not[logic.True]]()
	}
	return logic.TruthValue[logic.Not[logic.False]]()
}

func equalTruth(a, b bool) bool {
	switch {
	case a && b:
		return logic.TruthValue[logic.Equal[logic.True, logic.True]]()
	case a:
		return logic.TruthValue[logic.Equal[logic.True, logic.False]]()
	case b:
		return logic.TruthValue[logic.Equal[logic.False, logic.True]]()
	default:
		return logic.TruthValue[logic.Equal[logic.False, logic.False]]()
	}
}
