package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruthTables(t *testing.T) {
	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{"T", TruthValue[True](), true},
		{"F", TruthValue[False](), false},

		{"and(T,T)", TruthValue[And[True, True]](), true},
		{"and(T,F)", TruthValue[And[True, False]](), false},
		{"and(F,T)", TruthValue[And[False, True]](), false},
		{"and(F,F)", TruthValue[And[False, False]](), false},

		{"or(T,T)", TruthValue[Or[True, True]](), true},
		{"or(T,F)", TruthValue[Or[True, False]](), true},
		{"or(F,T)", TruthValue[Or[False, True]](), true},
		{"or(F,F)", TruthValue[Or[False, False]](), false},

		{"imply(T,T)", TruthValue[Imply[True, True]](), true},
		{"imply(T,F)", TruthValue[Imply[True, False]](), false},
		{"imply(F,T)", TruthValue[Imply[False, True]](), true},
		{"imply(F,F)", TruthValue[Imply[False, False]](), true},

		{"not(T)", TruthValue[Not[True]](), false},
		{"not(F)", TruthValue[Not[False]](), true},

		{"equal(T,T)", TruthValue[Equal[True, True]](), true},
		{"equal(T,F)", TruthValue[Equal[True, False]](), false},
		{"equal(F,T)", TruthValue[Equal[False, True]](), false},
		{"equal(F,F)", TruthValue[Equal[False, False]](), true},
	}

	for _, testCase := range cases {
		if testCase.got != testCase.want {
			t.Errorf("%s: expected %v; got %v", testCase.name, testCase.want, testCase.got)
		}
	}
}

func TestNestedComposition(t *testing.T) {
	// (T & F) -> (F | T)
	require.True(t, TruthValue[Imply[And[True, False], Or[False, True]]]())
	// ~(T | T)
	require.False(t, TruthValue[Not[Or[True, True]]]())
	// (T -> F) <-> F
	require.True(t, TruthValue[Equal[Imply[True, False], False]]())
	// ~~(F & T)
	require.False(t, TruthValue[Not[Not[And[False, True]]]]())
}

func TestTruthIgnoresEvidence(t *testing.T) {
	// truth is a property of the proposition type; a constructed
	// witness reports the same value as the zero value does
	h := Both(True{}, True{})
	require.Equal(t, TruthValue[And[True, True]](), h.Truth())

	l := Left[False, True](False{})
	require.Equal(t, TruthValue[Or[False, True]](), l.Truth())
}

func TestAndHoldsBoth(t *testing.T) {
	h := Both(True{}, False{})
	require.Equal(t, True{}, h.First())
	require.Equal(t, False{}, h.Second())
}

func TestOrHoldsExactlyOneSide(t *testing.T) {
	l := Left[True, False](True{})
	require.True(t, l.IsLeft())
	require.False(t, l.IsRight())

	r := Right[True, False](False{})
	require.True(t, r.IsRight())
	require.False(t, r.IsLeft())
}

func TestCases(t *testing.T) {
	l := Left[True, False](True{})
	side := Cases(l,
		func(True) string { return "left" },
		func(False) string { return "right" },
	)
	require.Equal(t, "left", side)

	r := Right[True, False](False{})
	side = Cases(r,
		func(True) string { return "left" },
		func(False) string { return "right" },
	)
	require.Equal(t, "right", side)
}

func TestImplyApply(t *testing.T) {
	id := Lambda(func(p True) True { return p })
	require.Equal(t, True{}, id.Apply(True{}))

	// application is an ordinary immediate call; the transformer only
	// runs when applied
	ran := false
	h := Lambda(func(p True) True {
		ran = true
		return p
	})
	require.False(t, ran)
	h.Apply(True{})
	require.True(t, ran)
}
