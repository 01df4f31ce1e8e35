package formula

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	cases := []struct {
		in   Formula
		want bool
	}{
		{Lit(true), true},
		{Lit(false), false},
		{&And{Lit(true), Lit(true)}, true},
		{&And{Lit(true), Lit(false)}, false},
		{&Or{Lit(false), Lit(false)}, false},
		{&Or{Lit(false), Lit(true)}, true},
		{&Imply{Lit(true), Lit(false)}, false},
		{&Imply{Lit(false), Lit(false)}, true},
		{&Not{Lit(true)}, false},
		{&Not{Lit(false)}, true},
		{&Equal{Lit(true), Lit(true)}, true},
		{&Equal{Lit(false), Lit(true)}, false},
		// nested
		{&Imply{&And{Lit(true), Lit(false)}, &Or{Lit(false), Lit(true)}}, true},
		{&Not{&Not{&And{Lit(false), Lit(true)}}}, false},
	}

	for idx, testCase := range cases {
		got := testCase.in.Eval()
		if got != testCase.want {
			t.Errorf("case %d (%s): expected %v; got %v",
				idx, testCase.in.Format().String(), testCase.want, got)
		}
	}
}

func TestFormat(t *testing.T) {
	f := &Equal{
		Left:  &Imply{Lit(true), Lit(false)},
		Right: &Or{&Not{Lit(true)}, Lit(false)},
	}
	require.Equal(t, "((T -> F) <-> (~T | F))", f.Format().String())
}
