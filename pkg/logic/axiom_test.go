package logic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// recoverAxiom runs f, requiring that it panics with an
// *AxiomInvocation, and returns the panic value.
func recoverAxiom(t *testing.T, f func()) *AxiomInvocation {
	t.Helper()
	var invocation *AxiomInvocation
	func() {
		defer func() {
			recovered := recover()
			require.NotNil(t, recovered, "expected an axiom-invocation panic")
			var ok bool
			invocation, ok = recovered.(*AxiomInvocation)
			require.True(t, ok, "panic value %v is not an *AxiomInvocation", recovered)
		}()
		f()
	}()
	return invocation
}

func TestAxiomPanics(t *testing.T) {
	invocation := recoverAxiom(t, func() {
		Axiom[True]()
	})
	require.Equal(t, "axiom", invocation.Name)
	require.True(t, strings.Contains(invocation.Error(), "axiom"))
}

func TestSorryPanics(t *testing.T) {
	recoverAxiom(t, func() {
		Sorry[Or[True, False]]()
	})
}

func TestExFalsoPanics(t *testing.T) {
	recoverAxiom(t, func() {
		ExFalso[True](False{})
	})
}

func TestExcludedMiddlePanics(t *testing.T) {
	recoverAxiom(t, func() {
		ExcludedMiddle[True]()
	})
}
