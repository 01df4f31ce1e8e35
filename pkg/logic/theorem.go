package logic

// Each theorem is a pure function from evidence of its hypothesis to
// evidence of its conclusion; the signature is the theorem statement.
// Theorems marked classical go through ExcludedMiddle and therefore
// panic if executed with real evidence; they are valid as type-checked
// certificates only.

// AndComm: A and B implies B and A.
func AndComm[A, B Prop](h And[A, B]) And[B, A] {
	return Both(h.Second(), h.First())
}

// OrComm: L or R implies R or L.
func OrComm[L, R Prop](h Or[L, R]) Or[R, L] {
	return Cases(h,
		func(l L) Or[R, L] { return Right[R, L](l) },
		func(r R) Or[R, L] { return Left[R, L](r) },
	)
}

// DoubleNegationIntro: P implies not-not-P.
func DoubleNegationIntro[P Prop](p P) Not[Not[P]] {
	return Lambda(func(np Not[P]) False {
		return np.Apply(p)
	})
}

// DoubleNegationElim: not-not-P implies P. Classical.
func DoubleNegationElim[P Prop](nnp Not[Not[P]]) P {
	return Cases(ExcludedMiddle[P](),
		func(p P) P { return p },
		func(np Not[P]) P { return ExFalso[P](nnp.Apply(np)) },
	)
}

// DoubleNegation: P is equivalent to not-not-P. Classical.
func DoubleNegation[P Prop]() Equal[P, Not[Not[P]]] {
	return Both(
		Lambda(DoubleNegationIntro[P]),
		Lambda(DoubleNegationElim[P]),
	)
}

// ContrapositionForward: (P implies Q) implies (not-Q implies not-P).
func ContrapositionForward[P, Q Prop](h Imply[P, Q]) Imply[Not[Q], Not[P]] {
	return Lambda(func(nq Not[Q]) Not[P] {
		return Lambda(func(p P) False {
			return nq.Apply(h.Apply(p))
		})
	})
}

// ContrapositionReverse: (not-Q implies not-P) implies (P implies Q).
// Classical.
func ContrapositionReverse[P, Q Prop](h Imply[Not[Q], Not[P]]) Imply[P, Q] {
	return Lambda(func(p P) Q {
		return Cases(ExcludedMiddle[Q](),
			func(q Q) Q { return q },
			func(nq Not[Q]) Q { return ExFalso[Q](h.Apply(nq).Apply(p)) },
		)
	})
}

// Contraposition: (P implies Q) is equivalent to (not-Q implies not-P).
// Classical.
func Contraposition[P, Q Prop]() Equal[Imply[P, Q], Imply[Not[Q], Not[P]]] {
	return Both(
		Lambda(ContrapositionForward[P, Q]),
		Lambda(ContrapositionReverse[P, Q]),
	)
}

// MaterialImplicationForward: (P implies Q) implies (not-P or Q).
// Classical.
func MaterialImplicationForward[P, Q Prop](h Imply[P, Q]) Or[Not[P], Q] {
	return Cases(ExcludedMiddle[P](),
		func(p P) Or[Not[P], Q] { return Right[Not[P], Q](h.Apply(p)) },
		func(np Not[P]) Or[Not[P], Q] { return Left[Not[P], Q](np) },
	)
}

// MaterialImplicationReverse: (not-P or Q) implies (P implies Q).
func MaterialImplicationReverse[P, Q Prop](h Or[Not[P], Q]) Imply[P, Q] {
	return Lambda(func(p P) Q {
		return Cases(h,
			func(np Not[P]) Q { return ExFalso[Q](np.Apply(p)) },
			func(q Q) Q { return q },
		)
	})
}

// MaterialImplication: (P implies Q) is equivalent to (not-P or Q).
// Classical.
func MaterialImplication[P, Q Prop]() Equal[Imply[P, Q], Or[Not[P], Q]] {
	return Both(
		Lambda(MaterialImplicationForward[P, Q]),
		Lambda(MaterialImplicationReverse[P, Q]),
	)
}
