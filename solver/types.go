package solver

// Basic types and constants shared by the whole engine.

// Status describes the state of a problem or of a clause under the current
// partial assignment.
type Status byte

const (
	// Indet means the problem was not proven sat or unsat yet.
	Indet = Status(iota)
	// Sat means the problem or clause is satisfied.
	Sat
	// Unsat means the problem or clause cannot be satisfied.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		panic("invalid status")
	}
}

// Var start at 0: the CNF variable 1 is the Var 0.
type Var int32

// Lit start at 0 and are positive; the last bit is the sign.
// The CNF literal -3 is thus encoded as 2*(3-1) + 1 = 5.
type Lit int32

// IntToLit converts a nonzero CNF literal to a Lit.
func IntToLit(i int) Lit {
	if i < 0 {
		return Lit(2*(-i-1) + 1)
	}
	return Lit(2 * (i - 1))
}

// IntToVar converts a CNF variable to a Var.
func IntToVar(i int) Var {
	return Var(i - 1)
}

// Lit returns the positive Lit associated to v.
func (v Var) Lit() Lit {
	return Lit(v * 2)
}

// SignedLit returns the Lit associated to v, negated if 'signed'.
func (v Var) SignedLit(signed bool) Lit {
	if signed {
		return Lit(v*2) + 1
	}
	return Lit(v * 2)
}

// Var returns the variable of l.
func (l Lit) Var() Var {
	return Var(l / 2)
}

// Int returns the equivalent CNF literal.
func (l Lit) Int() int {
	res := int(l/2 + 1)
	if l&1 == 1 {
		return -res
	}
	return res
}

// IsPositive is true iff l denotes the variable's true polarity.
func (l Lit) IsPositive() bool {
	return l%2 == 0
}

// Negation returns the opposite literal of l.
func (l Lit) Negation() Lit {
	return l ^ 1
}
