package solver

import (
	"fmt"
	"strings"
)

// A Problem is a set of clauses over a number of variables, as produced by
// the loaders. Unit clauses are kept apart from the rest: they are base-level
// facts and are propagated before any decision is made.
type Problem struct {
	NbVars  int       // Total nb of vars.
	Clauses []*Clause // Clauses of size >= 2.
	Units   []Lit     // Literals forced by unit clauses of the input.
	Status  Status    // Unsat if an empty clause or two contradictory units were found at load time, Indet else.
}

// CNF returns a DIMACS representation of the problem.
func (pb *Problem) CNF() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "p cnf %d %d\n", pb.NbVars, len(pb.Clauses)+len(pb.Units))
	for _, unit := range pb.Units {
		fmt.Fprintf(&sb, "%d 0\n", unit.Int())
	}
	for _, clause := range pb.Clauses {
		fmt.Fprintf(&sb, "%s\n", clause.CNF())
	}
	return sb.String()
}

// addClause validates lits and records them as a clause of the problem.
// Duplicated literals are merged, tautological clauses are dropped and an
// empty clause makes the whole problem trivially unsatisfiable.
func (pb *Problem) addClause(lits []Lit) {
	lits, tautology := normalize(lits)
	if tautology {
		return
	}
	switch len(lits) {
	case 0:
		pb.Status = Unsat
	case 1:
		pb.Units = append(pb.Units, lits[0])
	default:
		pb.Clauses = append(pb.Clauses, NewClause(lits))
	}
}

// checkUnits looks for a pair of contradictory unit clauses.
// Such a pair means the problem is unsatisfiable before any search happens.
func (pb *Problem) checkUnits() {
	if pb.Status == Unsat {
		return
	}
	bound := make([]int8, pb.NbVars)
	for _, unit := range pb.Units {
		v := unit.Var()
		val := int8(1)
		if !unit.IsPositive() {
			val = -1
		}
		if bound[v] == -val {
			pb.Status = Unsat
			return
		}
		bound[v] = val
	}
}
