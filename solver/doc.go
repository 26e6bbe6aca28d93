/*
Package solver implements a CDCL SAT solver for formulas in conjunctive
normal form: unit propagation over watched literals, first-UIP conflict
analysis with clause learning, and non-chronological backtracking.

A problem can be loaded from a DIMACS CNF stream:

	pb, err := solver.ParseCNF(f)

or built from a list of lists of literals:

	clauses := [][]int{
		{1, 2, 3},
		{-1, -2},
		{-3},
	}
	pb := solver.ParseSlice(clauses)

Solving it then takes a solver instance:

	s := solver.New(pb)
	status := s.Solve()

If the status is Sat, s.Model() returns a binding for every variable that
makes all the clauses true.
*/
package solver
