// Package gen produces random CNF instances with a known satisfiability
// status, for validating the solver. Satisfiable instances are built around
// a hidden planted assignment; unsatisfiable ones around a contradictory
// pair of unit clauses. All generation is driven by a caller-provided
// *rand.Rand, so a fixed seed gives a fixed instance.
package gen

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
)

const clauseSize = 3

// Sat returns the clauses of a satisfiable formula over nbVars variables.
// A hidden assignment is drawn first and every emitted clause is guaranteed
// to contain at least one literal it satisfies. Extra clauses are appended
// so that every variable occurs in the formula; the result may therefore
// hold slightly more than nbClauses clauses.
// nbVars must be at least clauseSize.
func Sat(r *rand.Rand, nbVars, nbClauses int) [][]int {
	if nbVars < clauseSize {
		panic("not enough variables to build clauses")
	}
	planted := make([]bool, nbVars+1)
	for v := 1; v <= nbVars; v++ {
		planted[v] = r.Intn(2) == 0
	}
	clauses := make([][]int, 0, nbClauses)
	for i := 0; i < nbClauses; i++ {
		vars := sampleVars(r, nbVars)
		lits := make([]int, clauseSize)
		satisfied := false
		for j, v := range vars {
			positive := r.Intn(2) == 0
			if positive == planted[v] {
				satisfied = true
			}
			lits[j] = signed(v, positive)
		}
		if !satisfied { // Repair one literal so the planted assignment works
			idx := r.Intn(clauseSize)
			v := vars[idx]
			lits[idx] = signed(v, planted[v])
		}
		clauses = append(clauses, lits)
	}
	return padUnusedVars(r, nbVars, clauses, planted)
}

// Unsat returns the clauses of an unsatisfiable formula over nbVars
// variables: a contradictory pair of unit clauses on variable 1, padded with
// random clauses so that every variable occurs. As for Sat, the result may
// hold a few more than nbClauses clauses.
// nbVars must be at least clauseSize.
func Unsat(r *rand.Rand, nbVars, nbClauses int) [][]int {
	if nbVars < clauseSize {
		panic("not enough variables to build clauses")
	}
	clauses := make([][]int, 0, nbClauses)
	clauses = append(clauses, []int{1}, []int{-1})
	for i := 2; i < nbClauses; i++ {
		vars := sampleVars(r, nbVars)
		lits := make([]int, clauseSize)
		for j, v := range vars {
			lits[j] = signed(v, r.Intn(2) == 0)
		}
		clauses = append(clauses, lits)
	}
	return padUnusedVars(r, nbVars, clauses, nil)
}

// Write writes the clauses to w in the DIMACS CNF format.
func Write(w io.Writer, nbVars int, clauses [][]int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p cnf %d %d\n", nbVars, len(clauses))
	for _, clause := range clauses {
		for _, lit := range clause {
			fmt.Fprintf(bw, "%d ", lit)
		}
		fmt.Fprintln(bw, "0")
	}
	return bw.Flush()
}

// padUnusedVars appends a clause for every variable that occurs nowhere in
// the formula, so that the declared variable count is meaningful. When a
// planted assignment is given, the fresh variable's literal agrees with it,
// keeping the formula satisfiable.
func padUnusedVars(r *rand.Rand, nbVars int, clauses [][]int, planted []bool) [][]int {
	used := make([]bool, nbVars+1)
	for _, clause := range clauses {
		for _, lit := range clause {
			if lit < 0 {
				used[-lit] = true
			} else {
				used[lit] = true
			}
		}
	}
	for v := 1; v <= nbVars; v++ {
		if used[v] {
			continue
		}
		lits := make([]int, 0, clauseSize)
		if planted != nil {
			lits = append(lits, signed(v, planted[v]))
		} else {
			lits = append(lits, signed(v, r.Intn(2) == 0))
		}
		for _, o := range sampleOthers(r, nbVars, v) {
			lits = append(lits, signed(o, r.Intn(2) == 0))
		}
		clauses = append(clauses, lits)
	}
	return clauses
}

// sampleVars draws clauseSize distinct variables in [1, nbVars].
func sampleVars(r *rand.Rand, nbVars int) []int {
	vars := make([]int, 0, clauseSize)
	for len(vars) < clauseSize {
		v := 1 + r.Intn(nbVars)
		if !contains(vars, v) {
			vars = append(vars, v)
		}
	}
	return vars
}

// sampleOthers draws clauseSize-1 distinct variables in [1, nbVars], all
// different from v.
func sampleOthers(r *rand.Rand, nbVars, v int) []int {
	vars := make([]int, 0, clauseSize-1)
	for len(vars) < clauseSize-1 {
		o := 1 + r.Intn(nbVars)
		if o != v && !contains(vars, o) {
			vars = append(vars, o)
		}
	}
	return vars
}

func contains(vars []int, v int) bool {
	for _, o := range vars {
		if o == v {
			return true
		}
	}
	return false
}

func signed(v int, positive bool) int {
	if positive {
		return v
	}
	return -v
}
