package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// satisfies tells whether the model makes at least one literal true in every
// clause.
func satisfies(model []bool, clauses [][]int) bool {
	for _, clause := range clauses {
		ok := false
		for _, lit := range clause {
			v, neg := lit, false
			if v < 0 {
				v, neg = -v, true
			}
			if model[v-1] != neg {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// bruteForceSat decides satisfiability by exhaustive search.
// Only usable on small instances.
func bruteForceSat(nbVars int, clauses [][]int) bool {
	model := make([]bool, nbVars)
	for mask := 0; mask < 1<<uint(nbVars); mask++ {
		for i := range model {
			model[i] = mask&(1<<uint(i)) != 0
		}
		if satisfies(model, clauses) {
			return true
		}
	}
	return false
}

func TestSolveSat(t *testing.T) {
	cnf := [][]int{{1}, {-2, 3}, {-2, 4}, {-5, 3}, {-5, 6}, {-7, 3}, {-7, 8}, {-9, 10}, {-9, 4}, {-1, 10}, {-1, 6}, {3, 10}, {-3, -10}, {4, 6, 8}}
	s := New(ParseSlice(cnf))
	require.Equal(t, Sat, s.Solve())
	assert.True(t, satisfies(s.Model(), cnf), "returned model does not satisfy the formula")
}

func TestSolveUnsat(t *testing.T) {
	cnf := [][]int{{1, 2, 3}, {-1}, {-2}, {-3}}
	s := New(ParseSlice(cnf))
	assert.Equal(t, Unsat, s.Solve())
}

func TestSolveTrivialUnsat(t *testing.T) {
	pb := ParseSlice([][]int{{1}, {-1}})
	assert.Equal(t, Unsat, pb.Status)
	assert.Equal(t, Unsat, New(pb).Solve())
}

func TestSolveEmptyFormula(t *testing.T) {
	s := New(ParseSlice(nil))
	require.Equal(t, Sat, s.Solve())
	assert.Empty(t, s.Model())
}

// TestUnitLearning drives the search into a conflict whose analysis yields a
// unit clause, then into a base-level contradiction.
func TestUnitLearning(t *testing.T) {
	cnf := [][]int{{1, 2}, {1, -2}, {-1, 3}, {-1, -3}}
	s := New(ParseSlice(cnf))
	assert.Equal(t, Unsat, s.Solve())
	assert.NotZero(t, s.Stats.NbConflicts)
	assert.NotZero(t, s.Stats.NbUnitLearned)
}

// TestPigeonhole checks the clause encoding of 4 pigeons in 3 holes, a
// classic unsatisfiable instance that cannot be decided without learning.
func TestPigeonhole(t *testing.T) {
	const pigeons, holes = 4, 3
	hole := func(p, h int) int { return holes*(p-1) + h }
	var cnf [][]int
	for p := 1; p <= pigeons; p++ {
		clause := make([]int, 0, holes)
		for h := 1; h <= holes; h++ {
			clause = append(clause, hole(p, h))
		}
		cnf = append(cnf, clause)
	}
	for h := 1; h <= holes; h++ {
		for p1 := 1; p1 <= pigeons; p1++ {
			for p2 := p1 + 1; p2 <= pigeons; p2++ {
				cnf = append(cnf, []int{-hole(p1, h), -hole(p2, h)})
			}
		}
	}
	s := New(ParseSlice(cnf))
	assert.Equal(t, Unsat, s.Solve())
}

// randomClauses draws nbClauses random 3-clauses over nbVars variables, with
// no planted structure at all.
func randomClauses(r *rand.Rand, nbVars, nbClauses int) [][]int {
	clauses := make([][]int, nbClauses)
	for i := range clauses {
		clause := make([]int, 0, 3)
		for len(clause) < 3 {
			v := 1 + r.Intn(nbVars)
			dup := false
			for _, lit := range clause {
				if lit == v || lit == -v {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			if r.Intn(2) == 0 {
				v = -v
			}
			clause = append(clause, v)
		}
		clauses[i] = clause
	}
	return clauses
}

// TestAgainstBruteForce compares the engine's verdict with an exhaustive
// search on many small random instances around the sat/unsat threshold.
func TestAgainstBruteForce(t *testing.T) {
	const nbVars = 8
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		nbClauses := 10 + r.Intn(35)
		cnf := randomClauses(r, nbVars, nbClauses)
		expected := bruteForceSat(nbVars, cnf)
		s := New(ParseSlice(cnf))
		status := s.Solve()
		if expected {
			require.Equal(t, Sat, status, "instance %v", cnf)
			assert.True(t, satisfies(s.Model(), cnf), "invalid model for %v", cnf)
		} else {
			require.Equal(t, Unsat, status, "instance %v", cnf)
		}
	}
}

// TestDeterminism checks that two runs on the same input return the same
// status and the same model.
func TestDeterminism(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	cnf := randomClauses(r, 12, 40)
	s1 := New(ParseSlice(cnf))
	s2 := New(ParseSlice(cnf))
	status := s1.Solve()
	require.Equal(t, status, s2.Solve())
	if status == Sat {
		assert.Equal(t, s1.Model(), s2.Model())
	}
}

// TestTrailBacktracking checks that unwinding the trail removes exactly the
// bindings above the target level.
func TestTrailBacktracking(t *testing.T) {
	cnf := [][]int{{1, 2, 3}, {4, 5, 6}, {-1, -4}}
	s := New(ParseSlice(cnf))
	require.Nil(t, s.unifyLiteral(IntToLit(1), baseLevel+1))
	require.Nil(t, s.unifyLiteral(IntToLit(5), baseLevel+2))
	nbAtLvl2 := len(s.trail)
	require.Nil(t, s.unifyLiteral(IntToLit(3), baseLevel+3))
	s.cleanupBindings(baseLevel + 2)
	assert.Equal(t, nbAtLvl2, len(s.trail))
	for _, lit := range s.trail {
		assert.LessOrEqual(t, abs(s.model[lit.Var()]), baseLevel+2)
	}
	s.cleanupBindings(baseLevel)
	assert.Empty(t, s.trail)
}

func TestModelPanicsWhenUnsat(t *testing.T) {
	s := New(ParseSlice([][]int{{1}, {-1}}))
	s.Solve()
	assert.Panics(t, func() { s.Model() })
}
