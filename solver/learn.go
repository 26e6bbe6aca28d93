package solver

// Conflict analysis: derives a learned clause from a conflicting clause
// using the first Unique Implication Point scheme.

// learnClause analyzes the given conflict, found at decision level lvl, and
// returns either:
// the learned clause itself, if its length is at least 2;
// a nil clause and an asserting literal, if exactly one literal was learned.
// The learned clause is ordered so that the asserting literal sits at
// position 0 and a literal from the backtrack level at position 1.
// lvl must be above the base level: base-level conflicts mean the formula is
// unsatisfiable and must be handled by the caller.
func (s *Solver) learnClause(confl *Clause, lvl decLevel) (learned *Clause, asserting Lit) {
	lits := make([]Lit, 1, confl.Len()) // Position 0 is saved for the asserting literal.
	met := make([]bool, s.nbVars)       // Vars already part of the resolution
	metLvl := make([]bool, s.nbVars)    // Vars from the conflict level left to resolve
	nbLvl := 0                          // How many vars from metLvl were not resolved yet
	for i := 0; i < confl.Len(); i++ {
		l := confl.Get(i)
		v := l.Var()
		met[v] = true
		s.varBumpActivity(v)
		if abs(s.model[v]) == lvl {
			metLvl[v] = true
			nbLvl++
		} else if abs(s.model[v]) != baseLevel { // Base-level lits are false for good: leave them out
			lits = append(lits, l)
		}
	}
	ptr := len(s.trail) - 1
	for nbLvl > 1 { // Resolve until a single var from the conflict level remains.
		for !metLvl[s.trail[ptr].Var()] {
			ptr--
		}
		v := s.trail[ptr].Var()
		ptr--
		nbLvl--
		reason := s.reason[v]
		if reason == nil {
			panic("reached a decision while resolving a conflict")
		}
		for i := 0; i < reason.Len(); i++ {
			l := reason.Get(i)
			if v2 := l.Var(); !met[v2] {
				met[v2] = true
				s.varBumpActivity(v2)
				if abs(s.model[v2]) == lvl {
					metLvl[v2] = true
					nbLvl++
				} else if abs(s.model[v2]) != baseLevel {
					lits = append(lits, l)
				}
			}
		}
	}
	// The only unresolved marked var of the conflict level is the first UIP:
	// negated, it becomes the asserting literal.
	for _, l := range s.trail {
		if metLvl[l.Var()] && abs(s.model[l.Var()]) == lvl {
			lits[0] = l.Negation()
			break
		}
	}
	if len(lits) == 1 {
		return nil, lits[0]
	}
	// Move a literal from the highest remaining level to position 1: the
	// backtrack level is read there and the literal doubles as second watch.
	maxIdx := 1
	maxLvl := abs(s.model[lits[1].Var()])
	for i := 2; i < len(lits); i++ {
		if l := abs(s.model[lits[i].Var()]); l > maxLvl {
			maxIdx = i
			maxLvl = l
		}
	}
	lits[1], lits[maxIdx] = lits[maxIdx], lits[1]
	return NewLearnedClause(lits), -1
}

// backtrackData returns the level to backtrack to and the literal asserted
// by the given learned clause.
func backtrackData(c *Clause, model Model) (btLevel decLevel, lit Lit) {
	return abs(model[c.Second().Var()]), c.First()
}
