package solver

// The watch index and the unit propagation engine.
//
// Each clause of size >= 2 is watched through its first two literals: the
// clause id is registered in the lists associated with the negation of those
// literals, so that assigning a literal true tells exactly which clauses may
// have become unit or false. Binary clauses get a dedicated representation
// storing the other literal inline, which avoids touching the clause at all
// during propagation.

type watcher struct {
	other  Lit // The other lit from the binary clause.
	clause *Clause
}

// A watcherList indexes all the clauses of the database by their watched
// literals.
type watcherList struct {
	wlistBin [][]watcher // For each literal, the binary clauses whose negation it watches.
	wlist    [][]*Clause // For each literal, the longer clauses whose negation it watches.
}

// initWatcherList registers the watches of all original clauses.
func (s *Solver) initWatcherList() {
	s.wl = watcherList{
		wlistBin: make([][]watcher, s.nbVars*2),
		wlist:    make([][]*Clause, s.nbVars*2),
	}
	for _, c := range s.db.clauses {
		s.watchClause(c)
	}
}

// watchClause registers the two watches of the given clause.
// Unit clauses must never reach this function.
func (s *Solver) watchClause(c *Clause) {
	if c.Len() == 2 {
		first := c.First()
		second := c.Second()
		s.wl.wlistBin[first.Negation()] = append(s.wl.wlistBin[first.Negation()], watcher{other: second, clause: c})
		s.wl.wlistBin[second.Negation()] = append(s.wl.wlistBin[second.Negation()], watcher{other: first, clause: c})
	} else {
		for i := 0; i < 2; i++ {
			neg := c.Get(i).Negation()
			s.wl.wlist[neg] = append(s.wl.wlist[neg], c)
		}
	}
}

// If l is negative, -lvl is returned. Else, lvl is returned.
func lvlToSignedLvl(l Lit, lvl decLevel) decLevel {
	if l.IsPositive() {
		return lvl
	}
	return -lvl
}

// unifyLiteral binds the given literal at the given level and propagates to
// the fixpoint. It returns the conflicting clause, or nil if no conflict
// arose.
func (s *Solver) unifyLiteral(lit Lit, lvl decLevel) *Clause {
	s.model[lit.Var()] = lvlToSignedLvl(lit, lvl)
	ptr := len(s.trail)
	s.trail = append(s.trail, lit)
	for ptr < len(s.trail) {
		p := s.trail[ptr]
		ptr++
		for _, w := range s.wl.wlistBin[p] {
			v2 := w.other.Var()
			if assign := s.model[v2]; assign == 0 { // Other was unbound: propagate
				s.reason[v2] = w.clause
				s.model[v2] = lvlToSignedLvl(w.other, lvl)
				s.trail = append(s.trail, w.other)
			} else if (assign > 0) != w.other.IsPositive() { // Conflict here
				return w.clause
			}
		}
		if confl := s.propagateNonBin(p, lvl); confl != nil {
			return confl
		}
	}
	return nil
}

// propagateNonBin inspects the non-binary clauses watching the negation of p,
// the literal that was just made true. For each clause, either another true
// literal satisfies it, or the falsified watch is moved to an unassigned or
// true literal, or the clause is unit and its remaining literal is bound, or
// every literal is false and the clause is returned as a conflict.
func (s *Solver) propagateNonBin(p Lit, lvl decLevel) *Clause {
	falseLit := p.Negation()
	ws := s.wl.wlist[p]
	j := 0
	for i := 0; i < len(ws); i++ {
		c := ws[i]
		// Make sure the falsified watch sits at position 1.
		if c.First() == falseLit {
			c.swap(0, 1)
		}
		first := c.First()
		if s.litStatus(first) == Sat { // Clause is satisfied: no action
			ws[j] = c
			j++
			continue
		}
		// Seek a replacement for the falsified watch.
		moved := false
		for k := 2; k < c.Len(); k++ {
			if s.litStatus(c.Get(k)) != Unsat {
				c.swap(1, k)
				neg := c.Second().Negation()
				s.wl.wlist[neg] = append(s.wl.wlist[neg], c)
				moved = true
				break
			}
		}
		if moved { // The clause left this watch list.
			continue
		}
		ws[j] = c
		j++
		if s.litStatus(first) == Unsat { // All lits are false: conflict
			for i++; i < len(ws); i++ { // Keep the watchers not inspected yet
				ws[j] = ws[i]
				j++
			}
			s.wl.wlist[p] = ws[:j]
			return c
		}
		// Clause became unit: bind its last free literal.
		v := first.Var()
		s.reason[v] = c
		s.model[v] = lvlToSignedLvl(first, lvl)
		s.trail = append(s.trail, first)
	}
	s.wl.wlist[p] = ws[:j]
	return nil
}
