package solver

import (
	"github.com/sirupsen/logrus"
)

const (
	// baseLevel is the decision level of the facts forced by the input's unit
	// clauses. It starts at 1, not 0, because bindings are stored as signed
	// levels and 0 means "unbound". Decisions start at baseLevel + 1.
	baseLevel decLevel = 1

	varDecay      = 0.95 // By how much var activity bumping grows at each decay.
	decayInterval = 50   // Nb of conflicts between two activity decays.
	rescaleLimit  = 1e100
)

// Stats are statistics about the resolution of the problem.
// They are provided for information purpose only.
type Stats struct {
	NbDecisions     int
	NbConflicts     int
	NbLearned       int // How many clauses were learned
	NbUnitLearned   int // How many unit clauses were learned
	NbBinaryLearned int // How many binary clauses were learned
}

// The level a binding was made at.
// A negative value means "bound to false at that level".
// A positive value means "bound to true at that level".
type decLevel int

// A Model associates each variable, in order, with a binding, stored as a
// signed decision level:
// - a 0 value means the variable is free,
// - a positive value means the variable was set to true at the given decLevel,
// - a negative value means the variable was set to false at the given decLevel.
type Model []decLevel

// A Solver holds the whole state of the search: clause database, watch
// index, assignment trail and decision heuristic. It is the context every
// operation of the engine works on; once created, it must not be shared
// between goroutines.
type Solver struct {
	Stats    Stats
	nbVars   int
	status   Status
	db       clauseDB
	wl       watcherList
	trail    []Lit // Current assignment stack, in assignment order
	model    Model
	units    []Lit     // Base-level facts from the problem's unit clauses
	reason   []*Clause // For each var, the clause that forced it; nil for decisions
	activity []float64 // How often each var is involved in conflicts
	polarity []bool    // Preferred sign for each var
	varQueue queue
	varInc   float64 // On each var bump, how big the increment should be
	log      *logrus.Entry
}

// New makes a solver for the given problem.
func New(pb *Problem) *Solver {
	if pb.Status == Unsat {
		return &Solver{status: Unsat, log: newLogEntry()}
	}
	nbVars := pb.NbVars
	s := &Solver{
		nbVars:   nbVars,
		status:   Indet,
		db:       newClauseDB(pb.Clauses),
		trail:    make([]Lit, 0, nbVars),
		model:    make(Model, nbVars),
		units:    pb.Units,
		reason:   make([]*Clause, nbVars),
		activity: make([]float64, nbVars),
		polarity: make([]bool, nbVars),
		varInc:   1.0,
		log:      newLogEntry(),
	}
	for i := range s.polarity {
		s.polarity[i] = true // Decide true first.
	}
	s.initWatcherList()
	s.varQueue = newQueue(s.activity)
	return s
}

func newLogEntry() *logrus.Entry {
	return logrus.WithField("component", "solver")
}

// litStatus returns whether the literal is made true (Sat) or false (Unsat)
// by the current bindings, or if it is unbound (Indet).
func (s *Solver) litStatus(l Lit) Status {
	assign := s.model[l.Var()]
	if assign == 0 {
		return Indet
	}
	if assign > 0 == l.IsPositive() {
		return Sat
	}
	return Unsat
}

func abs(val decLevel) decLevel {
	if val < 0 {
		return -val
	}
	return val
}

func (s *Solver) varBumpActivity(v Var) {
	s.activity[v] += s.varInc
	if s.activity[v] > rescaleLimit { // Rescaling is needed to avoid overflowing
		for i := range s.activity {
			s.activity[i] *= 1 / rescaleLimit
		}
		s.varInc *= 1 / rescaleLimit
	}
	if s.varQueue.contains(int(v)) {
		s.varQueue.decrease(int(v))
	}
}

func (s *Solver) varDecayActivity() {
	s.varInc *= 1 / varDecay
}

// chooseLit returns an unbound literal to be decided, or -1 if all the
// variables are already bound.
func (s *Solver) chooseLit() Lit {
	v := Var(-1)
	for v == -1 && !s.varQueue.empty() {
		if v2 := Var(s.varQueue.removeMin()); s.model[v2] == 0 { // Ignore already bound vars
			v = v2
		}
	}
	if v == -1 {
		return Lit(-1)
	}
	s.Stats.NbDecisions++
	return v.SignedLit(!s.polarity[v])
}

// cleanupBindings unwinds the trail down to the given level: all bindings
// made at a level strictly above lvl are undone, in reverse assignment
// order, and their variables are put back in the decision queue.
func (s *Solver) cleanupBindings(lvl decLevel) {
	i := len(s.trail)
	for i > 0 && abs(s.model[s.trail[i-1].Var()]) > lvl {
		i--
	}
	for j := len(s.trail) - 1; j >= i; j-- {
		lit := s.trail[j]
		v := lit.Var()
		s.model[v] = 0
		s.reason[v] = nil
		s.polarity[v] = lit.IsPositive()
		if !s.varQueue.contains(int(v)) {
			s.varQueue.insert(int(v))
		}
	}
	s.trail = s.trail[:i]
}

func (s *Solver) rebuildOrderHeap() {
	ints := make([]int, 0, s.nbVars)
	for v := 0; v < s.nbVars; v++ {
		if s.model[v] == 0 {
			ints = append(ints, v)
		}
	}
	s.varQueue.build(ints)
}

// addLearned inserts the learned clause into the database and registers its
// watches.
func (s *Solver) addLearned(c *Clause) {
	s.db.addLearned(c)
	s.watchClause(c)
	s.Stats.NbLearned++
	if c.Len() == 2 {
		s.Stats.NbBinaryLearned++
	}
}

// propagateUnits binds and propagates the base-level facts.
// It returns false if a conflict was found, meaning the formula is
// unsatisfiable.
func (s *Solver) propagateUnits() bool {
	for _, unit := range s.units {
		switch s.litStatus(unit) {
		case Sat: // Already forced by an earlier unit.
			continue
		case Unsat:
			return false
		}
		if conflict := s.unifyLiteral(unit, baseLevel); conflict != nil {
			return false
		}
	}
	return true
}

// propagateAndSearch decides, propagates and backjumps until the problem's
// status is known, starting with the given decision literal at the given
// level.
func (s *Solver) propagateAndSearch(lit Lit, lvl decLevel) Status {
	for lit != -1 {
		if conflict := s.unifyLiteral(lit, lvl); conflict == nil { // Pick a new branch
			lvl++
			lit = s.chooseLit()
		} else { // Deal with the conflict
			s.Stats.NbConflicts++
			if s.Stats.NbConflicts%decayInterval == 0 {
				s.varDecayActivity()
			}
			learned, asserting := s.learnClause(conflict, lvl)
			if learned == nil { // A unit clause was learned: this lit is known for sure
				s.Stats.NbUnitLearned++
				s.cleanupBindings(baseLevel)
				switch s.litStatus(asserting) {
				case Unsat: // Contradicts a base-level fact
					return s.setUnsat()
				case Indet:
					if conflict = s.unifyLiteral(asserting, baseLevel); conflict != nil {
						return s.setUnsat()
					}
				}
				s.rebuildOrderHeap()
				lit = s.chooseLit()
				lvl = baseLevel + 1
			} else {
				s.addLearned(learned)
				lvl, lit = backtrackData(learned, s.model)
				s.cleanupBindings(lvl)
				s.reason[lit.Var()] = learned
			}
		}
	}
	return Sat
}

// setUnsat sets the status to unsat.
func (s *Solver) setUnsat() Status {
	s.status = Unsat
	return Unsat
}

// Solve solves the problem associated with the solver and returns the
// appropriate status, Sat or Unsat.
func (s *Solver) Solve() Status {
	if s.status != Indet {
		return s.status
	}
	if !s.propagateUnits() {
		return s.setUnsat()
	}
	s.status = s.propagateAndSearch(s.chooseLit(), baseLevel+1)
	s.log.WithFields(logrus.Fields{
		"status":       s.status,
		"decisions":    s.Stats.NbDecisions,
		"conflicts":    s.Stats.NbConflicts,
		"learned":      s.Stats.NbLearned,
		"unit_learned": s.Stats.NbUnitLearned,
	}).Debug("search finished")
	return s.status
}

// Model returns a slice associating, to each variable, its binding.
// Variables left unbound at the end of the search can take any value and are
// reported true. The method panics if the solver's status is not Sat.
func (s *Solver) Model() []bool {
	if s.status != Sat {
		panic("cannot call Model() on a non-Sat solver")
	}
	res := make([]bool, s.nbVars)
	for i, lvl := range s.model {
		res[i] = lvl >= 0
	}
	return res
}
