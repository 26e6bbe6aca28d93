package solver

import "sort"

// clauseDB owns every clause of a run, original and learned ones alike.
// Clauses are identified by their index in the database; they are never
// removed, so identifiers stay valid for the lifetime of the solver.
type clauseDB struct {
	clauses    []*Clause
	nbOriginal int
	nbLearned  int
}

func newClauseDB(clauses []*Clause) clauseDB {
	db := clauseDB{
		clauses:    make([]*Clause, 0, len(clauses)*2), // Make room for future learned clauses
		nbOriginal: len(clauses),
	}
	for _, c := range clauses {
		c.id = len(db.clauses)
		db.clauses = append(db.clauses, c)
	}
	return db
}

// addLearned stores a clause derived by conflict analysis and returns its id.
func (db *clauseDB) addLearned(c *Clause) int {
	c.id = len(db.clauses)
	db.clauses = append(db.clauses, c)
	db.nbLearned++
	return c.id
}

// get returns the clause stored under the given id.
func (db *clauseDB) get(id int) *Clause {
	return db.clauses[id]
}

func (db *clauseDB) len() int {
	return len(db.clauses)
}

// normalize sorts lits, removes duplicated literals and reports whether the
// clause is a tautology, i.e. contains both a literal and its negation.
// Tautological clauses are true under any assignment and can be dropped at
// load time.
func normalize(lits []Lit) (res []Lit, tautology bool) {
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })
	j := 0
	for i, l := range lits {
		if i > 0 {
			if l == lits[j-1] {
				continue
			}
			if l.Var() == lits[j-1].Var() {
				return nil, true
			}
		}
		lits[j] = l
		j++
	}
	return lits[:j], false
}
