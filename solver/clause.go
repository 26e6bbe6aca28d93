package solver

import (
	"fmt"
	"strings"
)

// A Clause is a non-empty list of distinct Lit.
// For clauses of size >= 2, the literals at positions 0 and 1 are the two
// watched literals; unit clauses are handled at the base level and never
// registered in the watch index.
type Clause struct {
	lits    []Lit
	id      int // Index in the clause database; set when the clause is stored.
	learned bool
}

// NewClause returns a clause over the given lits.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits, id: -1}
}

// NewLearnedClause returns a new clause marked as learned.
func NewLearnedClause(lits []Lit) *Clause {
	return &Clause{lits: lits, id: -1, learned: true}
}

// ID returns the clause's identifier in the database, or -1 if the clause
// was not stored yet.
func (c *Clause) ID() int {
	return c.id
}

// Learned returns true iff c was derived during conflict analysis.
func (c *Clause) Learned() bool {
	return c.learned
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// First returns the first lit from the clause.
func (c *Clause) First() Lit {
	return c.lits[0]
}

// Second returns the second lit from the clause.
func (c *Clause) Second() Lit {
	return c.lits[1]
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// swap exchanges the ith and jth lits from the clause.
func (c *Clause) swap(i, j int) {
	c.lits[i], c.lits[j] = c.lits[j], c.lits[i]
}

// CNF returns the DIMACS representation of the clause.
func (c *Clause) CNF() string {
	var sb strings.Builder
	for _, lit := range c.lits {
		fmt.Fprintf(&sb, "%d ", lit.Int())
	}
	sb.WriteByte('0')
	return sb.String()
}
