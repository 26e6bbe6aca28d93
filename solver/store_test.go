package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	lits, tautology := normalize([]Lit{IntToLit(3), IntToLit(1), IntToLit(3)})
	require.False(t, tautology)
	assert.Equal(t, []Lit{IntToLit(1), IntToLit(3)}, lits)

	_, tautology = normalize([]Lit{IntToLit(1), IntToLit(2), IntToLit(-1)})
	assert.True(t, tautology)
}

func TestClauseDBStableIDs(t *testing.T) {
	c1 := NewClause([]Lit{IntToLit(1), IntToLit(2)})
	c2 := NewClause([]Lit{IntToLit(-1), IntToLit(3)})
	db := newClauseDB([]*Clause{c1, c2})
	assert.Equal(t, 0, c1.ID())
	assert.Equal(t, 1, c2.ID())
	assert.False(t, c1.Learned())

	learned := NewLearnedClause([]Lit{IntToLit(-2), IntToLit(3)})
	id := db.addLearned(learned)
	assert.Equal(t, 2, id)
	assert.True(t, learned.Learned())

	// Identifiers keep designating the same clause as the database grows.
	for i := 0; i < 100; i++ {
		db.addLearned(NewLearnedClause([]Lit{IntToLit(1), IntToLit(i + 4)}))
	}
	assert.Same(t, c2, db.get(1))
	assert.Same(t, learned, db.get(2))
	assert.Equal(t, 103, db.len())
	assert.Equal(t, 2, db.nbOriginal)
	assert.Equal(t, 101, db.nbLearned)
}

func TestClauseCNF(t *testing.T) {
	c := NewClause([]Lit{IntToLit(1), IntToLit(-2), IntToLit(3)})
	assert.Equal(t, "1 -2 3 0", c.CNF())
}
