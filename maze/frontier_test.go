package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopRandomEmpty(t *testing.T) {
	f := NewFrontier(0)
	assert.True(t, f.IsEmpty())
	_, e := f.PopRandom(rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, e, ErrEmptyFrontier)
}

func TestPopRandomDrainsEveryCandidate(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	f := NewFrontier(4)
	added := map[Candidate]bool{}
	for i := 0; i < 10; i++ {
		c := Candidate{Target: Coord{i, 0}, Source: Coord{i, 1}}
		f.Add(c)
		added[c] = true
	}
	assert.Equal(t, 10, f.Len())
	assert.Len(t, f.Candidates(), 10)
	popped := map[Candidate]bool{}
	for !f.IsEmpty() {
		c, e := f.PopRandom(rng)
		require.NoError(t, e)
		assert.False(t, popped[c], "%v popped twice", c)
		popped[c] = true
	}
	assert.Equal(t, added, popped)
}

func TestFrontierAllowsDuplicates(t *testing.T) {
	f := NewFrontier(2)
	c := Candidate{Target: Coord{1, 1}, Source: Coord{0, 1}}
	f.Add(c)
	f.Add(c)
	assert.Equal(t, 2, f.Len())
	f.Reset()
	assert.True(t, f.IsEmpty())
}

// Always picks the last candidate, to check that removal doesn't disturb the
// rest of the bag.
type lastRand struct{}

func (lastRand) Intn(n int) int {
	return n - 1
}

// Always picks index 0.
type firstRand struct{}

func (firstRand) Intn(n int) int {
	return 0
}

func TestPopRandomSwapRemove(t *testing.T) {
	f := NewFrontier(3)
	a := Candidate{Target: Coord{0, 0}}
	b := Candidate{Target: Coord{1, 0}}
	c := Candidate{Target: Coord{2, 0}}
	f.Add(a)
	f.Add(b)
	f.Add(c)
	popped, e := f.PopRandom(firstRand{})
	require.NoError(t, e)
	assert.Equal(t, a, popped)
	// The last candidate moved into the freed slot.
	assert.Equal(t, []Candidate{c, b}, f.Candidates())
	popped, e = f.PopRandom(lastRand{})
	require.NoError(t, e)
	assert.Equal(t, b, popped)
}

func TestCandidateEdge(t *testing.T) {
	c := Candidate{Target: Coord{3, 2}, Source: Coord{3, 1}}
	assert.Equal(t, Edge{A: Coord{3, 1}, B: Coord{3, 2}}, c.Edge())
}
