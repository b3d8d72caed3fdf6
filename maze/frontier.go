package maze

// A proposal to connect Target to the maze through the wall it shares with
// Source. Source was already part of the maze when the candidate was added.
type Candidate struct {
	Target Coord `json:"target"`
	Source Coord `json:"source"`
}

// Returns the wall the candidate would open.
func (c Candidate) Edge() Edge {
	return NewEdge(c.Target, c.Source)
}

// A bag of frontier candidates. The same target may be present more than
// once, proposed by different sources; stale entries are discarded when they
// are popped rather than searched for on insertion.
type Frontier struct {
	items []Candidate
}

// Returns an empty frontier with room for capacity candidates.
func NewFrontier(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}
	return &Frontier{
		items: make([]Candidate, 0, capacity),
	}
}

// Inserts a candidate. Duplicates are allowed.
func (f *Frontier) Add(c Candidate) {
	f.items = append(f.items, c)
}

// Removes and returns a candidate chosen uniformly at random. The last
// candidate is moved into the removed one's slot, so insertion order never
// biases the selection and removal is O(1). Returns ErrEmptyFrontier if
// there is nothing to pop.
func (f *Frontier) PopRandom(rng Rand) (Candidate, error) {
	if len(f.items) == 0 {
		return Candidate{}, ErrEmptyFrontier
	}
	i := rng.Intn(len(f.items))
	toReturn := f.items[i]
	last := len(f.items) - 1
	f.items[i] = f.items[last]
	f.items = f.items[:last]
	return toReturn, nil
}

// Returns the number of candidates, including stale duplicates.
func (f *Frontier) Len() int {
	return len(f.items)
}

// Returns true when no candidates remain; generation ends at this point.
func (f *Frontier) IsEmpty() bool {
	return len(f.items) == 0
}

// Drops all candidates, keeping the allocated storage.
func (f *Frontier) Reset() {
	f.items = f.items[:0]
}

// Returns a copy of the current candidates, in storage order.
func (f *Frontier) Candidates() []Candidate {
	toReturn := make([]Candidate, len(f.items))
	copy(toReturn, f.items)
	return toReturn
}
