package maze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimateYieldsEveryStep(t *testing.T) {
	g, e := Initialize(6, 4, WithSeed(11))
	require.NoError(t, e)
	a := g.Animate(context.Background())
	var snapshots []Snapshot
	for a.Next() {
		snapshots = append(snapshots, a.Snapshot())
	}
	require.NoError(t, a.Err())
	require.NotEmpty(t, snapshots)

	first := snapshots[0]
	assert.Equal(t, 0, first.Steps)
	assert.Equal(t, 1, first.VisitedCount())
	last := snapshots[len(snapshots)-1]
	assert.Equal(t, StateDone, last.State)
	assert.Equal(t, len(snapshots)-1, last.Steps)
	requirePerfect(t, last)
	for i := 1; i < len(snapshots); i++ {
		assert.Equal(t, i, snapshots[i].Steps)
		assert.GreaterOrEqual(t, snapshots[i].VisitedCount(),
			snapshots[i-1].VisitedCount())
	}

	// The sequence is finished for good.
	assert.False(t, a.Next())
	// A new animation over the finished maze only shows the result.
	again := g.Animate(context.Background())
	require.True(t, again.Next())
	assert.Equal(t, last.OpenEdges(), again.Snapshot().OpenEdges())
	assert.False(t, again.Next())
}

func TestAnimateSingleCell(t *testing.T) {
	g, e := Initialize(1, 1)
	require.NoError(t, e)
	a := g.Animate(context.Background())
	require.True(t, a.Next())
	assert.Equal(t, StateDone, a.Snapshot().State)
	assert.False(t, a.Next())
	assert.NoError(t, a.Err())
}

func TestAnimateStop(t *testing.T) {
	g, e := Initialize(10, 10, WithSeed(3))
	require.NoError(t, e)
	a := g.Animate(context.Background())
	require.True(t, a.Next())
	require.True(t, a.Next())
	a.Stop()
	a.Stop()
	assert.False(t, a.Next())
	assert.NoError(t, a.Err())
	assert.Equal(t, StateRunning, g.State())
	assert.Equal(t, 1, g.Snapshot().Steps)
	assert.Equal(t, 1, a.Snapshot().Steps)
}

func TestAnimateCanceled(t *testing.T) {
	g, e := Initialize(10, 10, WithSeed(3))
	require.NoError(t, e)
	ctx, cancel := context.WithCancel(context.Background())
	a := g.Animate(ctx)
	require.True(t, a.Next())
	cancel()
	assert.False(t, a.Next())
	assert.ErrorIs(t, a.Err(), context.Canceled)
	assert.False(t, a.Next())
}
