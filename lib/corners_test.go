package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCornerPartCollector(t *testing.T) {
	parts := []*Part{
		{ComponentName: "A", Pos: Pos(0, 0)},
		{ComponentName: "B", Pos: Pos(10, 0)},
		{ComponentName: "C", Pos: Pos(10, 10)},
		{ComponentName: "D", Pos: Pos(1, 9)},
	}

	corners := NewCornerPartCollector(Dimension{Min: Pos(0, 0), Max: Pos(10, 10)})
	for _, part := range parts {
		corners.Update(part.Pos, part)
	}

	want := []string{"A", "B", "D", "C"}
	for i, name := range want {
		part, ok := corners.GetPart(i)
		require.True(t, ok)
		assert.Equal(t, name, part.ComponentName, "corner %d", i)

		pos, ok := corners.GetClosest(i)
		require.True(t, ok)
		assert.Equal(t, part.Pos, pos)
	}

	d, ok := corners.GetDistance(2)
	require.True(t, ok)
	assert.InDelta(t, 1.4142, d, 1e-4)
}

func TestCornerTieFirstSeenWins(t *testing.T) {
	first := &Part{ComponentName: "R1", Pos: Pos(0, 5)}
	second := &Part{ComponentName: "R2", Pos: Pos(5, 0)}

	corners := NewCornerPartCollector(Dimension{Min: Pos(0, 0), Max: Pos(10, 10)})
	corners.Update(first.Pos, first)
	corners.Update(second.Pos, second)

	part, ok := corners.GetPart(0)
	require.True(t, ok)
	assert.Equal(t, "R1", part.ComponentName)

	corners.SetCorners(Dimension{Min: Pos(0, 0), Max: Pos(10, 10)})
	corners.Update(second.Pos, second)
	corners.Update(first.Pos, first)

	part, ok = corners.GetPart(0)
	require.True(t, ok)
	assert.Equal(t, "R2", part.ComponentName)
}

func TestCornerPartCollectorEmpty(t *testing.T) {
	corners := NewCornerPartCollector(Dimension{Max: Pos(10, 10)})

	for i := 0; i < 4; i++ {
		_, ok := corners.GetPart(i)
		assert.False(t, ok)
		_, ok = corners.GetClosest(i)
		assert.False(t, ok)
	}
	_, ok := corners.GetPart(7)
	assert.False(t, ok)
}
