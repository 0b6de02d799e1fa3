package lib

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func names(parts []*Part) []string {
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = part.ComponentName
	}
	return out
}

func TestOptimizePartsNearestNeighbour(t *testing.T) {
	parts := []*Part{
		{ComponentName: "far", Pos: Pos(100, 100)},
		{ComponentName: "mid", Pos: Pos(10, 0)},
		{ComponentName: "near", Pos: Pos(1, 0)},
		{ComponentName: "back", Pos: Pos(0, 50)},
	}

	got := names(OptimizeParts(parts, Pos(0, 0)))
	want := []string{"near", "mid", "back", "far"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("OptimizeParts order (-want +got):\n%s", diff)
	}

	// input is left alone
	assert.Equal(t, "far", parts[0].ComponentName)
}

func TestOptimizePartsTieKeepsInputOrder(t *testing.T) {
	parts := []*Part{
		{ComponentName: "right", Pos: Pos(5, 0)},
		{ComponentName: "up", Pos: Pos(0, 5)},
	}

	assert.Equal(t, []string{"right", "up"}, names(OptimizeParts(parts, Pos(0, 0))))

	parts[0], parts[1] = parts[1], parts[0]
	assert.Equal(t, []string{"up", "right"}, names(OptimizeParts(parts, Pos(0, 0))))
}

func TestOptimizePartsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	parts := []*Part{}
	for i := 0; i < 200; i++ {
		parts = append(parts, &Part{
			ComponentName: fmt.Sprintf("R%d", i),
			Pos:           Pos(float64(rng.Intn(50)), float64(rng.Intn(50))),
		})
	}

	first := OptimizeParts(parts, Pos(0, 0))
	second := OptimizeParts(parts, Pos(0, 0))
	if diff := cmp.Diff(names(first), names(second)); diff != "" {
		t.Fatalf("OptimizeParts is not deterministic:\n%s", diff)
	}

	in, out := names(parts), names(first)
	sort.Strings(in)
	sort.Strings(out)
	assert.Equal(t, in, out)
}

func TestOptimizePartsEmpty(t *testing.T) {
	assert.Empty(t, OptimizeParts(nil, Pos(0, 0)))
}

func TestStartPosition(t *testing.T) {
	parts := []*Part{{ComponentName: "A", Pos: Pos(3, 4)}}
	transform := Transform{MinX: 0, MaxY: 100, Offset: Pos(10, 10)}

	assert.Equal(t, Pos(3, 4), StartPosition(StartFirst, parts, Pos(0, 0), transform))
	assert.Equal(t, Pos(-10, 110), StartPosition(StartHome, parts, Pos(0, 0), transform))

	mode, ok := ParseStartMode("first")
	assert.True(t, ok)
	assert.Equal(t, StartFirst, mode)
	_, ok = ParseStartMode("nowhere")
	assert.False(t, ok)
}
