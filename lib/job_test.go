package lib

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobBoard(t *testing.T) *Board {
	board, err := NewBoard([]*Part{
		{ComponentName: "R1", Footprint: "0805", Value: "10k", Pos: Pos(0, 0)},
		{ComponentName: "R2", Footprint: "0805", Value: "10k", Pos: Pos(10, 0)},
		{ComponentName: "C1", Footprint: "0603", Value: "100n", Pos: Pos(10, 10)},
	})
	require.NoError(t, err)
	return board
}

func TestRunCorners(t *testing.T) {
	board := jobBoard(t)
	corners := NewCornerPartCollector(Dimension{})
	var out bytes.Buffer

	opts := DefaultJobOptions()
	opts.Corners = corners
	summary, err := Run(board, nil, NewCornerGCode(&out, corners), opts)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Emitted)

	first, ok := corners.GetPart(0)
	require.True(t, ok)
	assert.Equal(t, "R1", first.ComponentName)
	last, ok := corners.GetPart(3)
	require.True(t, ok)
	assert.Equal(t, "C1", last.ComponentName)

	// R1 at report (0,0) ends up at machine (10,20)
	gcode := out.String()
	assert.Contains(t, gcode, "G0 X10.000 Y20.000 Z1.7 ; comp=R1")
	assert.Contains(t, gcode, "G0 X20.000 Y10.000 Z1.7 ; comp=C1")
	assert.True(t, strings.HasSuffix(gcode, ";done\n"))
}

func TestRunPlanSkipsExhausted(t *testing.T) {
	board := jobBoard(t)

	config := NewPnPConfig()
	resistors := NewTape("0805@10k")
	resistors.SetFirstComponentPosition(Pos3(100, 20, 2))
	resistors.SetComponentSpacing(4, 0)
	resistors.SetNumberComponents(1)
	config.AddTape(resistors, "0805@10k")

	opts := DefaultJobOptions()
	opts.Resolve = true
	opts.Optimize = false

	recorder := &PlanRecorder{}
	summary, err := Run(board, config, recorder, opts)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Parts)
	assert.Equal(t, 1, summary.Emitted)
	assert.Equal(t, 2, summary.Skipped)
	require.Len(t, summary.Problems, 2)
	assert.True(t, errors.Is(summary.Problems[0], ErrFeederExhausted))
	assert.True(t, errors.Is(summary.Problems[1], ErrLookup))

	require.Len(t, recorder.Placements, 1)
	pl := recorder.Placements[0]
	assert.Equal(t, "R1", pl.Part.ComponentName)
	require.NotNil(t, pl.Pick)
	assert.Equal(t, Pos3(100, 20, 2), pl.Pick.Pos)
	assert.Same(t, resistors, pl.Tape)
}

func TestRunUsesConfigOrigin(t *testing.T) {
	board := jobBoard(t)
	config := NewPnPConfig()
	config.SetOrigin(Pos(50, 60))

	opts := DefaultJobOptions()
	opts.Optimize = false

	recorder := &PlanRecorder{}
	_, err := Run(board, config, recorder, opts)
	require.NoError(t, err)

	assert.Equal(t, Pos(50, 70), recorder.Placements[0].Pos)
	assert.Equal(t, Pos(50, 60), recorder.Dimension.Min)
}

func TestRunErrors(t *testing.T) {
	_, err := Run(nil, nil, &PlanRecorder{}, DefaultJobOptions())
	assert.True(t, errors.Is(err, ErrEmptyBoard))

	opts := DefaultJobOptions()
	opts.Resolve = true
	_, err = Run(jobBoard(t), nil, &PlanRecorder{}, opts)
	assert.True(t, errors.Is(err, ErrConfig))

	// the place sink refuses parts without a pick position
	var out bytes.Buffer
	_, err = Run(jobBoard(t), nil, NewPlaceGCode(&out), DefaultJobOptions())
	assert.Error(t, err)
}

func TestMultiSink(t *testing.T) {
	first, second := &PlanRecorder{}, &PlanRecorder{}

	_, err := Run(jobBoard(t), nil, MultiSink(first, second), DefaultJobOptions())
	require.NoError(t, err)

	assert.Len(t, first.Placements, 3)
	assert.Equal(t, first.Placements, second.Placements)
}

func TestRunPreviewKeepsUnresolvedParts(t *testing.T) {
	board := jobBoard(t)

	config := NewPnPConfig()
	resistors := NewTape("0805@10k")
	resistors.SetComponentSpacing(4, 0)
	resistors.SetNumberComponents(1)
	config.AddTape(resistors, "0805@10k")

	opts := DefaultJobOptions()
	opts.Optimize = false
	opts.Resolve = true
	opts.ResolveOptional = true
	opts.Corners = NewCornerPartCollector(Dimension{})

	recorder := &PlanRecorder{}
	summary, err := Run(board, config, recorder, opts)
	require.NoError(t, err)

	// R2 finds its tape exhausted, C1 has no tape; both are still drawn
	assert.Equal(t, 3, summary.Emitted)
	assert.Equal(t, 0, summary.Skipped)
	assert.Len(t, summary.Problems, 2)

	require.Len(t, recorder.Placements, 3)
	assert.NotNil(t, recorder.Placements[0].Pick)
	assert.Nil(t, recorder.Placements[1].Pick)
	assert.Nil(t, recorder.Placements[2].Pick)
	assert.Equal(t, "C1", recorder.Placements[2].Part.ComponentName)

	last, ok := opts.Corners.GetPart(3)
	require.True(t, ok)
	assert.Equal(t, "C1", last.ComponentName)
}
