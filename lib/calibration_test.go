package lib

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calibrationBoard(t *testing.T) *Board {
	board, err := NewBoard([]*Part{
		{ComponentName: "R1", Footprint: "0805", Value: "10k", Pos: Pos(10, 20)},
		{ComponentName: "R2", Footprint: "0805", Value: "10k", Pos: Pos(30, 20)},
		{ComponentName: "C1", Footprint: "0603", Value: "100n", Pos: Pos(5, 5)},
	})
	require.NoError(t, err)
	return board
}

func TestCalibrationSpacing(t *testing.T) {
	log := `
tape1:0805@10k 0 0 2
tape3:0805@10k 8 0 2
`
	config, problems, err := ParseCalibrationLog(calibrationBoard(t), strings.NewReader(log))
	require.NoError(t, err)
	assert.Empty(t, problems)

	tape, ok := config.TapeFor("0805@10k")
	require.True(t, ok)
	assert.Equal(t, Pos3(0, 0, 2), tape.FirstPosition())
	assert.Equal(t, Pos(4, 0), tape.Spacing())
}

func TestCalibrationLastSlotWins(t *testing.T) {
	log := `
tape1:C1 10 10 1
tape2:C1 12 10 1
tape5:C1 18.4 10 1
`
	config, problems, err := ParseCalibrationLog(calibrationBoard(t), strings.NewReader(log))
	require.NoError(t, err)
	assert.Empty(t, problems)

	tape, ok := config.TapeFor("C1")
	require.True(t, ok)
	assert.InDelta(t, 2.1, tape.Spacing().X, 1e-9)
	assert.Equal(t, 0.0, tape.Spacing().Y)
}

func TestCalibrationBoardOrigin(t *testing.T) {
	log := `
board:R1 110 220 1.7
board:R2 135 221 1.7
`
	config, problems, err := ParseCalibrationLog(calibrationBoard(t), strings.NewReader(log))
	require.NoError(t, err)
	assert.Empty(t, problems)

	// only the last reference counts
	assert.True(t, config.HasOrigin)
	assert.Equal(t, Pos(105, 201), config.Origin)
}

func TestCalibrationProblemsAreSkipped(t *testing.T) {
	log := `tape1:0805@10k 0 0 2
this is not a calibration line
tape0:0805@10k 1 1 1
tape2:0603@1k 3 0 2
board:U9 1 2 3
tape1:0805@10k x 0 2
tape2:0805@10k 4 0 2
`
	config, problems, err := ParseCalibrationLog(calibrationBoard(t), strings.NewReader(log))
	require.NoError(t, err)
	require.Len(t, problems, 5)

	assert.True(t, errors.Is(problems[0], ErrMalformedLine))
	assert.True(t, errors.Is(problems[1], ErrMalformedLine))
	assert.True(t, errors.Is(problems[2], ErrLookup))
	assert.True(t, errors.Is(problems[3], ErrLookup))
	assert.True(t, errors.Is(problems[4], ErrMalformedLine))

	var lerr *Error
	require.True(t, errors.As(problems[3], &lerr))
	assert.Equal(t, 5, lerr.Line)

	tape, ok := config.TapeFor("0805@10k")
	require.True(t, ok)
	assert.Equal(t, Pos(4, 0), tape.Spacing())
	assert.False(t, config.HasOrigin)
}

func TestCalibrationEntryString(t *testing.T) {
	entry, err := ParseCalibrationLine("tape2:0805@10k 4 0 2")
	require.NoError(t, err)
	assert.Equal(t, CalibrationEntry{Slot: 2, Key: "0805@10k", Pos: Pos3(4, 0, 2)}, entry)
	assert.Equal(t, "tape2:0805@10k 4.000 0.000 2.000", entry.String())

	entry, err = ParseCalibrationLine("board:R1 1 2 3")
	require.NoError(t, err)
	assert.True(t, entry.Board)

	again, err := ParseCalibrationLine(entry.String())
	require.NoError(t, err)
	assert.Equal(t, entry, again)
}

func TestCalibrationRemeasuredFirstSlot(t *testing.T) {
	log := `
tape1:0805@10k 0 0 2
tape1:0805@10k 1 0 2
tape3:0805@10k 9 0 2
`
	config, problems, err := ParseCalibrationLog(calibrationBoard(t), strings.NewReader(log))
	require.NoError(t, err)
	assert.Empty(t, problems)

	require.Len(t, config.Tapes(), 1)
	tape := config.Tapes()[0]
	assert.Equal(t, Pos3(1, 0, 2), tape.FirstPosition())
	assert.Equal(t, Pos(4, 0), tape.Spacing())
}

func TestCalibrationTapeWithoutSpacing(t *testing.T) {
	log := `
tape1:C1 10 10 1
tape1:0805@10k 0 0 2
tape2:0805@10k 4 0 2
`
	config, problems, err := ParseCalibrationLog(calibrationBoard(t), strings.NewReader(log))
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.True(t, errors.Is(problems[0], ErrConfig))

	tape, ok := config.TapeFor("C1")
	require.True(t, ok)
	count, ok := tape.Count()
	assert.True(t, ok)
	assert.Equal(t, 1, count)

	_, err = tape.NextPosition()
	require.NoError(t, err)
	_, err = tape.NextPosition()
	assert.True(t, errors.Is(err, ErrFeederExhausted))

	resistors, ok := config.TapeFor("0805@10k")
	require.True(t, ok)
	_, ok = resistors.Count()
	assert.False(t, ok)
}
