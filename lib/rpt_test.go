package lib

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReport = `## Module report - Sun 10 Jul 2016 07:51:21 PM PDT
## Created by Pcbnew version (2015-01-16 BZR 5376)-product
## Unit = mm, Angle = deg.

$BeginDESCRIPTION
$EndDESCRIPTION

$BOARD
upper_left_corner 100.330000 -120.650000
lower_right_corner 150.495000 -81.280000
$EndBOARD

$MODULE "C1"
reference "C1"
value "100n"
footprint "SMD_Packages:SMD-0805"
position 140.970000 -93.980000 orientation 90.00
layer front
$PAD "1"
position -0.950000 0.000000
size 1.200000 1.300000
$EndPAD
$PAD "2"
position 0.950000 0.000000
$EndPAD
$EndMODULE  C1

$MODULE "R12"
reference "R12"
value "4k7"
footprint "Resistors_SMD:R_0603"
position 110.5 -100.25 orientation 0.00
$EndMODULE  R12

$EndDESCRIPTION`

func TestParseRpt(t *testing.T) {
	parts, err := ParseRpt("test.rpt", strings.NewReader(testReport))
	require.NoError(t, err)
	require.Len(t, parts, 2)

	c1 := parts[0]
	assert.Equal(t, "C1", c1.ComponentName)
	assert.Equal(t, "100n", c1.Value)
	assert.Equal(t, "SMD_Packages:SMD-0805", c1.Footprint)
	assert.Equal(t, Pos(140.97, -93.98), c1.Pos, "pad positions must not leak into the part")
	assert.Equal(t, 90.0, c1.Angle)
	assert.Equal(t, "SMD_Packages:SMD-0805@100n", c1.Key())

	r12 := parts[1]
	assert.Equal(t, "R12", r12.ComponentName)
	assert.Equal(t, "4k7", r12.Value)
	assert.Equal(t, Pos(110.5, -100.25), r12.Pos)
	assert.Equal(t, 0.0, r12.Angle)
}

func TestParseRptMalformedPosition(t *testing.T) {
	report := "$MODULE \"C1\"\nreference \"C1\"\nposition here\n$EndMODULE C1\n"

	_, err := ParseRpt("bad.rpt", strings.NewReader(report))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedLine))

	var lerr *Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 3, lerr.Line)
}

func TestParseRptEmpty(t *testing.T) {
	parts, err := ParseRpt("empty.rpt", strings.NewReader("## nothing here\n"))
	require.NoError(t, err)
	assert.Empty(t, parts)

	_, err = NewBoard(parts)
	assert.True(t, errors.Is(err, ErrEmptyBoard))
}
