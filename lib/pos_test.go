package lib

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPosASCII = `### Footprint positions - created on Sat 12 Oct 2024 10:21:07 AM
### Printed by KiCad version 8.0.5
## Unit = mm, Angle = deg.
## Side : All
# Ref     Val       Package                   PosX       PosY       Rot  Side
C1        100n      C_0805_2012Metric     140.9700   -93.9800   90.0000  top
R12       4k7       R_0603_1608Metric     110.5000  -100.2500    0.0000  bottom
## End
`

func TestParsePos(t *testing.T) {
	parts, err := ParsePos(strings.NewReader(testPosASCII))
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, &Part{
		ComponentName: "C1",
		Value:         "100n",
		Footprint:     "C_0805_2012Metric",
		Pos:           Pos(140.97, -93.98),
		Angle:         90,
	}, parts[0])
	assert.Equal(t, "R_0603_1608Metric@4k7", parts[1].Key())
}

func TestParsePosInches(t *testing.T) {
	pos := "## Unit = inches, Angle = deg.\n# Ref Val Package PosX PosY Rot Side\nC1 100n C_0805 1.0 -2.0 0 top\n"

	parts, err := ParsePos(strings.NewReader(pos))
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.InDelta(t, 25.4, parts[0].Pos.X, 1e-9)
	assert.InDelta(t, -50.8, parts[0].Pos.Y, 1e-9)
}

func TestParsePosErrors(t *testing.T) {
	_, err := ParsePos(strings.NewReader("## nothing\n"))
	assert.Error(t, err)

	_, err = ParsePos(strings.NewReader("C1 100n C_0805 1 2 0 top\n"))
	assert.True(t, errors.Is(err, ErrMalformedLine))

	_, err = ParsePos(strings.NewReader("# Ref Val Package PosX PosY Rot Side\nC1 100n C_0805 abc 2 0 top\n"))
	require.Error(t, err)
	var lerr *Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 2, lerr.Line)
}

func TestReadPartsPosFormats(t *testing.T) {
	dir := t.TempDir()

	ascii := filepath.Join(dir, "ascii.pos")
	require.NoError(t, os.WriteFile(ascii, []byte(testPosASCII), 0644))
	csvPos := filepath.Join(dir, "csv.pos")
	require.NoError(t, os.WriteFile(csvPos, []byte("Ref,Val,Package,PosX,PosY,Rot,Side\nC1,100n,C_0805_2012Metric,140.97,-93.98,90,top\n"), 0644))

	for _, src := range []string{ascii, csvPos} {
		parts, err := ReadParts(src)
		require.NoError(t, err, src)
		require.NotEmpty(t, parts)
		assert.Equal(t, "C1", parts[0].ComponentName)
		assert.Equal(t, Pos(140.97, -93.98), parts[0].Pos)
	}
}
