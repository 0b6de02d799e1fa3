package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggester(t *testing.T) {
	config := NewPnPConfig()
	for _, key := range []string{"0805@100n", "0603@10k", "SOT23@BC847"} {
		tape := NewTape(key)
		tape.SetComponentSpacing(4, 0)
		config.AddTape(tape, key)
	}

	suggester, err := NewSuggester(config)
	require.NoError(t, err)
	defer suggester.Close()

	keys, err := suggester.Suggest(&Part{ComponentName: "C7", Footprint: "0805", Value: "100nF"}, 3)
	require.NoError(t, err)
	require.NotEmpty(t, keys)
	assert.Equal(t, "0805@100n", keys[0])

	keys, err = suggester.Suggest(&Part{ComponentName: "Q1", Footprint: "SOT23", Value: "BC848"}, 3)
	require.NoError(t, err)
	require.NotEmpty(t, keys)
	assert.Equal(t, "SOT23@BC847", keys[0])
}
