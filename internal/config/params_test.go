package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestParseParams(t *testing.T) {
	seed := uint64(42)
	tests := []struct {
		name  string
		query string
		want  mines.GameParams
	}{
		{
			name:  "empty",
			query: "",
			want:  mines.DefaultParams(),
		},
		{
			name:  "partial",
			query: "width=9&height=7",
			want:  mines.GameParams{Width: 9, Height: 7, Probability: mines.DefaultProbability},
		},
		{
			name:  "full",
			query: "width=30&height=16&probability=0.2&seed=42",
			want:  mines.GameParams{Width: 30, Height: 16, Probability: 0.2, Seed: &seed},
		},
		{
			name:  "unknown keys",
			query: "width=5&unique=1",
			want:  mines.GameParams{Width: 5, Height: mines.DefaultHeight, Probability: mines.DefaultProbability},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params, err := ParseParams(test.query)
			require.NoError(t, err)
			assert.Equal(t, test.want, params)
		})
	}
}

func TestParseParamsInvalid(t *testing.T) {
	tests := []string{
		"width=abc",
		"width=0",
		"height=-3",
		"probability=1",
		"probability=-0.5",
		"seed=-1",
		"width=%zz",
	}
	for _, query := range tests {
		_, err := ParseParams(query)
		assert.Error(t, err, query)
	}
}

func TestEncodeParamsRoundTrip(t *testing.T) {
	seed := uint64(7)
	for _, params := range []mines.GameParams{
		mines.DefaultParams(),
		{Width: 3, Height: 4, Probability: 0.5, Seed: &seed},
	} {
		query, err := EncodeParams(params)
		require.NoError(t, err)
		decoded, err := ParseParams(query)
		require.NoError(t, err)
		assert.Equal(t, params, decoded, query)
	}
}

func TestParamsAttr(t *testing.T) {
	seed := uint64(11)
	params := mines.GameParams{Width: 6, Height: 5, Probability: 0.125, Seed: &seed}

	attr := ParamsAttr(params)
	assert.Equal(t, "params", attr.Key)
	assert.Contains(t, attr.Value.String(), "seed=11")

	decoded, err := ParseParams(attr.Value.String())
	require.NoError(t, err)
	assert.Equal(t, params, decoded)

	attr = ParamsAttr(mines.DefaultParams())
	assert.NotContains(t, attr.Value.String(), "seed")
}
