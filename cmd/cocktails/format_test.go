package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBounds(t *testing.T) {
	bounds, err := parseBounds([]string{"total", "singleton", "concentration"})
	require.NoError(t, err)
	require.Len(t, bounds, 3)
	assert.Equal(t, "total", bounds[0].Name())

	bounds, err = parseBounds([]string{" Singleton "})
	require.NoError(t, err)
	require.Len(t, bounds, 1)
	assert.Equal(t, "singleton", bounds[0].Name())

	bounds, err = parseBounds([]string{"none"})
	require.NoError(t, err)
	assert.Empty(t, bounds)

	_, err = parseBounds([]string{"galactic"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "galactic")
}

func TestFormatResultJSON(t *testing.T) {
	res := result{
		TargetIngredients: 4,
		SearchIterations:  17,
		ExecutionTimeMS:   1.25,
		Exhausted:         true,
		OptimalCocktails:  2,
		IngredientsUsed:   4,
		Ingredients:       []string{"lime juice", "rum"},
		Cocktails:         []string{"Daiquiri", "Mojito"},
	}

	out, err := formatResult(res, "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.InDelta(t, 2, decoded["optimal_cocktails"], 0)
	assert.Equal(t, true, decoded["exhausted"])

	_, err = formatResult(res, "yaml")
	require.Error(t, err)
}

func TestFormatResultSimple(t *testing.T) {
	res := result{
		TargetIngredients: 3,
		OptimalCocktails:  1,
		Ingredients:       []string{"gin", "tonic water"},
		Cocktails:         []string{"Gin & Tonic"},
	}

	out, err := formatResult(res, "simple")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines, "optimal_cocktails=1")
	assert.Contains(t, lines, "ingredients=gin, tonic water")
	assert.Contains(t, lines, "cocktails=Gin & Tonic")
}

func TestFormatSweepSimple(t *testing.T) {
	rows := []sweepRow{
		{Budget: 2, Cocktails: 1, Ingredients: 2, Iterations: 5, Exhausted: true, ExecutionTimeMS: 0.1},
		{Budget: 3, Cocktails: 2, Ingredients: 3, Iterations: 9, Exhausted: true, ExecutionTimeMS: 0.2},
	}

	out, err := formatSweep(rows, "simple")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "budget=2 cocktails=1")
	assert.Contains(t, lines[1], "budget=3 cocktails=2")
}

func TestSplitObjectURL(t *testing.T) {
	bucket, key, err := splitObjectURL("my-bucket/path/to/cocktails.csv.zst")
	require.NoError(t, err)
	assert.Equal(t, "my-bucket", bucket)
	assert.Equal(t, "path/to/cocktails.csv.zst", key)

	_, _, err = splitObjectURL("bucket-only")
	require.Error(t, err)
}
