package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urschrei/cocktails"
	"github.com/urschrei/cocktails/blobstore"
	"github.com/urschrei/cocktails/catalog"
)

const fixtureCSV = `Mojito,rum,mint,lime
Daiquiri,rum,lime
Martini,gin,vermouth
Gin & Tonic,gin,tonic
Moscow Mule,vodka,ginger beer
`

func TestReadAssignsStableIDs(t *testing.T) {
	cat, err := catalog.Read(strings.NewReader(fixtureCSV))
	require.NoError(t, err)

	assert.Equal(t, 5, cat.Cocktails())
	assert.Equal(t, 8, cat.Ingredients())

	// Cocktail ids follow row order, ingredient ids first appearance.
	assert.Equal(t, "Mojito", cat.CocktailName(0))
	assert.Equal(t, "Moscow Mule", cat.CocktailName(4))
	assert.Equal(t, "rum", cat.IngredientName(0))
	assert.Equal(t, "mint", cat.IngredientName(1))
	assert.Equal(t, "ginger beer", cat.IngredientName(7))

	p := cat.Problem()
	assert.Equal(t, 8, p.UniverseSize)
	assert.True(t, p.ByID(1).Ingredients.Contains(0), "Daiquiri uses rum")
	assert.True(t, p.ByID(1).Ingredients.Contains(2), "Daiquiri uses lime")
}

func TestReadCollapsesDuplicateRecipes(t *testing.T) {
	cat, err := catalog.Read(strings.NewReader(
		"Daiquiri,rum,lime\nRum Sour,rum,lime\nMartini,gin,vermouth\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, cat.Cocktails())
	assert.Equal(t, "Rum Sour", cat.CocktailName(0), "latest name wins")
}

func TestReadRejectsBareName(t *testing.T) {
	_, err := catalog.Read(strings.NewReader("Just A Name\n"))
	assert.Error(t, err)
}

func TestReadEmptyCatalog(t *testing.T) {
	cat, err := catalog.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Cocktails())
}

func TestSolveWithNames(t *testing.T) {
	cat, err := catalog.Read(strings.NewReader(fixtureCSV))
	require.NoError(t, err)

	sol, err := cocktails.Solve(context.Background(), cat.Problem(), cocktails.WithBudget(4))
	require.NoError(t, err)
	require.True(t, sol.Exhausted)

	names := cat.CocktailNames(sol)
	assert.Len(t, names, sol.Score)
	assert.LessOrEqual(t, len(cat.IngredientNames(sol)), 4)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	orig, err := catalog.Read(strings.NewReader(fixtureCSV))
	require.NoError(t, err)

	for _, name := range []string{"bar.csv", "bar.csv.zst", "bar.csv.lz4"} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, orig.Save(ctx, store, name))

			loaded, err := catalog.Load(ctx, store, name)
			require.NoError(t, err)

			assert.Equal(t, orig.Cocktails(), loaded.Cocktails())
			assert.Equal(t, orig.Ingredients(), loaded.Ingredients())
			for id := 0; id < orig.Cocktails(); id++ {
				assert.Equal(t, orig.CocktailName(id), loaded.CocktailName(id))
				assert.True(t, orig.Problem().ByID(id).Ingredients.Equal(loaded.Problem().ByID(id).Ingredients))
			}
		})
	}
}

func TestLoadMissingBlob(t *testing.T) {
	_, err := catalog.Load(context.Background(), blobstore.NewMemoryStore(), "nope.csv")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
