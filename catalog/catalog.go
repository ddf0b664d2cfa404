// Package catalog loads cocktail catalogs and maps between the names the
// outside world uses and the integer ids the solver operates on.
//
// The on-disk format is headerless CSV with one cocktail per row: the
// cocktail name followed by its ingredients, e.g.
//
//	Negroni,gin,campari,sweet vermouth
//
// Ingredient ids are assigned in order of first appearance and cocktail ids
// in row order, so a given file always yields the same Problem. Rows whose
// ingredient set duplicates an earlier row collapse onto the earlier entry,
// keeping the later name.
package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/urschrei/cocktails/blobstore"
	"github.com/urschrei/cocktails/internal/bitset"
	"github.com/urschrei/cocktails/solver"
)

// Catalog is an immutable problem instance together with its name mappings.
type Catalog struct {
	cocktailNames   []string // indexed by cocktail id
	ingredientNames []string // indexed by ingredient index
	problem         *solver.Problem
}

// Read parses a catalog from headerless CSV.
func Read(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows have varying ingredient counts
	cr.TrimLeadingSpace = true

	ingredientIDs := make(map[string]int)
	var ingredientNames []string
	var cocktailNames []string
	var sets []bitset.Set
	seen := make(map[string]int) // ingredient-set key -> cocktail id

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("catalog: row %d: cocktail %q has no ingredients", len(cocktailNames)+1, row[0])
		}

		name := row[0]
		var ing bitset.Set
		for _, raw := range row[1:] {
			if raw == "" {
				continue
			}
			id, ok := ingredientIDs[raw]
			if !ok {
				id = len(ingredientNames)
				ingredientIDs[raw] = id
				ingredientNames = append(ingredientNames, raw)
			}
			ing.Add(id)
		}
		if ing.IsEmpty() {
			return nil, fmt.Errorf("catalog: cocktail %q has no ingredients", name)
		}

		key := ing.String()
		if id, dup := seen[key]; dup {
			// Same recipe under another name: keep one entry, latest name.
			cocktailNames[id] = name
			continue
		}
		seen[key] = len(cocktailNames)
		cocktailNames = append(cocktailNames, name)
		sets = append(sets, ing)
	}

	cocktails := make([]solver.Cocktail, len(sets))
	for i, s := range sets {
		cocktails[i] = solver.Cocktail{ID: i, Ingredients: s}
	}
	problem, err := solver.NewProblem(cocktails, len(ingredientNames))
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	return &Catalog{
		cocktailNames:   cocktailNames,
		ingredientNames: ingredientNames,
		problem:         problem,
	}, nil
}

// ReadFile loads a catalog from the local filesystem, decompressing by
// extension (.zst, .lz4).
func ReadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rc, err := decompressor(path, f)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Read(rc)
}

// Load fetches a catalog blob from a store, decompressing by extension.
func Load(ctx context.Context, store blobstore.Store, name string) (*Catalog, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	rc, err := decompressor(name, blob)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Read(rc)
}

// Save writes the catalog to a store as CSV, compressing by extension.
func (c *Catalog) Save(ctx context.Context, store blobstore.Store, name string) error {
	data, err := c.encodeCSV()
	if err != nil {
		return err
	}
	data, err = compress(name, data)
	if err != nil {
		return err
	}
	return store.Put(ctx, name, data)
}

func (c *Catalog) encodeCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, ck := range c.problem.Cocktails {
		row := []string{c.cocktailNames[ck.ID]}
		for i := range ck.Ingredients.All() {
			row = append(row, c.ingredientNames[i])
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Problem returns the solver instance for this catalog.
func (c *Catalog) Problem() *solver.Problem {
	return c.problem
}

// Cocktails returns the number of distinct cocktails.
func (c *Catalog) Cocktails() int {
	return len(c.cocktailNames)
}

// Ingredients returns the size of the ingredient universe.
func (c *Catalog) Ingredients() int {
	return len(c.ingredientNames)
}

// CocktailName returns the name for a cocktail id.
func (c *Catalog) CocktailName(id int) string {
	return c.cocktailNames[id]
}

// IngredientName returns the name for an ingredient index.
func (c *Catalog) IngredientName(i int) string {
	return c.ingredientNames[i]
}

// CocktailNames maps a solution's satisfied cocktails to sorted names.
func (c *Catalog) CocktailNames(sol *solver.Solution) []string {
	out := make([]string, 0, sol.Cocktails.GetCardinality())
	for _, id := range sol.CocktailIDs() {
		out = append(out, c.cocktailNames[id])
	}
	sort.Strings(out)
	return out
}

// IngredientNames maps a solution's selected ingredients to sorted names.
func (c *Catalog) IngredientNames(sol *solver.Solution) []string {
	out := make([]string, 0, sol.Ingredients.Count())
	for _, i := range sol.IngredientIndices() {
		out = append(out, c.ingredientNames[i])
	}
	sort.Strings(out)
	return out
}
