// Package cocktails solves the bar-stocking problem: given a catalog of
// cocktails, each a small set of ingredients, which n ingredients let you mix
// the largest number of different cocktails?
//
// The problem is a budgeted maximum-coverage variant and NP-hard in general.
// This package solves it exactly with branch-and-bound search over bitset
// state, pruned by three admissible upper bounds (total, singleton,
// concentration). Within the configured iteration cap the returned score is
// a certified optimum; past the cap you get the best solution found so far,
// flagged as non-exhaustive.
//
// # Quick Start
//
//	p, _ := solver.NewProblem(myCocktails, universeSize)
//	sol, err := cocktails.Solve(ctx, p, cocktails.WithBudget(5))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sol.Score, sol.IngredientIndices())
//
// # Catalogs
//
// The catalog package loads instances from CSV (one cocktail per row:
// name followed by its ingredients) and maps solutions back to names:
//
//	cat, _ := catalog.ReadFile("cocktails.csv")
//	sol, _ := cocktails.Solve(ctx, cat.Problem(), cocktails.WithBudget(12))
//	fmt.Println(cat.CocktailNames(sol))
//
// Catalogs can also be fetched from a blobstore (local directory, S3,
// MinIO), transparently decompressed by extension (.zst, .lz4).
//
// # Custom Bounds
//
// Additional pruning functions can be supplied as long as they are
// admissible: they must never underestimate the number of cocktails still
// achievable from a state. See solver.BoundFunc.
//
//	relaxed := solver.BoundFunc("my-bound", func(ctx *solver.BoundContext) int {
//	    return int(ctx.Candidates.GetCardinality())
//	})
//	sol, _ := cocktails.Solve(ctx, p, cocktails.WithCustomBounds(relaxed))
package cocktails
