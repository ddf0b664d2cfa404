package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().Bold(true)

	labelStyle = lipgloss.NewStyle().Faint(true)

	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func formatResult(res result, format string) (string, error) {
	switch format {
	case "table":
		return formatTable(res), nil
	case "json":
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	case "simple":
		return formatSimple(res), nil
	default:
		return "", fmt.Errorf("unknown format %q (available: table, json, simple)", format)
	}
}

func formatTable(res result) string {
	var b strings.Builder

	summary := []string{
		titleStyle.Render("Cocktail Optimizer"),
		"",
		summaryRow("Target ingredients", fmt.Sprintf("%d", res.TargetIngredients)),
		summaryRow("Search iterations", fmt.Sprintf("%d", res.SearchIterations)),
		summaryRow("Execution time", fmt.Sprintf("%.2f ms", res.ExecutionTimeMS)),
		summaryRow("Search exhausted", fmt.Sprintf("%t", res.Exhausted)),
		summaryRow("Makeable cocktails", fmt.Sprintf("%d", res.OptimalCocktails)),
		summaryRow("Ingredients used", fmt.Sprintf("%d", res.IngredientsUsed)),
	}
	b.WriteString(boxStyle.Render(strings.Join(summary, "\n")))
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Ingredients to buy"))
	b.WriteString("\n")
	for i, name := range res.Ingredients {
		fmt.Fprintf(&b, "%3d. %s\n", i+1, name)
	}

	b.WriteString("\n")
	b.WriteString(headingStyle.Render("Cocktails you can make"))
	b.WriteString("\n")
	for i, name := range res.Cocktails {
		fmt.Fprintf(&b, "%3d. %s\n", i+1, name)
	}

	return strings.TrimRight(b.String(), "\n")
}

func summaryRow(label, value string) string {
	return fmt.Sprintf("%s %s", labelStyle.Render(label+":"), value)
}

func formatSimple(res result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "target_ingredients=%d\n", res.TargetIngredients)
	fmt.Fprintf(&b, "search_iterations=%d\n", res.SearchIterations)
	fmt.Fprintf(&b, "execution_time_ms=%.2f\n", res.ExecutionTimeMS)
	fmt.Fprintf(&b, "exhausted=%t\n", res.Exhausted)
	fmt.Fprintf(&b, "optimal_cocktails=%d\n", res.OptimalCocktails)
	fmt.Fprintf(&b, "ingredients_used=%d\n", res.IngredientsUsed)
	fmt.Fprintf(&b, "ingredients=%s\n", strings.Join(res.Ingredients, ", "))
	fmt.Fprintf(&b, "cocktails=%s", strings.Join(res.Cocktails, ", "))

	return b.String()
}
