package recipe

import (
	"fmt"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

// IngredientLine renders an ingredient the way the detail view lists it.
func IngredientLine(ing domain.Ingredient) string {
	return fmt.Sprintf(" - %d %s of %s (%d calories, Food Group: %s)",
		ing.Quantity, ing.Unit, ing.Name, ing.Calories, ing.FoodGroup)
}

// Detail renders the full view of a recipe, one console line per entry.
// Steps are numbered from 1 in entry order.
func Detail(r *domain.Recipe) []string {
	lines := make([]string, 0, len(r.Ingredients)+len(r.Steps)+3)
	lines = append(lines, "Recipe Name: "+r.Name, "Ingredients:")
	for _, ing := range r.Ingredients {
		lines = append(lines, IngredientLine(ing))
	}
	lines = append(lines, "Steps:")
	for i, step := range r.Steps {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
	}
	return lines
}

// ListingLine renders one entry of the alphabetical recipe listing.
func ListingLine(name string) string {
	return "Recipe: " + name
}
