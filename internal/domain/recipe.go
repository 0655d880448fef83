// Package domain defines the core types and interfaces for the recipe book.
// All other packages depend on domain; domain depends on nothing.
package domain

// CalorieThreshold is the total above which a recipe triggers the
// calorie warning. A recipe at exactly the threshold does not.
const CalorieThreshold = 300

// Recipe is a named dish with its ingredients and preparation steps.
// Name is the lookup key but is not unique.
type Recipe struct {
	Name        string
	Ingredients []Ingredient
	Steps       []string
}

// Ingredient is a single component of a recipe. It has no identity
// beyond its position in the owning recipe.
type Ingredient struct {
	Name      string
	Quantity  int
	Unit      string
	Calories  int
	FoodGroup string
}

// TotalCalories sums the calories of every ingredient.
func (r *Recipe) TotalCalories() int {
	total := 0
	for _, ing := range r.Ingredients {
		total += ing.Calories
	}
	return total
}

// ExceedsCalorieThreshold reports whether the recipe is over CalorieThreshold.
func (r *Recipe) ExceedsCalorieThreshold() bool {
	return r.TotalCalories() > CalorieThreshold
}
