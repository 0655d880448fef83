package recipe

import (
	"testing"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

func TestDetail(t *testing.T) {
	r := &domain.Recipe{
		Name: "Toast",
		Ingredients: []domain.Ingredient{
			{Name: "Bread", Quantity: 2, Unit: "slices", Calories: 150, FoodGroup: "Grain"},
			{Name: "Butter", Quantity: 1, Unit: "teaspoon", Calories: 34, FoodGroup: "Fat"},
		},
		Steps: []string{"Toast the bread", "Spread the butter"},
	}

	want := []string{
		"Recipe Name: Toast",
		"Ingredients:",
		" - 2 slices of Bread (150 calories, Food Group: Grain)",
		" - 1 teaspoon of Butter (34 calories, Food Group: Fat)",
		"Steps:",
		"1. Toast the bread",
		"2. Spread the butter",
	}

	got := Detail(r)
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDetailEmptyRecipe(t *testing.T) {
	got := Detail(&domain.Recipe{})
	want := []string{"Recipe Name: ", "Ingredients:", "Steps:"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
