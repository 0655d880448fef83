package recipe

import (
	"context"
	_ "embed"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

//go:embed samples.yaml
var samplesRaw []byte

type sampleIngredient struct {
	Name      string `yaml:"name"`
	Quantity  int    `yaml:"quantity"`
	Unit      string `yaml:"unit"`
	Calories  int    `yaml:"calories"`
	FoodGroup string `yaml:"food_group"`
}

// Validate validates a sample ingredient. Value receiver so that
// validation.Field can walk a []sampleIngredient.
func (i sampleIngredient) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required),
		validation.Field(&i.Quantity, validation.Min(0)),
		validation.Field(&i.Calories, validation.Min(0)),
		validation.Field(&i.FoodGroup, validation.Required),
	)
}

type sampleRecipe struct {
	Name        string             `yaml:"name"`
	Ingredients []sampleIngredient `yaml:"ingredients"`
	Steps       []string           `yaml:"steps"`
}

// Validate validates a sample recipe and each of its ingredients.
func (r *sampleRecipe) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Ingredients),
		validation.Field(&r.Steps, validation.Each(validation.Required)),
	)
}

// ParseSamples decodes and validates a YAML list of recipes.
func ParseSamples(data []byte) ([]*domain.Recipe, error) {
	var raw []sampleRecipe
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding sample recipes: %w", err)
	}

	out := make([]*domain.Recipe, 0, len(raw))
	for i := range raw {
		sr := &raw[i]
		if err := sr.Validate(); err != nil {
			return nil, fmt.Errorf("sample recipe %d (%q): %w", i+1, sr.Name, err)
		}
		r := &domain.Recipe{Name: sr.Name, Steps: sr.Steps}
		for _, si := range sr.Ingredients {
			r.Ingredients = append(r.Ingredients, domain.Ingredient{
				Name:      si.Name,
				Quantity:  si.Quantity,
				Unit:      si.Unit,
				Calories:  si.Calories,
				FoodGroup: si.FoodGroup,
			})
		}
		out = append(out, r)
	}
	return out, nil
}

// Samples returns the built-in recipes.
func Samples() ([]*domain.Recipe, error) {
	return ParseSamples(samplesRaw)
}

// Seed adds the built-in recipes to store.
func Seed(ctx context.Context, store domain.RecipeStore, log *logger.Logger) error {
	recipes, err := Samples()
	if err != nil {
		return err
	}
	for _, r := range recipes {
		if err := store.Add(ctx, r); err != nil {
			return fmt.Errorf("seeding %q: %w", r.Name, err)
		}
	}
	log.Info("seeded %d sample recipes", len(recipes))
	return nil
}
