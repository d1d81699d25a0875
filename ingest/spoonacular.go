package ingest

import (
	"strconv"

	"feastly/models"
)

// APIRecipe mirrors one result of the Spoonacular complexSearch endpoint
// with ingredients and nutrition attached.
type APIRecipe struct {
	ID                   int64            `json:"id"`
	Title                string           `json:"title"`
	Summary              string           `json:"summary"`
	Image                string           `json:"image"`
	Vegetarian           bool             `json:"vegetarian"`
	Vegan                bool             `json:"vegan"`
	GlutenFree           bool             `json:"glutenFree"`
	DairyFree            bool             `json:"dairyFree"`
	ReadyInMinutes       int64            `json:"readyInMinutes"`
	Servings             int64            `json:"servings"`
	ExtendedIngredients  []APIIngredient  `json:"extendedIngredients"`
	Nutrition            APINutrition     `json:"nutrition"`
	Cuisines             []string         `json:"cuisines"`
	DishTypes            []string         `json:"dishTypes"`
	Diets                []string         `json:"diets"`
	AnalyzedInstructions []APIInstruction `json:"analyzedInstructions"`
}

type APIIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type APINutrition struct {
	Nutrients  []APINutrient `json:"nutrients"`
	Properties []APIProperty `json:"properties"`
}

type APINutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type APIProperty struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type APIInstruction struct {
	Steps []APIStep `json:"steps"`
}

type APIStep struct {
	Number int64  `json:"number"`
	Step   string `json:"step"`
}

type apiResponse struct {
	Results []APIRecipe `json:"results"`
}

// ToRecipe flattens an API result into the stored record shape. Only the
// first analyzed instruction block carries steps; a recipe without one gets
// an empty step list.
func (a APIRecipe) ToRecipe() models.Recipe {
	ingredients := make([]models.Ingredient, 0, len(a.ExtendedIngredients))
	for _, ing := range a.ExtendedIngredients {
		ingredients = append(ingredients, models.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	nutrients := make([]models.Nutrient, 0, len(a.Nutrition.Nutrients))
	for _, n := range a.Nutrition.Nutrients {
		nutrients = append(nutrients, models.Nutrient{
			Name:   n.Name,
			Amount: n.Amount,
			Unit:   n.Unit,
		})
	}

	properties := make([]models.Property, 0, len(a.Nutrition.Properties))
	for _, p := range a.Nutrition.Properties {
		properties = append(properties, models.Property{
			Name:   p.Name,
			Amount: p.Amount,
		})
	}

	var steps []models.Step
	if len(a.AnalyzedInstructions) > 0 {
		for _, s := range a.AnalyzedInstructions[0].Steps {
			steps = append(steps, models.Step{Number: s.Number, Step: s.Step})
		}
	}

	return models.Recipe{
		RecipeID:       strconv.FormatInt(a.ID, 10),
		Title:          a.Title,
		Summary:        a.Summary,
		Image:          a.Image,
		Vegetarian:     a.Vegetarian,
		Vegan:          a.Vegan,
		GlutenFree:     a.GlutenFree,
		DairyFree:      a.DairyFree,
		ReadyInMinutes: a.ReadyInMinutes,
		Servings:       a.Servings,
		Ingredients:    ingredients,
		Nutrition: models.Nutrition{
			Nutrients:  nutrients,
			Properties: properties,
		},
		Cuisines:     a.Cuisines,
		DishTypes:    a.DishTypes,
		Diets:        a.Diets,
		Instructions: steps,
	}
}
