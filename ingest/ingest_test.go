package ingest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestToRecipe(t *testing.T) {
	api := APIRecipe{
		ID:             715538,
		Title:          "Bruschetta Style Pork & Pasta",
		Summary:        "A quick dinner.",
		Image:          "https://img.example/715538.jpg",
		Vegetarian:     false,
		GlutenFree:     true,
		ReadyInMinutes: 35,
		Servings:       4,
		ExtendedIngredients: []APIIngredient{
			{Name: "pork", Amount: 1.5, Unit: "lb"},
		},
		Nutrition: APINutrition{
			Nutrients:  []APINutrient{{Name: "Calories", Amount: 521.3, Unit: "kcal"}},
			Properties: []APIProperty{{Name: "Nutrition Score", Amount: 71.2}},
		},
		Cuisines:  []string{"Mediterranean"},
		DishTypes: []string{"dinner"},
		Diets:     []string{"gluten free"},
		AnalyzedInstructions: []APIInstruction{
			{Steps: []APIStep{{Number: 1, Step: "Sear the pork."}}},
		},
	}

	recipe := api.ToRecipe()

	if recipe.RecipeID != "715538" {
		t.Fatalf("external id not stringified: %q", recipe.RecipeID)
	}
	if recipe.Title != api.Title || recipe.Servings != 4 || !recipe.GlutenFree {
		t.Fatalf("scalar fields not carried over: %+v", recipe)
	}
	if len(recipe.Ingredients) != 1 || recipe.Ingredients[0].Name != "pork" {
		t.Fatalf("ingredients not flattened: %+v", recipe.Ingredients)
	}
	if len(recipe.Nutrition.Nutrients) != 1 || recipe.Nutrition.Nutrients[0].Amount != 521.3 {
		t.Fatalf("nutrients not carried over: %+v", recipe.Nutrition)
	}
	if len(recipe.Nutrition.Properties) != 1 || recipe.Nutrition.Properties[0].Name != "Nutrition Score" {
		t.Fatalf("properties not carried over: %+v", recipe.Nutrition)
	}
	if len(recipe.Instructions) != 1 || recipe.Instructions[0].Step != "Sear the pork." {
		t.Fatalf("instructions not taken from the first block: %+v", recipe.Instructions)
	}
}

func TestToRecipeWithoutInstructions(t *testing.T) {
	recipe := APIRecipe{ID: 1, Title: "bare"}.ToRecipe()
	if len(recipe.Instructions) != 0 {
		t.Fatalf("expected no instructions, got %+v", recipe.Instructions)
	}
}

func TestFetchRecipesSkipsFailingQuery(t *testing.T) {
	// One search term fails upstream; the other nine must still come back.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		if query == "stew" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Query().Get("apiKey") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprintf(w, `{"results":[{"id":1,"title":%q}]}`, query)
	}))
	defer srv.Close()

	fetcher := &Fetcher{BaseURL: srv.URL, APIKey: "test-key", Client: srv.Client()}
	recipes := fetcher.FetchRecipes(context.Background())

	if len(recipes) != len(searchQueries)-1 {
		t.Fatalf("expected %d recipes, got %d", len(searchQueries)-1, len(recipes))
	}
	for _, recipe := range recipes {
		if recipe.Title == "stew" {
			t.Fatalf("failing query leaked a result: %+v", recipe)
		}
	}
}
