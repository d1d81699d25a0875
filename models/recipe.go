package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Ingredient struct {
	Name   string  `json:"name" bson:"name"`
	Amount float64 `json:"amount" bson:"amount"`
	Unit   string  `json:"unit" bson:"unit"`
}

type Nutrient struct {
	Name   string  `json:"name" bson:"name"`
	Amount float64 `json:"amount" bson:"amount"`
	Unit   string  `json:"unit" bson:"unit"`
}

type Property struct {
	Name   string  `json:"name" bson:"name"`
	Amount float64 `json:"amount" bson:"amount"`
}

type Nutrition struct {
	Nutrients  []Nutrient `json:"nutrients" bson:"nutrients"`
	Properties []Property `json:"properties" bson:"properties"`
}

type Step struct {
	Number int64  `json:"number" bson:"number"`
	Step   string `json:"step" bson:"step"`
}

// Recipe is the stored catalog record. RecipeID is the external Spoonacular
// id; re-ingesting the same recipe upserts on it and never duplicates.
type Recipe struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	RecipeID       string             `bson:"id" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Summary        string             `bson:"summary" json:"summary"`
	Image          string             `bson:"image" json:"image"`
	Vegetarian     bool               `bson:"vegetarian" json:"vegetarian"`
	Vegan          bool               `bson:"vegan" json:"vegan"`
	GlutenFree     bool               `bson:"glutenFree" json:"glutenFree"`
	DairyFree      bool               `bson:"dairyFree" json:"dairyFree"`
	ReadyInMinutes int64              `bson:"readyInMinutes" json:"readyInMinutes"`
	Servings       int64              `bson:"servings" json:"servings"`
	Ingredients    []Ingredient       `bson:"ingredients" json:"ingredients"`
	Nutrition      Nutrition          `bson:"nutrition" json:"nutrition"`
	Cuisines       []string           `bson:"cuisines" json:"cuisines"`
	DishTypes      []string           `bson:"dishTypes" json:"dishTypes"`
	Diets          []string           `bson:"diets" json:"diets"`
	Instructions   []Step             `bson:"instructions" json:"instructions"`
}
