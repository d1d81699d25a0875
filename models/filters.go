package models

// Filters is the sparse query specification for the recipe catalog. Every
// field is always present on the wire; a zero/empty/false value means the
// constraint is inactive rather than "unknown".
type Filters struct {
	Query            string   `json:"query"`
	Diets            []string `json:"diets"`
	Cuisines         []string `json:"cuisines"`
	DishTypes        []string `json:"dishTypes"`
	MinServings      int64    `json:"minServings"`
	MaxReadyTime     float64  `json:"maxReadyTime"`
	MaxCalories      float64  `json:"maxCalories"`
	MaxFats          float64  `json:"maxFats"`
	MaxCarbs         float64  `json:"maxCarbs"`
	MaxGlycemicIndex float64  `json:"maxGlycemicIndex"`
	Healthy          bool     `json:"healthy"`
}
