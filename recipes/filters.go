package recipes

import (
	"feastly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Nutrient and property names the bounded filters test against.
const (
	nutrientCalories   = "Calories"
	nutrientFats       = "Fats"
	nutrientCarbs      = "Carbohydrates"
	propGlycemicIndex  = "Glycemic Index"
	propNutritionScore = "Nutrition Score"
)

// Minimum Nutrition Score a recipe needs to count as healthy.
const healthyScoreFloor = 60.0

// BuildQuery compiles a sparse filter set into a Mongo query document. Each
// field is tested against its inactive sentinel (empty string/slice, zero,
// false); every active field appends exactly one AND-ed clause. An
// all-sentinel filter set compiles to the empty query and matches everything.
func BuildQuery(f models.Filters) bson.M {
	var conds []bson.M

	if f.Query != "" {
		conds = append(conds, bson.M{"$or": []bson.M{
			{"title": bson.M{"$regex": f.Query, "$options": "i"}},
			{"summary": bson.M{"$regex": f.Query, "$options": "i"}},
		}})
	}
	if len(f.Diets) > 0 {
		conds = append(conds, bson.M{"diets": bson.M{"$in": f.Diets}})
	}
	if len(f.Cuisines) > 0 {
		conds = append(conds, bson.M{"cuisines": bson.M{"$in": f.Cuisines}})
	}
	if len(f.DishTypes) > 0 {
		conds = append(conds, bson.M{"dishTypes": bson.M{"$in": f.DishTypes}})
	}
	if f.MinServings > 0 {
		conds = append(conds, bson.M{"servings": bson.M{"$gte": f.MinServings}})
	}
	if f.MaxReadyTime > 0 {
		conds = append(conds, bson.M{"readyInMinutes": bson.M{"$lte": f.MaxReadyTime}})
	}
	if f.MaxCalories > 0 {
		conds = append(conds, nutrientMax(nutrientCalories, f.MaxCalories))
	}
	if f.MaxFats > 0 {
		conds = append(conds, nutrientMax(nutrientFats, f.MaxFats))
	}
	if f.MaxCarbs > 0 {
		conds = append(conds, nutrientMax(nutrientCarbs, f.MaxCarbs))
	}
	if f.MaxGlycemicIndex > 0 {
		conds = append(conds, propertyBound(propGlycemicIndex, "$lte", f.MaxGlycemicIndex))
	}
	if f.Healthy {
		conds = append(conds, propertyBound(propNutritionScore, "$gte", healthyScoreFloor))
	}

	if len(conds) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": conds}
}

// nutrientMax matches recipes with at least one nutrient of the given name
// whose amount does not exceed max. This is an existential test over the
// nutrient list, not a bound on every element.
func nutrientMax(name string, max float64) bson.M {
	return bson.M{"nutrition.nutrients": bson.M{"$elemMatch": bson.M{
		"name":   name,
		"amount": bson.M{"$lte": max},
	}}}
}

func propertyBound(name, op string, threshold float64) bson.M {
	return bson.M{"nutrition.properties": bson.M{"$elemMatch": bson.M{
		"name":   name,
		"amount": bson.M{op: threshold},
	}}}
}
