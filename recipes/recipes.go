package recipes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"feastly/db"
	"feastly/models"
	"feastly/mq"
	"feastly/pagination"
	"feastly/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PageSize is the fixed number of recipes per page in filtered and
// unfiltered page mode.
const PageSize = 15

var (
	ErrInvalidRequest = errors.New("exactly one of limit and page must be set")
	ErrNotFound       = errors.New("recipe not found")
)

// validateListParams enforces the list contract: exactly one of limit and
// page must be meaningfully set.
func validateListParams(limit, page int) error {
	if (limit > 0) == (page > 0) {
		return ErrInvalidRequest
	}
	return nil
}

// listRecipes returns the first limit records in scan order, unfiltered.
func listRecipes(ctx context.Context, coll *mongo.Collection, limit int) ([]models.Recipe, error) {
	return db.FindRecipes(ctx, coll, bson.M{}, options.Find().SetLimit(int64(limit)))
}

// listRecipePage returns one fixed-size page of the unfiltered collection.
func listRecipePage(ctx context.Context, coll *mongo.Collection, page int) (models.PaginatedRecipes, error) {
	return pageOf(ctx, coll, bson.M{}, page)
}

// filterRecipes compiles the filter set and returns one page of matches.
// The compiled predicate is independent of pagination; the page number only
// selects which slice of the match set comes back.
func filterRecipes(ctx context.Context, coll *mongo.Collection, filters models.Filters, page int) (models.PaginatedRecipes, error) {
	return pageOf(ctx, coll, BuildQuery(filters), page)
}

func pageOf(ctx context.Context, coll *mongo.Collection, query bson.M, page int) (models.PaginatedRecipes, error) {
	total, err := db.CountRecipes(ctx, coll, query)
	if err != nil {
		return models.PaginatedRecipes{}, err
	}

	pg := pagination.Paginate(int(total), PageSize, page)

	recipes, err := db.FindRecipes(ctx, coll, query,
		options.Find().SetSkip(int64(pg.Skip)).SetLimit(PageSize))
	if err != nil {
		return models.PaginatedRecipes{}, err
	}

	return models.PaginatedRecipes{
		TotalPages:  pg.TotalPages,
		CurrentPage: pg.CurrentPage,
		Recipes:     recipes,
	}, nil
}

func getRecipe(ctx context.Context, coll *mongo.Collection, id string) (models.Recipe, error) {
	recipe, err := db.FindRecipeByID(ctx, coll, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Recipe{}, ErrNotFound
	}
	return recipe, err
}

// GetRecipes lists or filters the catalog. A non-empty JSON body is a
// filter set and selects filtered page mode; otherwise exactly one of the
// limit and page query parameters picks flat or paginated listing.
func GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	limit := utils.ParseIntParam(r, "limit")
	page := utils.ParseIntParam(r, "page")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if len(bytes.TrimSpace(body)) > 0 {
		var filters models.Filters
		if err := json.Unmarshal(body, &filters); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "malformed filters")
			return
		}
		result, err := filterRecipes(ctx, db.RecipeCollection, filters, page)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "failed to filter recipes")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, result)
		return
	}

	if err := validateListParams(limit, page); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if limit > 0 {
		recipes, err := listRecipes(ctx, db.RecipeCollection, limit)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "failed to list recipes")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, recipes)
		return
	}

	result, err := listRecipePage(ctx, db.RecipeCollection, page)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to list recipes")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GetRecipe does a single lookup by external id.
func GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipe, err := getRecipe(r.Context(), db.RecipeCollection, ps.ByName("id"))
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "recipe not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch recipe")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

// CreateRecipe upserts a caller-supplied record keyed on its external id.
func CreateRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		Recipe models.Recipe `json:"recipe"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "malformed recipe payload")
		return
	}
	if payload.Recipe.RecipeID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "recipe id is required")
		return
	}

	if err := db.UpsertRecipe(r.Context(), db.RecipeCollection, payload.Recipe); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to store recipe")
		return
	}

	go mq.Emit(context.Background(), "recipe-created", mq.Event{
		EntityType: "recipe", EntityID: payload.Recipe.RecipeID, Action: "create",
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"status": "created", "id": payload.Recipe.RecipeID})
}

// UpdateRecipe merges the fields listed in the body into the stored record.
func UpdateRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "malformed update payload")
		return
	}
	// identity is immutable
	delete(fields, "_id")
	delete(fields, "id")
	if len(fields) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	if err := db.UpdateRecipeFields(r.Context(), db.RecipeCollection, id, bson.M(fields)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update recipe")
		return
	}

	go mq.Emit(context.Background(), "recipe-updated", mq.Event{
		EntityType: "recipe", EntityID: id, Action: "update",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "updated"})
}

// DeleteRecipe removes a record by external id.
func DeleteRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := db.DeleteRecipeByID(r.Context(), db.RecipeCollection, id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to delete recipe")
		return
	}

	go mq.Emit(context.Background(), "recipe-deleted", mq.Event{
		EntityType: "recipe", EntityID: id, Action: "delete",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}
