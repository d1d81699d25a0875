package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"feastly/db"
	"feastly/models"
	"feastly/mq"

	"go.mongodb.org/mongo-driver/mongo"
)

const DefaultBaseURL = "https://api.spoonacular.com"

// Search terms queried on every ingestion pass.
var searchQueries = []string{
	"pasta", "mushroom", "stew", "sandwich", "noodles",
	"soup", "shake", "smoothie", "sweet", "maggi",
}

// Fetcher pulls recipe batches from the Spoonacular API.
type Fetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewFetcher(apiKey string) *Fetcher {
	return &Fetcher{
		BaseURL: DefaultBaseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchRecipes runs one search per query term and collects the converted
// results. A failing term is logged and skipped; it never aborts the rest
// of the pass.
func (f *Fetcher) FetchRecipes(ctx context.Context) []models.Recipe {
	var recipes []models.Recipe
	for _, query := range searchQueries {
		batch, err := f.search(ctx, query)
		if err != nil {
			log.Printf("ingest: query %q failed: %v", query, err)
			continue
		}
		recipes = append(recipes, batch...)
	}
	return recipes
}

func (f *Fetcher) search(ctx context.Context, query string) ([]models.Recipe, error) {
	endpoint := fmt.Sprintf(
		"%s/recipes/complexSearch?query=%s&instructionsRequired=true&addRecipeInstructions=true&addRecipeNutrition=true&number=10&fillIngredients=true&apiKey=%s",
		f.BaseURL, url.QueryEscape(query), f.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	recipes := make([]models.Recipe, 0, len(payload.Results))
	for _, result := range payload.Results {
		recipes = append(recipes, result.ToRecipe())
	}
	return recipes, nil
}

// StoreRecipes upserts each fetched record keyed on its external id. A
// single failed upsert is logged and the rest still go through.
func StoreRecipes(ctx context.Context, coll *mongo.Collection, recipes []models.Recipe) {
	for _, recipe := range recipes {
		if err := db.UpsertRecipe(ctx, coll, recipe); err != nil {
			log.Printf("ingest: upsert of recipe %s failed: %v", recipe.RecipeID, err)
		}
	}
}

// Run fetches and stores on a fixed interval until ctx is cancelled. The
// loop shares nothing with request handling beyond the upsert contract, so
// a slow or failing upstream never blocks reads.
func Run(ctx context.Context, fetcher *Fetcher, interval time.Duration) {
	log.Printf("ingest: refreshing every %v", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			recipes := fetcher.FetchRecipes(ctx)
			StoreRecipes(ctx, db.RecipeCollection, recipes)
			log.Printf("ingest: pass complete, %d recipes upserted", len(recipes))

			mq.Emit(ctx, "recipes-ingested", mq.Event{
				EntityType: "recipe", Action: "ingest",
			})
		}
	}
}
