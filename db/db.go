package db

import (
	"context"
	"os"

	"feastly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client           *mongo.Client
	RecipeCollection *mongo.Collection
	PostsCollection  *mongo.Collection
)

// Init connects to MongoDB and binds the collection handles.
func Init(ctx context.Context) error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetAppName("Feastly API"))
	if err != nil {
		return err
	}
	Client = client

	database := client.Database("Recipes")
	RecipeCollection = database.Collection("recipes")
	PostsCollection = database.Collection("posts")
	return nil
}

// UpsertRecipe writes a recipe keyed on its external id. Re-ingesting the
// same recipe overwrites the stored record instead of duplicating it.
func UpsertRecipe(ctx context.Context, coll *mongo.Collection, recipe models.Recipe) error {
	filter := bson.M{"id": recipe.RecipeID}
	update := bson.M{"$set": recipe}
	opts := options.Update().SetUpsert(true)

	_, err := coll.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindRecipeByID does a point lookup on the external id. Absence surfaces as
// mongo.ErrNoDocuments, distinct from a transport failure.
func FindRecipeByID(ctx context.Context, coll *mongo.Collection, id string) (models.Recipe, error) {
	var recipe models.Recipe
	err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&recipe)
	return recipe, err
}

func FindRecipes(ctx context.Context, coll *mongo.Collection, query bson.M, opts ...*options.FindOptions) ([]models.Recipe, error) {
	cursor, err := coll.Find(ctx, query, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recipes []models.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}

func CountRecipes(ctx context.Context, coll *mongo.Collection, query bson.M) (int64, error) {
	return coll.CountDocuments(ctx, query)
}

// UpdateRecipeFields merges the listed fields into the stored record. Only
// the named fields are replaced; everything else keeps its stored value.
func UpdateRecipeFields(ctx context.Context, coll *mongo.Collection, id string, fields bson.M) error {
	_, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	return err
}

func DeleteRecipeByID(ctx context.Context, coll *mongo.Collection, id string) error {
	_, err := coll.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func FindPosts(ctx context.Context, coll *mongo.Collection, query bson.M, opts ...*options.FindOptions) ([]models.Post, error) {
	cursor, err := coll.Find(ctx, query, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		posts = []models.Post{}
	}
	return posts, nil
}

func FindPostByID(ctx context.Context, coll *mongo.Collection, id string) (models.Post, error) {
	var post models.Post
	err := coll.FindOne(ctx, bson.M{"postid": id}).Decode(&post)
	return post, err
}

func InsertPost(ctx context.Context, coll *mongo.Collection, post models.Post) error {
	_, err := coll.InsertOne(ctx, post)
	return err
}
