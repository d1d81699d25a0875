package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"feastly/db"
	"feastly/models"
	"feastly/mq"
	"feastly/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetFeed lists the photo feed. Limit mode returns a flat newest-first
// slice of posts; page mode buckets posts by calendar day and paginates the
// buckets. Exactly one of limit and page must be set.
func GetFeed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	limit := utils.ParseIntParam(r, "limit")
	page := utils.ParseIntParam(r, "page")

	if (limit > 0) == (page > 0) {
		utils.RespondWithError(w, http.StatusBadRequest, "exactly one of limit and page must be set")
		return
	}

	sortOrder := bson.D{{Key: "timestamp", Value: -1}}

	if limit > 0 {
		posts, err := db.FindPosts(ctx, db.PostsCollection, bson.M{},
			options.Find().SetSort(sortOrder).SetLimit(int64(limit)))
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch posts")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "data": posts})
		return
	}

	posts, err := db.FindPosts(ctx, db.PostsCollection, bson.M{},
		options.Find().SetSort(sortOrder))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch posts")
		return
	}

	result := bucketPage(posts, BucketPageSize, page)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "data": result})
}

// GetPost fetches one post by id.
func GetPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	post, err := db.FindPostByID(r.Context(), db.PostsCollection, ps.ByName("postid"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusNotFound, "post not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to fetch post")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "data": post})
}

// CreatePost stores a feed entry. Missing id and timestamp are filled in
// server-side.
func CreatePost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "malformed post payload")
		return
	}

	if post.PostID == "" {
		post.PostID = utils.GetUUID()
	}
	if post.Timestamp == "" {
		post.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	if err := db.InsertPost(r.Context(), db.PostsCollection, post); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to store post")
		return
	}

	go mq.Emit(context.Background(), "post-created", mq.Event{
		EntityType: "feedpost", EntityID: post.PostID, Action: "create",
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true, "data": post})
}
