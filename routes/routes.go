package routes

import (
	"feastly/auth"
	"feastly/feed"
	"feastly/middleware"
	"feastly/ratelim"
	"feastly/recipes"

	"github.com/julienschmidt/httprouter"
)

func AddRecipeRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/recipes", rateLimiter.Limit(middleware.Authenticate(recipes.GetRecipes)))
	router.GET("/api/recipes/recipe/:id", rateLimiter.Limit(middleware.Authenticate(recipes.GetRecipe)))
	router.POST("/api/recipes/recipe", middleware.Authenticate(recipes.CreateRecipe))
	router.PUT("/api/recipes/recipe/:id", middleware.Authenticate(recipes.UpdateRecipe))
	router.DELETE("/api/recipes/recipe/:id", middleware.Authenticate(recipes.DeleteRecipe))
}

func AddFeedRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/feed/feed", middleware.Authenticate(feed.GetFeed))
	router.GET("/api/feed/post/:postid", rateLimiter.Limit(middleware.Authenticate(feed.GetPost)))
	router.POST("/api/feed/post", rateLimiter.Limit(middleware.Authenticate(feed.CreatePost)))
}

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/token", rateLimiter.Limit(auth.GetToken))
}
