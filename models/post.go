package models

// Post is one photo-feed entry. Timestamp is ISO-8601; its date portion is
// the bucket key when the feed is listed in page mode.
type Post struct {
	PostID     string `bson:"postid" json:"id"`
	LowResURL  string `bson:"lowResUrl" json:"lowResUrl"`
	HighResURL string `bson:"highResUrl" json:"highResUrl"`
	Caption    string `bson:"caption" json:"caption"`
	Permalink  string `bson:"permalink" json:"permalink"`
	Timestamp  string `bson:"timestamp" json:"timestamp"`
}

// GroupedPosts holds every post of one calendar day, in the order the posts
// arrived.
type GroupedPosts struct {
	Date  string `json:"date"`
	Items []Post `json:"items"`
}

type PaginatedRecipes struct {
	TotalPages  int      `json:"totalPages"`
	CurrentPage int      `json:"currentPage"`
	Recipes     []Recipe `json:"recipes"`
}

type PaginatedFeed struct {
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Groups      []GroupedPosts `json:"groups"`
}
