package feed

import (
	"sort"
	"strings"

	"feastly/models"
	"feastly/pagination"
)

// BucketPageSize is the fixed number of day buckets per feed page.
const BucketPageSize = 5

// groupByDate buckets posts by the calendar-date portion of their timestamp
// (everything before the 'T'). Inside a bucket the input order is kept;
// buckets themselves come back most recent day first.
func groupByDate(posts []models.Post) []models.GroupedPosts {
	index := make(map[string]int)
	var groups []models.GroupedPosts

	for _, post := range posts {
		date, _, _ := strings.Cut(post.Timestamp, "T")
		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, models.GroupedPosts{Date: date})
		}
		groups[i].Items = append(groups[i].Items, post)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})
	return groups
}

// bucketPage paginates day buckets, not posts: a page holds up to pageSize
// whole days regardless of how many posts each day carries. Zero posts mean
// zero buckets but still one (empty) page.
func bucketPage(posts []models.Post, pageSize, requestedPage int) models.PaginatedFeed {
	groups := groupByDate(posts)
	pg := pagination.Paginate(len(groups), pageSize, requestedPage)

	start := pg.Skip
	if start > len(groups) {
		start = len(groups)
	}
	end := start + pageSize
	if end > len(groups) {
		end = len(groups)
	}

	page := groups[start:end]
	if len(page) == 0 {
		page = []models.GroupedPosts{}
	}

	return models.PaginatedFeed{
		TotalPages:  pg.TotalPages,
		CurrentPage: pg.CurrentPage,
		Groups:      page,
	}
}
