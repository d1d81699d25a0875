package feed

import (
	"testing"

	"feastly/models"
)

func TestGroupByDatePreservesInsertionOrder(t *testing.T) {
	posts := []models.Post{
		{PostID: "A", Timestamp: "2024-03-01T10:00:00Z"},
		{PostID: "B", Timestamp: "2024-03-01T11:00:00Z"},
	}

	groups := groupByDate(posts)
	if len(groups) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(groups))
	}
	if groups[0].Items[0].PostID != "A" || groups[0].Items[1].PostID != "B" {
		t.Fatalf("in-bucket order not preserved: %+v", groups[0].Items)
	}
}

func TestGroupByDateOrdersBucketsDescending(t *testing.T) {
	posts := []models.Post{
		{PostID: "old", Timestamp: "2024-01-01T09:00:00Z"},
		{PostID: "new", Timestamp: "2024-01-02T09:00:00Z"},
	}

	groups := groupByDate(posts)
	if len(groups) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(groups))
	}
	if groups[0].Date != "2024-01-02" || groups[1].Date != "2024-01-01" {
		t.Fatalf("buckets not in descending date order: %q, %q", groups[0].Date, groups[1].Date)
	}
}

func TestBucketPageScenario(t *testing.T) {
	posts := []models.Post{
		{PostID: "A", Timestamp: "2024-03-01T10:00"},
		{PostID: "B", Timestamp: "2024-03-01T11:00"},
		{PostID: "C", Timestamp: "2024-02-28T09:00"},
	}

	result := bucketPage(posts, 5, 1)
	if result.TotalPages != 1 || result.CurrentPage != 1 {
		t.Fatalf("expected single page, got totalPages=%d currentPage=%d", result.TotalPages, result.CurrentPage)
	}
	if len(result.Groups) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(result.Groups))
	}

	first := result.Groups[0]
	if first.Date != "2024-03-01" || len(first.Items) != 2 ||
		first.Items[0].PostID != "A" || first.Items[1].PostID != "B" {
		t.Fatalf("unexpected first bucket: %+v", first)
	}

	second := result.Groups[1]
	if second.Date != "2024-02-28" || len(second.Items) != 1 || second.Items[0].PostID != "C" {
		t.Fatalf("unexpected second bucket: %+v", second)
	}
}

func TestBucketPageEmpty(t *testing.T) {
	result := bucketPage(nil, 5, 3)
	if result.TotalPages != 1 || result.CurrentPage != 1 {
		t.Fatalf("empty feed should still have one page, got totalPages=%d currentPage=%d", result.TotalPages, result.CurrentPage)
	}
	if len(result.Groups) != 0 {
		t.Fatalf("expected no buckets, got %d", len(result.Groups))
	}
}

func TestBucketPageCountsBucketsNotPosts(t *testing.T) {
	// 14 posts over 7 days: pagination must see 7 buckets, not 14 posts.
	var posts []models.Post
	days := []string{"01", "02", "03", "04", "05", "06", "07"}
	for _, day := range days {
		posts = append(posts,
			models.Post{PostID: "a" + day, Timestamp: "2024-05-" + day + "T08:00:00Z"},
			models.Post{PostID: "b" + day, Timestamp: "2024-05-" + day + "T09:00:00Z"},
		)
	}

	result := bucketPage(posts, 5, 2)
	if result.TotalPages != 2 {
		t.Fatalf("expected 2 pages of buckets, got %d", result.TotalPages)
	}
	if result.CurrentPage != 2 {
		t.Fatalf("expected currentPage 2, got %d", result.CurrentPage)
	}
	if len(result.Groups) != 2 {
		t.Fatalf("expected 2 buckets on the last page, got %d", len(result.Groups))
	}
	// descending order: page 2 holds the two oldest days
	if result.Groups[0].Date != "2024-05-02" || result.Groups[1].Date != "2024-05-01" {
		t.Fatalf("unexpected last page buckets: %q, %q", result.Groups[0].Date, result.Groups[1].Date)
	}
}
