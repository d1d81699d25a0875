package pagination

// Page is the resolved position of one page inside a counted result set.
type Page struct {
	Skip        int
	TotalPages  int
	CurrentPage int
}

// Paginate turns a total count, a positive page size, and a requested page
// number into a clamped page position. An empty collection still has exactly
// one (empty) page, so TotalPages is never below 1 and CurrentPage always
// stays within [1, TotalPages]. Out-of-range requests are clamped, never
// rejected; whether clamping is caller-visible policy is the handler's call.
func Paginate(totalCount, pageSize, requestedPage int) Page {
	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	current := requestedPage
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	return Page{
		Skip:        (current - 1) * pageSize,
		TotalPages:  totalPages,
		CurrentPage: current,
	}
}
