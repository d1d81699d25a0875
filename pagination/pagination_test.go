package pagination

import "testing"

func TestPaginateEmptyCollection(t *testing.T) {
	got := Paginate(0, 15, 7)
	want := Page{Skip: 0, TotalPages: 1, CurrentPage: 1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestPaginateClampsPastLastPage(t *testing.T) {
	got := Paginate(37, 15, 10)
	want := Page{Skip: 30, TotalPages: 3, CurrentPage: 3}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestPaginateClampsBelowFirstPage(t *testing.T) {
	got := Paginate(37, 15, 0)
	want := Page{Skip: 0, TotalPages: 3, CurrentPage: 1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestPaginateExactMultiple(t *testing.T) {
	got := Paginate(30, 15, 2)
	want := Page{Skip: 15, TotalPages: 2, CurrentPage: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestPaginateInvariants(t *testing.T) {
	for total := 0; total <= 100; total++ {
		for size := 1; size <= 20; size++ {
			for page := -1; page <= 10; page++ {
				got := Paginate(total, size, page)
				if got.TotalPages < 1 {
					t.Fatalf("Paginate(%d, %d, %d): totalPages %d below 1", total, size, page, got.TotalPages)
				}
				if got.CurrentPage < 1 || got.CurrentPage > got.TotalPages {
					t.Fatalf("Paginate(%d, %d, %d): currentPage %d outside [1, %d]", total, size, page, got.CurrentPage, got.TotalPages)
				}
				if got.Skip != (got.CurrentPage-1)*size {
					t.Fatalf("Paginate(%d, %d, %d): skip %d inconsistent with page %d", total, size, page, got.Skip, got.CurrentPage)
				}
			}
		}
	}
}
