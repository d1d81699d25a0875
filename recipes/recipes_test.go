package recipes

import "testing"

func TestValidateListParams(t *testing.T) {
	cases := []struct {
		name    string
		limit   int
		page    int
		wantErr bool
	}{
		{"neither set", 0, 0, true},
		{"both set", 3, 2, true},
		{"limit only", 3, 0, false},
		{"page only", 0, 2, false},
	}

	for _, tc := range cases {
		err := validateListParams(tc.limit, tc.page)
		if tc.wantErr && err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
	}
}
