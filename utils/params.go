package utils

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// ParseIntParam returns the named query parameter as an int. Absent,
// malformed, or negative values all read as 0, the "not set" sentinel.
func ParseIntParam(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func GetUUID() string {
	return uuid.New().String()
}
