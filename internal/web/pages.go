package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/openlobby/olapp/internal/pagination"
)

// pageParam reads the 1-based page number from the p query parameter.
func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("p")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("bad page parameter %q", raw)
	}
	return page, nil
}

func totalPages(totalCount, perPage int) int {
	return (totalCount + perPage - 1) / perPage
}

// queryPages builds one descriptor per page as basePath plus query string,
// carrying over any extra parameters (the search query, the sort key).
func queryPages(basePath string, params url.Values, page, total int) []pagination.PageDescriptor {
	descriptors := make([]pagination.PageDescriptor, total)
	for i := range descriptors {
		num := i + 1
		qs := url.Values{}
		for k, vs := range params {
			qs[k] = vs
		}
		qs.Set("p", strconv.Itoa(num))
		descriptors[i] = pagination.PageDescriptor{
			Num:    num,
			URL:    basePath + "?" + qs.Encode(),
			Active: num == page,
		}
	}
	return descriptors
}

// pathPages builds one descriptor per page as a path segment, the first
// page without one: /author/{id}, /author/{id}/2, ...
func pathPages(basePath string, page, total int) []pagination.PageDescriptor {
	descriptors := make([]pagination.PageDescriptor, total)
	for i := range descriptors {
		num := i + 1
		u := basePath
		if num > 1 {
			u = fmt.Sprintf("%s/%d", basePath, num)
		}
		descriptors[i] = pagination.PageDescriptor{
			Num:    num,
			URL:    u,
			Active: num == page,
		}
	}
	return descriptors
}
