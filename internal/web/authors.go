package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/openlobby/olapp/internal/config"
	"github.com/openlobby/olapp/internal/domain"
	"github.com/openlobby/olapp/internal/pagination"
	"github.com/openlobby/olapp/templates"
)

// Authors renders the author listing with its sort variants.
func Authors(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		page, err := pageParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		sortKey := r.URL.Query().Get("sort")
		sort := authorSort(sortKey)

		authors, viewer, err := h.service.GetAuthors(ctx, page, sort, GetToken(ctx))
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		total := totalPages(authors.TotalCount, config.AuthorsPerPage)
		if page > total && page != 1 {
			h.notFound(w, r)
			return
		}

		params := url.Values{}
		if sortKey != "" {
			params.Set("sort", sortKey)
		}
		info := pagination.Compute(page, queryPages("/authors", params, page, total), total)

		templates.Render(w, "authors", templates.PageData{
			Title:    "Authors",
			Viewer:   viewer,
			Authors:  authors.Authors,
			PageInfo: &info,
		})
	}
}

// Author renders one author and a page of their reports.
func Author(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		page := 1
		if raw := chi.URLParam(r, "page"); raw != "" {
			var err error
			page, err = strconv.Atoi(raw)
			if err != nil || page < 1 {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
		}

		author, reports, viewer, err := h.service.GetAuthor(ctx, id, page, GetToken(ctx))
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		total := totalPages(reports.TotalCount, config.ReportsPerPage)
		if page > total && page != 1 {
			h.notFound(w, r)
			return
		}

		info := pagination.Compute(page, pathPages("/author/"+id, page, total), total)

		templates.Render(w, "author", templates.PageData{
			Title:        author.FirstName + " " + author.LastName,
			Viewer:       viewer,
			Author:       &author,
			Reports:      reports.Reports,
			TotalReports: reports.TotalCount,
			PageInfo:     &info,
		})
	}
}

func authorSort(key string) domain.AuthorSort {
	switch key {
	case "-name":
		return domain.SortLastNameReversed
	case "reports":
		return domain.SortTotalReports
	default:
		return domain.SortLastName
	}
}
