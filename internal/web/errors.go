package web

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/openlobby/olapp/internal/graphql"
	"github.com/openlobby/olapp/internal/service"
	"github.com/openlobby/olapp/templates"
)

// handleError maps service failures onto responses the way the original
// error middleware did: unknown tokens clear the session, missing nodes get
// a 404 page, an unreachable API a 503. Everything else is a plain 500.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, graphql.ErrNotFound):
		h.notFound(w, r)

	case errors.Is(err, graphql.ErrServiceUnavailable):
		log.Error().Err(err).Msg("api unreachable")
		w.WriteHeader(http.StatusServiceUnavailable)
		templates.Render(w, "503", templates.PageData{Title: "Service unavailable"})

	case errors.Is(err, graphql.ErrInvalidToken):
		session := h.SessionManager.Load(r)
		session.Destroy(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)

	case errors.Is(err, service.ErrUnauthorized):
		http.Redirect(w, r, LoginRoute, http.StatusSeeOther)

	default:
		var gqlErr *graphql.Error
		if errors.As(err, &gqlErr) {
			log.Error().Interface("errors", gqlErr.Errors).Msg("graphql error")
		} else {
			log.Error().Err(err).Msg("request failed")
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, "404", templates.PageData{Title: "Not found"})
}
