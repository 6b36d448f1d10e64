package web

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/openlobby/olapp/internal/domain"
	"github.com/openlobby/olapp/internal/service"
	"github.com/openlobby/olapp/internal/validate"
	"github.com/openlobby/olapp/templates"
)

// GetLogin renders the login page with the available shortcuts.
func GetLogin(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		shortcuts, viewer, err := h.service.GetLoginShortcuts(ctx, GetToken(ctx))
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		h.renderLogin(w, viewer, shortcuts, "", "")
	}
}

// Login starts the OpenID flow for a typed-in identifier and redirects the
// user to the returned authorization URL.
func Login(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		r.ParseForm()

		openidUID := validate.StripTags(r.Form.Get("openid_uid"))
		if openidUID == "" {
			shortcuts, viewer, err := h.service.GetLoginShortcuts(ctx, GetToken(ctx))
			if err != nil {
				h.handleError(w, r, err)
				return
			}
			h.renderLogin(w, viewer, shortcuts, openidUID, "OpenID identifier is required")
			return
		}

		authorizationURL, err := h.service.Login(ctx, openidUID, h.redirectURI())
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		http.Redirect(w, r, authorizationURL, http.StatusSeeOther)
	}
}

// LoginByShortcut starts the OpenID flow for one of the preconfigured
// identity providers.
func LoginByShortcut(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		shortcutID := chi.URLParam(r, "id")

		authorizationURL, err := h.service.LoginByShortcut(ctx, shortcutID, h.redirectURI())
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		http.Redirect(w, r, authorizationURL, http.StatusSeeOther)
	}
}

// LoginRedirect lands the user coming back from the identity provider and
// stores the issued token in the session.
func LoginRedirect(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" || TokenTTL(token) <= 0 {
			log.Warn().Msg("login redirect without a usable token")
			http.Redirect(w, r, LoginRoute, http.StatusSeeOther)
			return
		}

		session := h.SessionManager.Load(r)
		if err := session.PutString(w, TokenSessionKey, token); err != nil {
			log.Error().Err(err).Msg("failed to store session")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, AccountRoute, http.StatusSeeOther)
	}
}

// Logout tells the API to drop the token and clears the session either way.
func Logout(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if token := GetToken(ctx); token != "" {
			if _, err := h.service.Logout(ctx, token); err != nil {
				log.Warn().Err(err).Msg("logout mutation failed")
			}
		}

		session := h.SessionManager.Load(r)
		session.Destroy(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Account renders the viewer's own record.
func Account(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		viewer, err := h.service.GetViewer(ctx, GetToken(ctx))
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		if viewer == nil {
			h.handleError(w, r, service.ErrUnauthorized)
			return
		}

		templates.Render(w, "account", templates.PageData{
			Title:  "Account",
			Viewer: viewer,
		})
	}
}

func (h *Handler) redirectURI() string {
	u, err := url.JoinPath(h.Config.AppURL, "login", "redirect")
	if err != nil {
		return h.Config.AppURL + "/login/redirect"
	}
	return u
}

func (h *Handler) renderLogin(w http.ResponseWriter, viewer *domain.Author, shortcuts []domain.LoginShortcut, openidUID, openidError string) {
	templates.Render(w, "login", templates.PageData{
		Title:       "Login",
		Viewer:      viewer,
		Shortcuts:   shortcuts,
		OpenIDUID:   openidUID,
		OpenIDError: openidError,
	})
}
