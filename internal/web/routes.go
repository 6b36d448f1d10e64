package web

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	r.Use(SessionMiddleware(h))

	r.Get("/", Index(h))
	r.Get("/report/{id}", Report(h))

	r.Get("/authors", Authors(h))
	r.Get("/author/{id}", Author(h))
	r.Get("/author/{id}/{page}", Author(h))

	r.Route(LoginRoute, func(r chi.Router) {
		r.Get("/", GetLogin(h))
		r.Post("/", Login(h))
		r.Get("/shortcut/{id}", LoginByShortcut(h))
		r.Get("/redirect", LoginRedirect(h))
	})
	r.Get("/logout", Logout(h))
	r.Get(AccountRoute, Account(h))

	r.Route("/report-new", func(r chi.Router) {
		r.Get("/", NewReport(h))
		r.Post("/", SubmitReport(h))
	})
	r.Route("/report-edit/{id}", func(r chi.Router) {
		r.Get("/", EditReport(h))
		r.Post("/", UpdateReport(h))
	})

	h.MountStaticRoutes(r)
}

func (h *Handler) MountStaticRoutes(r chi.Router) {
	wd, _ := os.Getwd()
	wd = filepath.Join(wd, h.Config.StaticDir)
	f := os.DirFS(wd)

	fileServer := http.FileServer(http.FS(f))
	r.Handle("/static/{name}", http.StripPrefix(
		"/static/",
		fileServer,
	))
}
