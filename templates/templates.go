// Package templates renders the HTML pages. Rendering is deliberately thin:
// handlers hand over fully-normalized data and a pager, nothing here talks
// to the API.
package templates

import (
	"embed"
	"html/template"
	"io"

	"github.com/openlobby/olapp/internal/domain"
	"github.com/openlobby/olapp/internal/pagination"
	"github.com/openlobby/olapp/internal/validate"
)

//go:embed *.html
var files embed.FS

var pages = template.Must(template.New("layout").Funcs(template.FuncMap{
	"safeHTML": func(s string) template.HTML { return template.HTML(s) },
}).ParseFS(files, "*.html"))

// PageData is the envelope every page receives. Viewer is nil when the
// visitor is anonymous.
type PageData struct {
	Title        string
	Viewer       *domain.Author
	SavedMessage bool
	PageInfo     *pagination.PageInfo

	Query        string
	Reports      []domain.Report
	TotalReports int
	Report       *domain.Report
	RevisionDiff string
	Authors      []domain.Author
	Author       *domain.Author
	Shortcuts    []domain.LoginShortcut
	Drafts       []domain.Report

	Form        *validate.ReportForm
	FormErrors  validate.FieldErrors
	FieldClass  map[string]string
	OpenIDUID   string
	OpenIDError string
}

func Render(w io.Writer, name string, data PageData) error {
	return pages.ExecuteTemplate(w, name, data)
}
