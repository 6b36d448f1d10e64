package service

import (
	"context"
	"errors"

	"github.com/openlobby/olapp/internal/domain"
)

// ErrUnauthorized means a page that needs a logged-in viewer was requested
// anonymously. The web layer turns it into a login redirect.
var ErrUnauthorized = errors.New("login required")

// Service is everything the web layer asks of the lobbying API. Query
// methods also return the viewer so every page render knows who is logged
// in; a nil viewer means anonymous.
type Service interface {
	// SearchReports runs a full-text search over published reports. Page is
	// 1-based; the empty query lists everything in server order.
	SearchReports(ctx context.Context, query string, page int, token string) (domain.ReportPage, *domain.Author, error)
	// GetReport fetches one report with its revision history. Returns
	// graphql.ErrNotFound when the id does not resolve.
	GetReport(ctx context.Context, id, token string) (domain.Report, *domain.Author, error)
	// GetAuthor fetches an author together with one page of their reports.
	// The author's identity is denormalized onto each report.
	GetAuthor(ctx context.Context, id string, page int, token string) (domain.Author, domain.ReportPage, *domain.Author, error)
	GetAuthors(ctx context.Context, page int, sort domain.AuthorSort, token string) (domain.AuthorPage, *domain.Author, error)
	GetViewer(ctx context.Context, token string) (*domain.Author, error)
	GetLoginShortcuts(ctx context.Context, token string) ([]domain.LoginShortcut, *domain.Author, error)
	// GetReportDrafts lists the viewer's unpublished reports.
	GetReportDrafts(ctx context.Context, token string) ([]domain.Report, *domain.Author, error)

	// Login starts the OpenID flow and returns the authorization URL to
	// redirect the user to.
	Login(ctx context.Context, openidUID, redirectURI string) (string, error)
	LoginByShortcut(ctx context.Context, shortcutID, redirectURI string) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
	// CreateReport submits a new report (or draft) and returns its local id.
	CreateReport(ctx context.Context, input domain.ReportInput, token string) (string, error)
	UpdateReport(ctx context.Context, input domain.ReportInput, token string) (string, error)
}
