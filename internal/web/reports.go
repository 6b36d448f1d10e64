package web

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/openlobby/olapp/internal/config"
	"github.com/openlobby/olapp/internal/diff"
	"github.com/openlobby/olapp/internal/domain"
	"github.com/openlobby/olapp/internal/pagination"
	"github.com/openlobby/olapp/internal/service"
	"github.com/openlobby/olapp/internal/validate"
	"github.com/openlobby/olapp/templates"
)

var reportFormFields = []string{
	"title", "body", "date",
	"received_benefit", "provided_benefit",
	"our_participants", "other_participants",
}

// Index renders the report search page.
func Index(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		page, err := pageParam(r)
		if err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		query := validate.SearchQuery(r.URL.Query().Get("q"))

		search, viewer, err := h.service.SearchReports(ctx, query, page, GetToken(ctx))
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		total := totalPages(search.TotalCount, config.ReportsPerPage)
		if page > total && page != 1 {
			h.notFound(w, r)
			return
		}

		params := url.Values{}
		if query != "" {
			params.Set("q", query)
		}
		info := pagination.Compute(page, queryPages("/", params, page, total), total)

		templates.Render(w, "index", templates.PageData{
			Title:        "Reports",
			Viewer:       viewer,
			Query:        query,
			Reports:      search.Reports,
			TotalReports: search.TotalCount,
			PageInfo:     &info,
		})
	}
}

// Report renders a single report with its revision history.
func Report(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		report, viewer, err := h.service.GetReport(ctx, id, GetToken(ctx))
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		var revisionDiff string
		if len(report.Revisions) > 0 {
			revisionDiff = diff.Pretty(report.Revisions[len(report.Revisions)-1].Body, report.Body)
		}

		templates.Render(w, "report", templates.PageData{
			Title:        report.Title,
			Viewer:       viewer,
			Report:       &report,
			RevisionDiff: revisionDiff,
			SavedMessage: r.URL.Query().Get("saved") != "",
		})
	}
}

// NewReport renders the submission form together with the viewer's drafts.
func NewReport(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		drafts, viewer, err := h.service.GetReportDrafts(ctx, GetToken(ctx))
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		if viewer == nil {
			h.handleError(w, r, service.ErrUnauthorized)
			return
		}

		form := &validate.ReportForm{
			OurParticipants: viewer.FirstName + " " + viewer.LastName,
		}
		h.renderReportForm(w, "New report", viewer, form, nil, drafts, false)
	}
}

// SubmitReport handles the POST of the submission form.
func SubmitReport(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := GetToken(ctx)

		viewer, err := h.service.GetViewer(ctx, token)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		if viewer == nil {
			h.handleError(w, r, service.ErrUnauthorized)
			return
		}

		form := parseReportForm(r)
		errs := validate.Report(form)
		if errs.Any() {
			h.renderReportForm(w, "New report", viewer, form, errs, nil, false)
			return
		}

		input, err := h.reportInput(form)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		id, err := h.service.CreateReport(ctx, input, token)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		redirectSaved(w, r, id, form.IsDraft)
	}
}

// EditReport renders the edit form for a report. A published report may
// only be edited by its author; drafts are invisible to everyone else
// anyway.
func EditReport(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		report, viewer, err := h.service.GetReport(ctx, id, GetToken(ctx))
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		if viewer == nil {
			h.handleError(w, r, service.ErrUnauthorized)
			return
		}
		if !h.mayEdit(report, viewer) {
			h.notFound(w, r)
			return
		}

		form := &validate.ReportForm{
			ID:                report.ID,
			Title:             report.Title,
			Body:              report.Body,
			ReceivedBenefit:   report.ReceivedBenefit,
			ProvidedBenefit:   report.ProvidedBenefit,
			Date:              report.Date.Format("2006-01-02"),
			OurParticipants:   report.OurParticipants,
			OtherParticipants: report.OtherParticipants,
			IsDraft:           report.IsDraft,
		}
		saved := r.URL.Query().Get("saved") != ""
		h.renderReportForm(w, "Edit report", viewer, form, nil, nil, saved)
	}
}

// UpdateReport handles the POST of the edit form.
func UpdateReport(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")
		token := GetToken(ctx)

		report, viewer, err := h.service.GetReport(ctx, id, token)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		if viewer == nil {
			h.handleError(w, r, service.ErrUnauthorized)
			return
		}
		if !h.mayEdit(report, viewer) {
			h.notFound(w, r)
			return
		}

		form := parseReportForm(r)
		form.ID = id
		errs := validate.Report(form)
		if errs.Any() {
			h.renderReportForm(w, "Edit report", viewer, form, errs, nil, false)
			return
		}

		input, err := h.reportInput(form)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		input.ID = id
		savedID, err := h.service.UpdateReport(ctx, input, token)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		redirectSaved(w, r, savedID, form.IsDraft)
	}
}

func (h *Handler) mayEdit(report domain.Report, viewer *domain.Author) bool {
	if report.IsDraft {
		return true
	}
	return report.Author != nil && report.Author.ID == viewer.ID
}

func (h *Handler) reportInput(form *validate.ReportForm) (domain.ReportInput, error) {
	date, err := validate.ParseDate(form.Date, h.Config.Location)
	if err != nil {
		return domain.ReportInput{}, err
	}
	return domain.ReportInput{
		ID:                form.ID,
		Title:             form.Title,
		Body:              form.Body,
		ReceivedBenefit:   form.ReceivedBenefit,
		ProvidedBenefit:   form.ProvidedBenefit,
		Date:              date,
		OurParticipants:   form.OurParticipants,
		OtherParticipants: form.OtherParticipants,
		IsDraft:           form.IsDraft,
	}, nil
}

func (h *Handler) renderReportForm(w http.ResponseWriter, title string, viewer *domain.Author, form *validate.ReportForm, errs validate.FieldErrors, drafts []domain.Report, saved bool) {
	templates.Render(w, "report_form", templates.PageData{
		Title:        title,
		Viewer:       viewer,
		Form:         form,
		FormErrors:   errs,
		FieldClass:   validate.FieldClasses(reportFormFields, errs),
		Drafts:       drafts,
		SavedMessage: saved,
	})
}

func parseReportForm(r *http.Request) *validate.ReportForm {
	r.ParseForm()
	return &validate.ReportForm{
		Title:             r.Form.Get("title"),
		Body:              r.Form.Get("body"),
		ReceivedBenefit:   r.Form.Get("received_benefit"),
		ProvidedBenefit:   r.Form.Get("provided_benefit"),
		Date:              r.Form.Get("date"),
		OurParticipants:   r.Form.Get("our_participants"),
		OtherParticipants: r.Form.Get("other_participants"),
		IsDraft:           r.Form.Get("is_draft") == "true",
	}
}

func redirectSaved(w http.ResponseWriter, r *http.Request, id string, isDraft bool) {
	target := "/report/" + id + "?saved=true"
	if isDraft {
		target = "/report-edit/" + id + "?saved=true"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
