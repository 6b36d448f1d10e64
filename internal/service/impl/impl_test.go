package core

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlobby/olapp/internal/config"
	"github.com/openlobby/olapp/internal/domain"
	"github.com/openlobby/olapp/internal/graphql"
	"github.com/openlobby/olapp/internal/service"
	"github.com/openlobby/olapp/internal/state"
)

var ctx = context.Background()

// capture records the last request the stub API received.
type capture struct {
	Query     string
	Variables map[string]any
	Token     string
}

func newService(t *testing.T, response string) (service.Service, *capture) {
	t.Helper()
	rec := &capture{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		rec.Query = payload.Query
		rec.Variables = payload.Variables
		rec.Token = r.Header.Get("Authorization")
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	loc, err := time.LoadLocation("Europe/Prague")
	require.NoError(t, err)

	st := &state.State{
		Client: graphql.NewClient(server.URL, nil),
		Config: config.Configuration{Location: loc},
	}
	return New(st), rec
}

func reportNode(id, title string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"date": "2021-03-01",
		"published": "2021-03-02T10:00:00+00:00",
		"title": %q,
		"body": "b",
		"receivedBenefit": "",
		"providedBenefit": "",
		"ourParticipants": "",
		"otherParticipants": "",
		"extra": null
	}`, graphql.EncodeGlobalID("Report", id), title)
}

func TestSearchReports(t *testing.T) {
	response := fmt.Sprintf(`{"data": {
		"searchReports": {
			"totalCount": 2,
			"edges": [
				{"node": %s},
				{"node": %s}
			]
		},
		"viewer": null
	}}`, reportNode("r1", "first"), reportNode("r2", "second"))

	s, rec := newService(t, response)
	page, viewer, err := s.SearchReports(ctx, "senator", 1, "tok")
	require.NoError(t, err)

	assert.Nil(t, viewer)
	assert.Equal(t, 2, page.TotalCount)
	require.Len(t, page.Reports, 2)
	assert.Equal(t, "r1", page.Reports[0].ID)
	assert.Equal(t, "second", page.Reports[1].Title)

	assert.Contains(t, rec.Query, `searchReports (query: "senator", highlight: true, first: 10)`)
	assert.Contains(t, rec.Query, "viewer {")
	assert.Equal(t, "Bearer tok", rec.Token)
}

func TestSearchReportsSecondPageCursor(t *testing.T) {
	response := `{"data": {"searchReports": {"totalCount": 0, "edges": []}, "viewer": null}}`
	s, rec := newService(t, response)

	_, _, err := s.SearchReports(ctx, "", 2, "")
	require.NoError(t, err)

	cursor := graphql.EncodeCursor(config.ReportsPerPage)
	assert.Contains(t, rec.Query, fmt.Sprintf(`after: %q`, cursor))
}

func TestGetReportNotFound(t *testing.T) {
	s, _ := newService(t, `{"data": {"node": null, "viewer": null}}`)

	_, _, err := s.GetReport(ctx, "missing", "")
	assert.ErrorIs(t, err, graphql.ErrNotFound)
}

func TestGetReport(t *testing.T) {
	response := fmt.Sprintf(`{"data": {"node": %s, "viewer": null}}`, reportNode("r9", "t"))
	s, rec := newService(t, response)

	report, _, err := s.GetReport(ctx, "r9", "")
	require.NoError(t, err)
	assert.Equal(t, "r9", report.ID)

	assert.Contains(t, rec.Query, fmt.Sprintf(`node (id: %q)`, graphql.EncodeGlobalID("Report", "r9")))
	assert.Contains(t, rec.Query, "revisions {")
	assert.Contains(t, rec.Query, "hasRevisions")
}

func TestGetAuthorDenormalizesByline(t *testing.T) {
	response := fmt.Sprintf(`{"data": {
		"node": {
			"id": %q,
			"firstName": "Jana",
			"lastName": "Nová",
			"hasCollidingName": false,
			"extra": null,
			"reports": {
				"totalCount": 1,
				"edges": [{"node": %s}]
			}
		},
		"viewer": null
	}}`, graphql.EncodeGlobalID("Author", "a3"), reportNode("r1", "t"))

	s, _ := newService(t, response)
	author, reports, _, err := s.GetAuthor(ctx, "a3", 1, "")
	require.NoError(t, err)

	assert.Equal(t, "a3", author.ID)
	require.Len(t, reports.Reports, 1)
	byline := reports.Reports[0].Author
	require.NotNil(t, byline)
	assert.Equal(t, "a3", byline.ID)
	assert.Equal(t, "Jana", byline.FirstName)
	assert.NotSame(t, &author, byline)
}

func TestGetAuthorsSort(t *testing.T) {
	response := `{"data": {"authors": {"totalCount": 0, "edges": []}, "viewer": null}}`

	cases := []struct {
		sort     domain.AuthorSort
		fragment string
	}{
		{domain.SortLastName, "authors (first: 50)"},
		{domain.SortLastNameReversed, "authors (sort: LAST_NAME, reversed: true, first: 50)"},
		{domain.SortTotalReports, "authors (sort: TOTAL_REPORTS, first: 50)"},
	}

	for _, c := range cases {
		s, rec := newService(t, response)
		_, _, err := s.GetAuthors(ctx, 1, c.sort, "")
		require.NoError(t, err)
		assert.Contains(t, rec.Query, c.fragment)
	}
}

func TestGetLoginShortcuts(t *testing.T) {
	response := fmt.Sprintf(`{"data": {
		"loginShortcuts": [{"id": %q, "name": "MojeID"}],
		"viewer": null
	}}`, graphql.EncodeGlobalID("LoginShortcut", "ls1"))

	s, _ := newService(t, response)
	shortcuts, _, err := s.GetLoginShortcuts(ctx, "")
	require.NoError(t, err)
	require.Len(t, shortcuts, 1)
	assert.Equal(t, domain.LoginShortcut{ID: "ls1", Name: "MojeID"}, shortcuts[0])
}

func TestLoginUsesVariables(t *testing.T) {
	response := `{"data": {"login": {"authorizationUrl": "https://idp.example/auth"}}}`
	s, rec := newService(t, response)

	u, err := s.Login(ctx, `user"@mojeid.cz`, "http://localhost:8020/login/redirect")
	require.NoError(t, err)
	assert.Equal(t, "https://idp.example/auth", u)

	// free text travels as a variable, never inside the document
	assert.NotContains(t, rec.Query, "mojeid.cz")
	input := rec.Variables["input"].(map[string]any)
	assert.Equal(t, `user"@mojeid.cz`, input["openidUid"])
}

func TestCreateReport(t *testing.T) {
	response := fmt.Sprintf(`{"data": {"createReport": {"report": {"id": %q, "isDraft": false}}}}`,
		graphql.EncodeGlobalID("Report", "r77"))
	s, rec := newService(t, response)

	input := domain.ReportInput{
		Title: `a "quoted" title`,
		Body:  "body",
		Date:  time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	id, err := s.CreateReport(ctx, input, "tok")
	require.NoError(t, err)
	assert.Equal(t, "r77", id)

	assert.NotContains(t, rec.Query, "quoted")
	vars := rec.Variables["input"].(map[string]any)
	assert.Equal(t, `a "quoted" title`, vars["title"])
	assert.Equal(t, "2021-03-01", vars["date"])
}

func TestUpdateReportEncodesID(t *testing.T) {
	response := fmt.Sprintf(`{"data": {"updateReport": {"report": {"id": %q, "isDraft": true}}}}`,
		graphql.EncodeGlobalID("Report", "r5"))
	s, rec := newService(t, response)

	id, err := s.UpdateReport(ctx, domain.ReportInput{ID: "r5", Title: "t", Date: time.Now()}, "tok")
	require.NoError(t, err)
	assert.Equal(t, "r5", id)

	vars := rec.Variables["input"].(map[string]any)
	assert.Equal(t, graphql.EncodeGlobalID("Report", "r5"), vars["id"])
}

func TestLogout(t *testing.T) {
	s, rec := newService(t, `{"data": {"logout": {"success": true}}}`)

	ok, err := s.Logout(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Bearer tok", rec.Token)
}

func TestGetViewer(t *testing.T) {
	response := fmt.Sprintf(`{"data": {"viewer": {
		"id": %q,
		"firstName": "Eva",
		"lastName": "Malá",
		"email": "eva@example.com",
		"openidUid": "eva@mojeid.cz",
		"extra": null
	}}}`, graphql.EncodeGlobalID("User", "u2"))

	s, _ := newService(t, response)
	viewer, err := s.GetViewer(ctx, "tok")
	require.NoError(t, err)
	require.NotNil(t, viewer)
	assert.Equal(t, "u2", viewer.ID)
	assert.Equal(t, "eva@mojeid.cz", viewer.OpenIDUID)
}
