// Package conversions reshapes raw API JSON into the internal model: global
// ids are decoded to local ids, timestamps land in the configured display
// zone, and the embedded extra payload becomes a structured map. All
// functions are pure; they never touch the network.
package conversions

import (
	"fmt"
	"strings"
	"time"

	"github.com/openlobby/olapp/internal/domain"
	"github.com/openlobby/olapp/internal/graphql"
)

const dateLayout = "2006-01-02"

// ConvertAuthor normalizes a raw author (or viewer) object. Earlier API
// shapes carried a single name field instead of firstName/lastName; the
// split happens here so nothing downstream has to care.
func ConvertAuthor(raw map[string]any) (domain.Author, error) {
	author := domain.Author{}

	_, id, err := graphql.DecodeGlobalID(stringField(raw, "id"))
	if err != nil {
		return author, err
	}
	author.ID = id

	author.FirstName = stringField(raw, "firstName")
	author.LastName = stringField(raw, "lastName")
	if author.FirstName == "" && author.LastName == "" {
		author.FirstName, author.LastName = splitName(stringField(raw, "name"))
	}

	author.Email = stringField(raw, "email")
	author.OpenIDUID = stringField(raw, "openidUid")
	author.HasCollidingName = boolField(raw, "hasCollidingName")
	author.TotalReports = intField(raw, "totalReports")

	author.Extra, err = structuredField(raw, "extra")
	return author, err
}

// ConvertReport normalizes a raw report object, recursing into the author
// and the revision list when present. Revisions do not carry their own
// author in the payload, so each one gets the parent's.
func ConvertReport(raw map[string]any, loc *time.Location) (domain.Report, error) {
	report := domain.Report{}

	_, id, err := graphql.DecodeGlobalID(stringField(raw, "id"))
	if err != nil {
		return report, err
	}
	report.ID = id

	report.Title = stringField(raw, "title")
	report.Body = stringField(raw, "body")
	report.ReceivedBenefit = stringField(raw, "receivedBenefit")
	report.ProvidedBenefit = stringField(raw, "providedBenefit")
	report.OurParticipants = stringField(raw, "ourParticipants")
	report.OtherParticipants = stringField(raw, "otherParticipants")
	report.IsDraft = boolField(raw, "isDraft")
	report.HasRevisions = boolField(raw, "hasRevisions")

	report.Extra, err = structuredField(raw, "extra")
	if err != nil {
		return report, err
	}

	if s := stringField(raw, "date"); s != "" {
		report.Date, err = time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return report, fmt.Errorf("field date: %w", err)
		}
	}

	if s := stringField(raw, "published"); s != "" {
		published, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return report, fmt.Errorf("field published: %w", err)
		}
		report.Published = published.In(loc)
	}

	if s := stringField(raw, "edited"); s != "" {
		edited, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return report, fmt.Errorf("field edited: %w", err)
		}
		edited = edited.In(loc)
		report.Edited = &edited
	}

	if rawAuthor, ok := raw["author"].(map[string]any); ok {
		author, err := ConvertAuthor(rawAuthor)
		if err != nil {
			return report, err
		}
		report.Author = &author
	}

	if rawRevisions, ok := raw["revisions"].([]any); ok {
		report.Revisions = make([]domain.Report, 0, len(rawRevisions))
		for _, r := range rawRevisions {
			rawRevision, ok := r.(map[string]any)
			if !ok {
				continue
			}
			revision, err := ConvertReport(rawRevision, loc)
			if err != nil {
				return report, err
			}
			if report.Author != nil {
				a := *report.Author
				revision.Author = &a
			}
			report.Revisions = append(report.Revisions, revision)
		}
	}

	return report, nil
}

// ViewerFromData extracts and normalizes the viewer sub-selection. A null or
// absent viewer means the caller is anonymous.
func ViewerFromData(data map[string]any) (*domain.Author, error) {
	raw, ok := data["viewer"].(map[string]any)
	if !ok {
		return nil, nil
	}
	viewer, err := ConvertAuthor(raw)
	if err != nil {
		return nil, err
	}
	return &viewer, nil
}

func splitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	i := strings.LastIndex(name, " ")
	if i < 0 {
		return "", name
	}
	return name[:i], name[i+1:]
}
