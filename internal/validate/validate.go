// Package validate cleans and checks user-submitted form values before they
// reach the API.
package validate

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"time"
)

const (
	MaxTitleLen = 250
	dateLayout  = "2006-01-02"

	InputClass = "form-control form-control-sm"
	ErrorClass = "is-invalid"
)

// ReportForm holds the raw string values of the report form, before
// sanitization and parsing.
type ReportForm struct {
	ID                string
	Title             string
	Body              string
	ReceivedBenefit   string
	ProvidedBenefit   string
	Date              string
	OurParticipants   string
	OtherParticipants string
	IsDraft           bool
}

// FieldErrors maps form field names to their validation failure.
type FieldErrors map[string]error

func (f FieldErrors) Any() bool {
	return len(f) > 0
}

// Report sanitizes and validates the report form. Free-text fields are
// stripped of markup; the cleaned values are written back into the form so
// the template re-renders what will actually be submitted.
func Report(form *ReportForm) FieldErrors {
	errs := FieldErrors{}

	form.Title = StripTags(form.Title)
	form.Body = StripTags(form.Body)
	form.ReceivedBenefit = StripTags(form.ReceivedBenefit)
	form.ProvidedBenefit = StripTags(form.ProvidedBenefit)
	form.OurParticipants = StripTags(form.OurParticipants)
	form.OtherParticipants = StripTags(form.OtherParticipants)

	if form.Title == "" {
		errs["title"] = errors.New("empty title")
	} else if len(form.Title) > MaxTitleLen {
		errs["title"] = fmt.Errorf("title too long; max %d characters", MaxTitleLen)
	}

	if form.Body == "" {
		errs["body"] = errors.New("empty report")
	}

	if form.Date == "" {
		errs["date"] = errors.New("empty date")
	} else if _, err := time.Parse(dateLayout, form.Date); err != nil {
		errs["date"] = errors.New("date must be YYYY-MM-DD")
	}

	return errs
}

// ParseDate parses an already-validated form date in the display zone.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, loc)
}

// SearchQuery reduces a search input to plain text.
func SearchQuery(q string) string {
	return strings.Join(strings.Fields(StripTags(q)), " ")
}

// StripTags removes anything that looks like markup and resolves HTML
// entities, leaving plain text.
func StripTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(html.UnescapeString(b.String()))
}

// FieldClasses renders the CSS class of every form field, appending the
// error class where validation failed. This replaces inheritance tricks
// with a plain function over the validation result.
func FieldClasses(fields []string, errs FieldErrors) map[string]string {
	classes := make(map[string]string, len(fields))
	for _, f := range fields {
		classes[f] = InputClass
		if _, ok := errs[f]; ok {
			classes[f] = InputClass + " " + ErrorClass
		}
	}
	return classes
}
