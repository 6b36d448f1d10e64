// Package domain holds the value objects the rest of the application works
// with. Everything here is constructed fresh from an API response and never
// mutated afterwards.
package domain

type LoginShortcut struct {
	ID   string
	Name string
}

// AuthorSort selects the ordering of the author listing. Exactly one of the
// three supported orderings is in effect per call; reversed total reports is
// not supported by the API.
type AuthorSort int

const (
	SortLastName AuthorSort = iota
	SortLastNameReversed
	SortTotalReports
)
