package domain

// Author is the byline of a report. The viewer (the authenticated caller's
// own record) has the same shape. TotalReports is only filled by the author
// listing; Email and OpenIDUID only by the viewer sub-query.
type Author struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string
	OpenIDUID        string
	HasCollidingName bool
	TotalReports     int
	Extra            map[string]any
}

type AuthorPage struct {
	TotalCount int
	Authors    []Author
}
