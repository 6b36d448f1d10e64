// Package diff renders the change between two revisions of a report body.
package diff

import "github.com/sergi/go-diff/diffmatchpatch"

var dmp = diffmatchpatch.New()

// Pretty returns an HTML rendering of the change from an older report body
// to a newer one, for the revision history view.
func Pretty(older, newer string) string {
	diffs := dmp.DiffMain(older, newer, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyHtml(diffs)
}
