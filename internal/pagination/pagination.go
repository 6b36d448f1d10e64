// Package pagination computes which page links a list view shows. Small
// page counts render in full; large ones collapse into a bounded window
// around the current page with ellipsis gaps.
package pagination

// Beyond maxPlainPages the window shrinks to the first page, the last page
// and windowRadius pages on each side of the current one.
const (
	maxPlainPages = 20
	windowRadius  = 5
)

// PageDescriptor is one page link. Num is 1-based.
type PageDescriptor struct {
	Num    int
	URL    string
	Active bool
}

// PageInfo is everything a template needs to render the pager. A nil entry
// in Pages marks an ellipsis gap.
type PageInfo struct {
	Show        bool
	Page        int
	Pages       []*PageDescriptor
	TotalPages  int
	PreviousURL string
	NextURL     string
}

// Compute builds the pager for the current page. The descriptors must be
// 1-indexed and len(descriptors) == totalPages; an out-of-range current page
// is the caller's problem and must be rejected before getting here.
func Compute(page int, descriptors []PageDescriptor, totalPages int) PageInfo {
	info := PageInfo{
		Show:       totalPages > 1,
		Page:       page,
		TotalPages: totalPages,
	}

	if totalPages == 0 {
		info.Pages = []*PageDescriptor{}
		return info
	}

	info.Pages = window(page, descriptors, totalPages)

	if page > 1 {
		info.PreviousURL = descriptors[page-2].URL
	}
	if page < totalPages {
		info.NextURL = descriptors[page].URL
	}

	return info
}

func window(page int, descriptors []PageDescriptor, totalPages int) []*PageDescriptor {
	if totalPages <= maxPlainPages {
		pages := make([]*PageDescriptor, totalPages)
		for i := range descriptors {
			pages[i] = &descriptors[i]
		}
		return pages
	}

	included := make([]int, 0, 2*windowRadius+3)
	appendPage := func(num int) {
		if num < 1 || num > totalPages {
			return
		}
		if n := len(included); n > 0 && included[n-1] >= num {
			return
		}
		included = append(included, num)
	}

	appendPage(1)
	for num := page - windowRadius; num <= page+windowRadius; num++ {
		appendPage(num)
	}
	appendPage(totalPages)

	pages := make([]*PageDescriptor, 0, len(included)+2)
	previous := 0
	for _, num := range included {
		if previous != 0 && num-previous > 1 {
			pages = append(pages, nil) // ellipsis gap
		}
		pages = append(pages, &descriptors[num-1])
		previous = num
	}
	return pages
}
