package pagination

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func descriptors(total, active int) []PageDescriptor {
	pages := make([]PageDescriptor, total)
	for i := range pages {
		num := i + 1
		pages[i] = PageDescriptor{
			Num:    num,
			URL:    fmt.Sprintf("/?p=%d", num),
			Active: num == active,
		}
	}
	return pages
}

// nums flattens a window into page numbers, 0 marking an ellipsis gap.
func nums(pages []*PageDescriptor) []int {
	out := make([]int, len(pages))
	for i, p := range pages {
		if p != nil {
			out[i] = p.Num
		}
	}
	return out
}

func TestComputeEmpty(t *testing.T) {
	info := Compute(1, nil, 0)

	if info.Show {
		t.Error("empty result must not show a pager")
	}
	if len(info.Pages) != 0 {
		t.Errorf("expected no pages, got %v", info.Pages)
	}
	if info.PreviousURL != "" || info.NextURL != "" {
		t.Errorf("expected no prev/next, got %q, %q", info.PreviousURL, info.NextURL)
	}
}

func TestComputeSinglePage(t *testing.T) {
	info := Compute(1, descriptors(1, 1), 1)
	if info.Show {
		t.Error("a single page must not show a pager")
	}
	if info.PreviousURL != "" || info.NextURL != "" {
		t.Error("single page has no neighbours")
	}
}

func TestComputeFirstOfThree(t *testing.T) {
	info := Compute(1, descriptors(3, 1), 3)

	if !info.Show {
		t.Error("three pages must show a pager")
	}
	if info.PreviousURL != "" {
		t.Errorf("first page has no previous, got %q", info.PreviousURL)
	}
	if info.NextURL != "/?p=2" {
		t.Errorf("expected next /?p=2, got %q", info.NextURL)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, nums(info.Pages)); diff != "" {
		t.Error(diff)
	}
	if !info.Pages[0].Active {
		t.Error("current descriptor should stay marked active")
	}
}

func TestComputeLastPage(t *testing.T) {
	info := Compute(3, descriptors(3, 3), 3)
	if info.NextURL != "" {
		t.Errorf("last page has no next, got %q", info.NextURL)
	}
	if info.PreviousURL != "/?p=2" {
		t.Errorf("expected previous /?p=2, got %q", info.PreviousURL)
	}
}

func TestComputeFullWindowAtLimit(t *testing.T) {
	info := Compute(10, descriptors(20, 10), 20)
	if len(info.Pages) != 20 {
		t.Errorf("20 pages fit without compression, got %d entries", len(info.Pages))
	}
	for i, p := range info.Pages {
		if p == nil {
			t.Errorf("unexpected gap at %d", i)
		}
	}
}

func TestComputeWindowMiddle(t *testing.T) {
	info := Compute(13, descriptors(25, 13), 25)

	expected := []int{1, 0, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 0, 25}
	if diff := cmp.Diff(expected, nums(info.Pages)); diff != "" {
		t.Error(diff)
	}
	if info.PreviousURL != "/?p=12" || info.NextURL != "/?p=14" {
		t.Errorf("unexpected neighbours: %q, %q", info.PreviousURL, info.NextURL)
	}
}

func TestComputeWindowNearStart(t *testing.T) {
	info := Compute(3, descriptors(25, 3), 25)

	// contiguous run from 1, single gap before the last page
	expected := []int{1, 2, 3, 4, 5, 6, 7, 8, 0, 25}
	if diff := cmp.Diff(expected, nums(info.Pages)); diff != "" {
		t.Error(diff)
	}
}

func TestComputeWindowNearEnd(t *testing.T) {
	info := Compute(24, descriptors(25, 24), 25)

	expected := []int{1, 0, 19, 20, 21, 22, 23, 24, 25}
	if diff := cmp.Diff(expected, nums(info.Pages)); diff != "" {
		t.Error(diff)
	}
	if info.NextURL != "/?p=25" {
		t.Errorf("expected next /?p=25, got %q", info.NextURL)
	}
}

func TestComputeWindowAdjacentNoGap(t *testing.T) {
	// the window ends right next to the last page: no gap on that side
	info := Compute(15, descriptors(21, 15), 21)

	expected := []int{1, 0, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21}
	if diff := cmp.Diff(expected, nums(info.Pages)); diff != "" {
		t.Error(diff)
	}
}
