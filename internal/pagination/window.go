// Package pagination computes page windows, navigation items and
// query-preserving links for list pages.
package pagination

// Window is the inclusive range of page numbers rendered as numbered links.
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of pages in the window.
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start + 1
}

// Contains reports whether page falls inside the window.
func (w Window) Contains(page int) bool {
	return page >= w.Start && page <= w.End
}

// ComputeWindow returns the range of numbered pages to show around
// currentPage. totalPages must be at least 1.
//
// The start and end branches always stay within [1, totalPages]. The
// middle branch returns start+maxDisplayedPages as its end without
// clamping it; callers must not enumerate past totalPages.
func ComputeWindow(currentPage, totalPages, maxDisplayedPages int) Window {
	gap := maxDisplayedPages/2 + maxDisplayedPages%2

	if maxDisplayedPages > totalPages {
		maxDisplayedPages = totalPages
	}

	switch {
	// << < 1 2 (3) 4 5 6 7 8 9 10 > >>
	case currentPage < maxDisplayedPages:
		return Window{Start: 1, End: maxDisplayedPages}

	// << < 91 92 93 94 95 96 97 (98) 99 100 > >>
	case currentPage > totalPages-maxDisplayedPages:
		return Window{Start: max(1, totalPages-maxDisplayedPages), End: totalPages}

	// << < 21 22 23 24 (25) 26 27 28 29 30 > >>
	default:
		start := max(1, currentPage-gap)
		return Window{Start: start, End: start + maxDisplayedPages}
	}
}

// ComputeWindowClamped is ComputeWindow with the end of the window capped
// at totalPages in every branch.
func ComputeWindowClamped(currentPage, totalPages, maxDisplayedPages int) Window {
	w := ComputeWindow(currentPage, totalPages, maxDisplayedPages)
	if w.End > totalPages {
		w.End = totalPages
	}
	return w
}
