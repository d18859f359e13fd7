// Package paginator computes page-based navigation over an in-memory
// snapshot of records: how many pages there are, which records belong to the
// current page, which page numbers to render as controls, and bounded
// movement between pages.
//
// The arithmetic lives in pure functions over State so it can be exercised
// without any collection; Paginator binds that state to a concrete []T for
// list views.
package paginator

// DefaultWindow is the maximum number of page-number controls rendered at once.
const DefaultWindow = 5

// State is the only mutable part of pagination.
// CurrentPage is 1-based; PageSize must be positive for any page to exist.
type State struct {
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// NewState returns the state a freshly mounted list view starts with.
func NewState(pageSize int) State {
	return State{CurrentPage: 1, PageSize: pageSize}
}

// TotalPages is ceil(n / pageSize). An empty collection has zero pages, not one.
func TotalPages(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// Bounds returns the half-open index range [start, end) of the current page
// within a collection of length n. Both are zero when the current page does
// not exist.
func Bounds(n int, s State) (start, end int) {
	total := TotalPages(n, s.PageSize)
	if total == 0 || s.CurrentPage < 1 || s.CurrentPage > total {
		return 0, 0
	}
	start = (s.CurrentPage - 1) * s.PageSize
	end = start + s.PageSize
	if end > n {
		end = n
	}
	return start, end
}

// Pages returns 1..total, or an empty slice when total is not positive.
func Pages(total int) []int {
	if total <= 0 {
		return []int{}
	}
	out := make([]int, total)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Window returns at most width consecutive page numbers centered on current.
// Near either edge the window is shifted so it stays inside [1, total];
// its length is always min(width, total).
func Window(current, total, width int) []int {
	if total <= 0 || width <= 0 {
		return []int{}
	}
	if total <= width {
		return Pages(total)
	}
	start := current - width/2
	end := start + width - 1
	if start < 1 {
		start, end = 1, width
	}
	if end > total {
		start, end = total-width+1, total
	}
	out := make([]int, 0, width)
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	return out
}

// GoTo moves to target when 1 <= target <= total and leaves s untouched otherwise.
func GoTo(s State, target, total int) State {
	if target < 1 || target > total {
		return s
	}
	s.CurrentPage = target
	return s
}

// Paginator binds a State to the record snapshot of one list view.
// It never fails: invalid navigation is ignored and missing pages yield
// empty slices.
type Paginator[T any] struct {
	items []T
	state State
}

// New starts on page 1. The caller owns pageSize; there is no implicit default.
func New[T any](items []T, pageSize int) *Paginator[T] {
	return &Paginator[T]{items: items, state: NewState(pageSize)}
}

// SetItems swaps the record snapshot. The current page is kept as is, even if
// it no longer exists; resetting is the host view's call.
func (p *Paginator[T]) SetItems(items []T) { p.items = items }

// Reset moves back to page 1.
func (p *Paginator[T]) Reset() { p.state.CurrentPage = 1 }

// State returns a copy of the navigation state.
func (p *Paginator[T]) State() State { return p.state }

// CurrentPage is 1-based.
func (p *Paginator[T]) CurrentPage() int { return p.state.CurrentPage }

// PageSize is the number of records per page.
func (p *Paginator[T]) PageSize() int { return p.state.PageSize }

// Len is the size of the whole snapshot, not of the current page.
func (p *Paginator[T]) Len() int { return len(p.items) }

// TotalPages is 0 for an empty snapshot.
func (p *Paginator[T]) TotalPages() int {
	return TotalPages(len(p.items), p.state.PageSize)
}

// PageSlice returns the records of the current page. The result shares the
// backing array with the snapshot but is capped so appends cannot overwrite it.
func (p *Paginator[T]) PageSlice() []T {
	start, end := Bounds(len(p.items), p.state)
	if start == end {
		return []T{}
	}
	return p.items[start:end:end]
}

// AllPageNumbers lists 1..TotalPages, empty when there are no pages.
func (p *Paginator[T]) AllPageNumbers() []int { return Pages(p.TotalPages()) }

// VisibleWindow returns the page numbers to render as controls.
func (p *Paginator[T]) VisibleWindow() []int {
	return Window(p.state.CurrentPage, p.TotalPages(), DefaultWindow)
}

// GoToPage moves to target only when it is an existing page; anything else is ignored.
func (p *Paginator[T]) GoToPage(target int) {
	p.state = GoTo(p.state, target, p.TotalPages())
}

// PreviousPage steps back one page. On page 1 it does nothing.
func (p *Paginator[T]) PreviousPage() {
	if p.state.CurrentPage <= 1 {
		return
	}
	p.GoToPage(p.state.CurrentPage - 1)
}

// NextPage steps forward one page. On the last page it does nothing.
func (p *Paginator[T]) NextPage() {
	p.GoToPage(p.state.CurrentPage + 1)
}

// HasPrevious reports whether a "previous" control should be enabled.
func (p *Paginator[T]) HasPrevious() bool { return p.state.CurrentPage > 1 }

// HasNext reports whether a "next" control should be enabled.
func (p *Paginator[T]) HasNext() bool { return p.state.CurrentPage < p.TotalPages() }
