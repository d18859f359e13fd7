package paginator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/gym-console/internal/paginator"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestTotalPages(t *testing.T) {
	for n := 0; n <= 60; n++ {
		for size := 1; size <= 7; size++ {
			got := paginator.TotalPages(n, size)
			want := (n + size - 1) / size
			require.Equal(t, want, got, "n=%d size=%d", n, size)
			require.Equal(t, n == 0, got == 0, "n=%d size=%d", n, size)
		}
	}
}

func TestTotalPages_NonPositiveSize(t *testing.T) {
	assert.Equal(t, 0, paginator.TotalPages(12, 0))
	assert.Equal(t, 0, paginator.TotalPages(12, -3))

	p := paginator.New(seq(12), 0)
	assert.Equal(t, 0, p.TotalPages())
	assert.Empty(t, p.PageSlice())
	assert.Empty(t, p.VisibleWindow())
}

func TestPageSlice_Lengths(t *testing.T) {
	for n := 0; n <= 40; n++ {
		for size := 1; size <= 6; size++ {
			p := paginator.New(seq(n), size)
			total := p.TotalPages()
			if n == 0 {
				require.Empty(t, p.PageSlice())
				continue
			}
			for page := 1; page <= total; page++ {
				p.GoToPage(page)
				require.Equal(t, page, p.CurrentPage())
				slice := p.PageSlice()
				want := size
				if page == total {
					want = n - (total-1)*size
				}
				require.Len(t, slice, want, "n=%d size=%d page=%d", n, size, page)
				require.Equal(t, (page-1)*size+1, slice[0])
			}
		}
	}
}

func TestGoToPage_OutOfRangeIsNoop(t *testing.T) {
	p := paginator.New(seq(23), 5)
	p.GoToPage(3)
	for _, target := range []int{-1, 0, 6, 100} {
		p.GoToPage(target)
		assert.Equal(t, 3, p.CurrentPage(), "target=%d", target)
	}
}

func TestPreviousAndNext_AtEdges(t *testing.T) {
	p := paginator.New(seq(12), 5)

	p.PreviousPage()
	assert.Equal(t, 1, p.CurrentPage())
	assert.False(t, p.HasPrevious())

	p.NextPage()
	p.NextPage()
	assert.Equal(t, 3, p.CurrentPage())
	assert.False(t, p.HasNext())

	p.NextPage()
	assert.Equal(t, 3, p.CurrentPage())

	p.PreviousPage()
	assert.Equal(t, 2, p.CurrentPage())
	assert.True(t, p.HasPrevious())
	assert.True(t, p.HasNext())
}

func TestVisibleWindow_Length(t *testing.T) {
	for n := 0; n <= 80; n++ {
		p := paginator.New(seq(n), 5)
		total := p.TotalPages()
		want := total
		if want > paginator.DefaultWindow {
			want = paginator.DefaultWindow
		}
		for page := 1; page <= total || page == 1; page++ {
			p.GoToPage(page)
			w := p.VisibleWindow()
			require.Len(t, w, want, "n=%d page=%d", n, page)
			if len(w) > 0 {
				require.Contains(t, w, p.CurrentPage())
				require.GreaterOrEqual(t, w[0], 1)
				require.LessOrEqual(t, w[len(w)-1], total)
			}
			if total == 0 {
				break
			}
		}
	}
}

func TestScenarios(t *testing.T) {
	t.Run("twelve_items_first_page", func(t *testing.T) {
		p := paginator.New(seq(12), 5)
		assert.Equal(t, 3, p.TotalPages())
		assert.Equal(t, []int{1, 2, 3, 4, 5}, p.PageSlice())
		assert.Equal(t, []int{1, 2, 3}, p.AllPageNumbers())
		assert.Equal(t, []int{1, 2, 3}, p.VisibleWindow())
	})

	t.Run("go_to_zero_is_ignored", func(t *testing.T) {
		p := paginator.New(seq(12), 5)
		p.GoToPage(0)
		assert.Equal(t, 1, p.CurrentPage())
	})

	t.Run("go_past_last_is_ignored", func(t *testing.T) {
		p := paginator.New(seq(12), 5)
		p.GoToPage(10)
		assert.Equal(t, 1, p.CurrentPage())
	})

	t.Run("window_centered", func(t *testing.T) {
		p := paginator.New(seq(50), 5)
		p.GoToPage(5)
		assert.Equal(t, []int{3, 4, 5, 6, 7}, p.VisibleWindow())
	})

	t.Run("window_shifted_left_on_last_page", func(t *testing.T) {
		p := paginator.New(seq(50), 5)
		p.GoToPage(10)
		require.Equal(t, 10, p.TotalPages())
		assert.Equal(t, []int{6, 7, 8, 9, 10}, p.VisibleWindow())
	})

	t.Run("empty_collection", func(t *testing.T) {
		p := paginator.New([]int{}, 5)
		assert.Equal(t, 0, p.TotalPages())
		assert.Empty(t, p.PageSlice())
		assert.Empty(t, p.AllPageNumbers())
		assert.Empty(t, p.VisibleWindow())
		p.GoToPage(1)
		assert.Equal(t, 1, p.CurrentPage())
		assert.False(t, p.HasNext())
		assert.False(t, p.HasPrevious())
	})
}

func TestWindow_ShiftedRightNearStart(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, paginator.Window(1, 10, 5))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, paginator.Window(2, 10, 5))
	assert.Equal(t, []int{2, 3, 4, 5, 6}, paginator.Window(4, 10, 5))
	assert.Equal(t, []int{6, 7, 8, 9, 10}, paginator.Window(9, 10, 5))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, paginator.Window(3, 6, 6))
}

func TestSetItems_DoesNotClampCurrentPage(t *testing.T) {
	items := seq(11)
	p := paginator.New(items, 5)
	p.GoToPage(3)
	require.Equal(t, []int{11}, p.PageSlice())

	// last record on the last page deleted
	p.SetItems(items[:10])
	assert.Equal(t, 3, p.CurrentPage())
	assert.Equal(t, 2, p.TotalPages())
	assert.Empty(t, p.PageSlice())
	assert.False(t, p.HasNext())
	assert.Equal(t, []int{1, 2}, p.VisibleWindow())

	p.PreviousPage()
	assert.Equal(t, 2, p.CurrentPage())
	assert.Equal(t, []int{6, 7, 8, 9, 10}, p.PageSlice())

	p.Reset()
	assert.Equal(t, 1, p.CurrentPage())
}

func TestPageSlice_AppendDoesNotClobberSnapshot(t *testing.T) {
	items := seq(10)
	p := paginator.New(items, 5)
	page := p.PageSlice()
	_ = append(page, 99)
	assert.Equal(t, 6, items[5])
}

func TestGoTo_Pure(t *testing.T) {
	s := paginator.NewState(5)
	assert.Equal(t, 1, paginator.GoTo(s, 0, 3).CurrentPage)
	assert.Equal(t, 3, paginator.GoTo(s, 3, 3).CurrentPage)
	assert.Equal(t, 1, paginator.GoTo(s, 4, 3).CurrentPage)
	assert.Equal(t, 1, paginator.GoTo(s, 1, 0).CurrentPage)
	assert.Equal(t, 1, s.CurrentPage)
}

func TestBounds(t *testing.T) {
	start, end := paginator.Bounds(12, paginator.State{CurrentPage: 3, PageSize: 5})
	assert.Equal(t, 10, start)
	assert.Equal(t, 12, end)

	start, end = paginator.Bounds(12, paginator.State{CurrentPage: 4, PageSize: 5})
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}
