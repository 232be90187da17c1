package pagination

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(items []Item) []ItemKind {
	out := make([]ItemKind, len(items))
	for i, it := range items {
		out[i] = it.Kind
	}
	return out
}

func TestNewPlan_FirstPage(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowPrevNext = true

	plan, err := NewPlan(State{CurrentPage: 1, PageSize: 10, TotalRecords: 95, MaxDisplayedPages: 5, GapSize: 3}, opts)
	require.NoError(t, err)

	assert.Equal(t, 10, plan.TotalPages)
	assert.Equal(t, &Window{Start: 1, End: 5}, plan.Window)
	assert.Equal(t, []ItemKind{
		KindFirst, KindPrevious,
		KindPage, KindPage, KindPage, KindPage, KindPage,
		KindNext, KindLast,
	}, kinds(plan.Items))

	first := plan.Items[0]
	assert.True(t, first.Disabled, "first link on page 1 is disabled")
	assert.Empty(t, first.Href)
	assert.Contains(t, first.Class, "disabled")
	assert.Equal(t, "First", first.ScreenReader)

	prev := plan.Items[1]
	assert.True(t, prev.Disabled)
	assert.Equal(t, 1, prev.TargetPage)

	current := plan.Items[2]
	assert.True(t, current.Current)
	assert.Empty(t, current.Href)
	assert.Contains(t, current.Class, "active")

	assert.Equal(t, "?p=2&s=10", plan.Items[3].Href)

	next := plan.Items[7]
	assert.Equal(t, 2, next.TargetPage)
	assert.False(t, next.Disabled)
	assert.Equal(t, "?p=2&s=10", next.Href)

	last := plan.Items[8]
	assert.Equal(t, 10, last.TargetPage)
	assert.Equal(t, "?p=10&s=10", last.Href)

	assert.False(t, plan.HasPrevious)
	assert.True(t, plan.HasNext)
	assert.Equal(t, 1, plan.PrevPage)
	assert.Equal(t, 2, plan.NextPage)
}

func TestNewPlan_NumberedFirstAndLast(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowFirstNumberedPage = true
	opts.ShowLastNumberedPage = true

	plan, err := NewPlan(State{CurrentPage: 10, PageSize: 10, TotalRecords: 200, MaxDisplayedPages: 5, GapSize: 3}, opts)
	require.NoError(t, err)

	assert.Equal(t, &Window{Start: 7, End: 12}, plan.Window)
	assert.Equal(t, []ItemKind{
		KindFirst, KindPage, KindGap,
		KindPage, KindPage, KindPage, KindPage, KindPage, KindPage,
		KindGap, KindPage, KindLast,
	}, kinds(plan.Items))
	assert.Equal(t, []int{1, 7, 8, 9, 10, 11, 12, 20}, plan.Pages())

	gap := plan.Items[2]
	assert.Equal(t, "…", gap.Label)
	assert.Empty(t, gap.Href)
	assert.Contains(t, gap.Class, "border-0")
}

func TestNewPlan_NearEndHidesTrailingGap(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowFirstNumberedPage = true
	opts.ShowLastNumberedPage = true

	plan, err := NewPlan(State{CurrentPage: 19, PageSize: 10, TotalRecords: 200, MaxDisplayedPages: 5, GapSize: 3}, opts)
	require.NoError(t, err)

	assert.Equal(t, &Window{Start: 15, End: 20}, plan.Window)
	assert.Equal(t, []int{1, 15, 16, 17, 18, 19, 20}, plan.Pages())
	assert.Equal(t, KindGap, plan.Items[2].Kind)
	assert.NotEqual(t, KindGap, plan.Items[len(plan.Items)-2].Kind)
}

func TestNewPlan_NearStartHidesLeadingGap(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowFirstNumberedPage = true
	opts.ShowLastNumberedPage = true

	plan, err := NewPlan(State{CurrentPage: 2, PageSize: 10, TotalRecords: 200, MaxDisplayedPages: 5, GapSize: 3}, opts)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 20}, plan.Pages())
	assert.Equal(t, KindPage, plan.Items[1].Kind)
}

func TestNewPlan_FirstLastHiddenWhenAllPagesFit(t *testing.T) {
	opts := DefaultOptions()
	opts.Query = "q=go&p=4"

	plan, err := NewPlan(State{CurrentPage: 4, PageSize: 10, TotalRecords: 100, MaxDisplayedPages: 10, GapSize: 3}, opts)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, plan.Pages())
	for _, it := range plan.Items {
		assert.False(t, it.Kind.IsJump(), "unexpected jump item %s", it.Kind)
	}
	assert.Equal(t, "?q=go&p=5&s=10", plan.Items[4].Href)
}

func TestNewPlan_ExplicitFirstLast(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowFirstLast = true

	plan, err := NewPlan(State{CurrentPage: 3, PageSize: 10, TotalRecords: 30, MaxDisplayedPages: 10}, opts)
	require.NoError(t, err)

	assert.Equal(t, KindFirst, plan.Items[0].Kind)
	last := plan.Items[len(plan.Items)-1]
	assert.Equal(t, KindLast, last.Kind)
	assert.True(t, last.Disabled, "last link on the last page is disabled")
}

func TestNewPlan_LastPageSaturatesNext(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowPrevNext = true

	plan, err := NewPlan(State{CurrentPage: 5, PageSize: 20, TotalRecords: 100, MaxDisplayedPages: 10}, opts)
	require.NoError(t, err)

	assert.Equal(t, 5, plan.NextPage)
	assert.Equal(t, 4, plan.PrevPage)
	assert.False(t, plan.HasNext)

	var next Item
	for _, it := range plan.Items {
		if it.Kind == KindNext {
			next = it
		}
	}
	assert.Equal(t, 5, next.TargetPage)
	assert.True(t, next.Disabled)
}

func TestNewPlan_NeverPastTotalPages(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowFirstNumberedPage = true
	opts.ShowLastNumberedPage = true
	opts.ShowPrevNext = true

	for _, clamp := range []bool{false, true} {
		opts.ClampWindow = clamp
		for records := 1; records <= 120; records += 7 {
			for maxPages := 1; maxPages <= 8; maxPages++ {
				state := State{PageSize: 5, TotalRecords: records, MaxDisplayedPages: maxPages, GapSize: 2}
				total := state.TotalPages()
				for cur := 1; cur <= total; cur++ {
					state.CurrentPage = cur
					plan, err := NewPlan(state, opts)
					require.NoError(t, err)
					for _, it := range plan.Items {
						assert.LessOrEqual(t, it.TargetPage, total)
						if it.Disabled || it.Current {
							assert.Empty(t, it.Href)
						}
					}
				}
			}
		}
	}
}

func TestNewPlan_NoRecords(t *testing.T) {
	plan, err := NewPlan(State{CurrentPage: 1, PageSize: 10, TotalRecords: 0, MaxDisplayedPages: 5}, DefaultOptions())
	require.NoError(t, err)

	assert.True(t, plan.Empty())
	assert.Nil(t, plan.Window)
	assert.Empty(t, plan.Items)
	assert.Nil(t, plan.Info)
}

func TestNewPlan_InvalidState(t *testing.T) {
	tests := []struct {
		name  string
		state State
		field string
	}{
		{name: "zero page", state: State{CurrentPage: 0, PageSize: 10, MaxDisplayedPages: 5}, field: "page"},
		{name: "zero size", state: State{CurrentPage: 1, PageSize: 0, MaxDisplayedPages: 5}, field: "size"},
		{name: "negative total", state: State{CurrentPage: 1, PageSize: 10, TotalRecords: -1, MaxDisplayedPages: 5}, field: "total"},
		{name: "zero max", state: State{CurrentPage: 1, PageSize: 10, MaxDisplayedPages: 0}, field: "max"},
		{name: "negative gap", state: State{CurrentPage: 1, PageSize: 10, MaxDisplayedPages: 5, GapSize: -2}, field: "gap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlan(tt.state, DefaultOptions())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))

			var iae *InvalidArgumentError
			require.True(t, errors.As(err, &iae))
			assert.Contains(t, iae.Fields, tt.field)
		})
	}
}

func TestNewPlan_Info(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowTotalPages = true
	opts.ShowTotalRecords = true

	plan, err := NewPlan(State{CurrentPage: 1, PageSize: 25, TotalRecords: 12500, MaxDisplayedPages: 10}, opts)
	require.NoError(t, err)

	require.NotNil(t, plan.Info)
	assert.Equal(t, "500 pages", plan.Info.TotalPages.Text)
	assert.Equal(t, "12,500 records", plan.Info.TotalRecords.Text)
	assert.Equal(t, "badge badge-info", plan.Info.TotalRecords.Class)
}

func TestNewPlan_PageSizeNav(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowPageSizeNav = true

	plan, err := NewPlan(State{CurrentPage: 1, PageSize: 20, TotalRecords: 100, MaxDisplayedPages: 10}, opts)
	require.NoError(t, err)

	require.NotNil(t, plan.PageSizeNav)
	assert.Equal(t, "s", plan.PageSizeNav.Key)
	assert.Equal(t, "get", plan.PageSizeNav.Method)
	assert.Equal(t, []PageSizeOption{
		{Size: 10},
		{Size: 20, Selected: true},
		{Size: 30},
	}, plan.PageSizeNav.Options)
}

func TestState_Paging(t *testing.T) {
	s := State{CurrentPage: 3, PageSize: 25, TotalRecords: 51}
	assert.Equal(t, 3, s.TotalPages())
	assert.Equal(t, 50, s.Offset())
	assert.Equal(t, 25, s.Limit())

	assert.Equal(t, 0, State{PageSize: 10}.TotalPages())
	assert.Equal(t, 0, State{CurrentPage: 1, PageSize: 10}.Offset())

	assert.Equal(t, math.MaxInt/10+1, State{PageSize: 10, TotalRecords: math.MaxInt}.TotalPages())
	assert.Equal(t, math.MaxInt, State{PageSize: 1, TotalRecords: math.MaxInt}.TotalPages())
	assert.Equal(t, 1, State{PageSize: math.MaxInt, TotalRecords: math.MaxInt}.TotalPages())
}

func TestNewPlan_HugeTotals(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowPrevNext = true
	opts.ShowLastNumberedPage = true

	tests := []struct {
		name  string
		state State
	}{
		{"max records", State{CurrentPage: 1, PageSize: 10, TotalRecords: math.MaxInt, MaxDisplayedPages: 5, GapSize: 3}},
		{"max page", State{CurrentPage: math.MaxInt, PageSize: 1, TotalRecords: math.MaxInt, MaxDisplayedPages: 5, GapSize: 3}},
		{"middle of max pages", State{CurrentPage: math.MaxInt / 2, PageSize: 1, TotalRecords: math.MaxInt, MaxDisplayedPages: 7, GapSize: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := NewPlan(tt.state, opts)
			require.NoError(t, err)

			require.Positive(t, plan.TotalPages)
			require.NotNil(t, plan.Window)
			assert.GreaterOrEqual(t, plan.Window.Start, 1)
			assert.LessOrEqual(t, plan.Window.Start, plan.Window.End)
			assert.LessOrEqual(t, plan.Window.End, plan.TotalPages)
			assert.Positive(t, plan.NextPage)
			for _, it := range plan.Items {
				if it.Kind != KindGap {
					assert.GreaterOrEqual(t, it.TargetPage, 1)
					assert.LessOrEqual(t, it.TargetPage, plan.TotalPages)
				}
			}
		})
	}
}

func TestNewPlan_PagePastEndIsClamped(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowPrevNext = true

	plan, err := NewPlan(State{CurrentPage: 50, PageSize: 10, TotalRecords: 100, MaxDisplayedPages: 5, GapSize: 3}, opts)
	require.NoError(t, err)

	assert.Equal(t, 10, plan.State.CurrentPage)
	assert.Equal(t, 9, plan.PrevPage)
	assert.Equal(t, 10, plan.NextPage)
	assert.False(t, plan.HasNext)
	assert.Equal(t, 90, plan.Offset)
	assert.Equal(t, 10, plan.Limit)
	for _, it := range plan.Items {
		assert.LessOrEqual(t, it.TargetPage, plan.TotalPages, "%s item", it.Kind)
	}
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10}, plan.Pages())
}

func TestNewPlan_ZeroGapDoesNotRepeatEdgePages(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowFirstNumberedPage = true
	opts.ShowLastNumberedPage = true

	// window starts at page 1 in the middle branch
	plan, err := NewPlan(State{CurrentPage: 2, PageSize: 1, TotalRecords: 10, MaxDisplayedPages: 2, GapSize: 0}, opts)
	require.NoError(t, err)
	assert.Equal(t, &Window{Start: 1, End: 3}, plan.Window)
	assert.Equal(t, []int{1, 2, 3, 10}, plan.Pages())

	plan, err = NewPlan(State{CurrentPage: 10, PageSize: 1, TotalRecords: 10, MaxDisplayedPages: 2, GapSize: 0}, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 8, 9, 10}, plan.Pages())
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1,234,567 records", FormatCount(1234567, "records"))
	assert.Equal(t, "7", FormatCount(7, ""))
}
