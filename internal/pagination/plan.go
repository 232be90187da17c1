package pagination

import (
	"strconv"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ItemKind identifies a navigation item.
type ItemKind string

const (
	KindFirst    ItemKind = "first"
	KindPrevious ItemKind = "previous"
	KindPage     ItemKind = "page"
	KindGap      ItemKind = "gap"
	KindNext     ItemKind = "next"
	KindLast     ItemKind = "last"
)

// IsJump reports whether the kind is a first/previous/next/last link.
func (k ItemKind) IsJump() bool {
	switch k {
	case KindFirst, KindPrevious, KindNext, KindLast:
		return true
	}
	return false
}

// Item is one entry of the navigation bar, in display order.
type Item struct {
	Kind         ItemKind `json:"kind"`
	TargetPage   int      `json:"target_page,omitempty"`
	Label        string   `json:"label"`
	ScreenReader string   `json:"screen_reader,omitempty"`
	Current      bool     `json:"current,omitempty"`
	Disabled     bool     `json:"disabled,omitempty"`
	Href         string   `json:"href,omitempty"`
	Class        string   `json:"class"`
}

// InfoLabel is a formatted count such as "1,250 records".
type InfoLabel struct {
	Text  string `json:"text"`
	Class string `json:"class"`
}

// Info holds the optional total pages/records labels.
type Info struct {
	TotalPages   *InfoLabel `json:"total_pages,omitempty"`
	TotalRecords *InfoLabel `json:"total_records,omitempty"`
}

// PageSizeOption is one choice of the page size selector.
type PageSizeOption struct {
	Size     int  `json:"size"`
	Selected bool `json:"selected,omitempty"`
}

// PageSizeNav describes the page size selector form.
type PageSizeNav struct {
	Label    string           `json:"label"`
	Method   string           `json:"method"`
	Key      string           `json:"key"`
	OnChange string           `json:"on_change"`
	Options  []PageSizeOption `json:"options"`
}

// Plan is everything a view needs to draw a paging control.
type Plan struct {
	State       State        `json:"state"`
	TotalPages  int          `json:"total_pages"`
	HasPrevious bool         `json:"has_previous"`
	HasNext     bool         `json:"has_next"`
	Offset      int          `json:"offset"`
	Limit       int          `json:"limit"`
	PrevPage    int          `json:"prev_page,omitempty"`
	NextPage    int          `json:"next_page,omitempty"`
	Window      *Window      `json:"window,omitempty"`
	Items       []Item       `json:"items"`
	Info        *Info        `json:"info,omitempty"`
	PageSizeNav *PageSizeNav `json:"page_size_nav,omitempty"`
}

// Empty reports whether there are no pages to navigate.
func (p *Plan) Empty() bool { return p.TotalPages == 0 }

// Pages returns the target pages of the numbered items, in order.
func (p *Plan) Pages() []int {
	var pages []int
	for _, it := range p.Items {
		if it.Kind == KindPage {
			pages = append(pages, it.TargetPage)
		}
	}
	return pages
}

// NewPlan validates state and lays out the navigation items.
// A state with no records yields a plan without items or window. A current
// page past the last page is moved to the last page.
func NewPlan(state State, opts Options) (*Plan, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}

	total := state.TotalPages()
	if total > 0 && state.CurrentPage > total {
		state.CurrentPage = total
	}
	cur := state.CurrentPage
	maxPages := state.MaxDisplayedPages
	gapSize := state.GapSize

	plan := &Plan{State: state, TotalPages: total, Items: []Item{}}
	if total == 0 {
		return plan, nil
	}

	plan.Offset = state.Offset()
	plan.Limit = state.Limit()
	plan.PrevPage = max(1, cur-1)
	plan.NextPage = total
	if cur < total {
		plan.NextPage = cur + 1
	}
	plan.HasPrevious = cur > 1
	plan.HasNext = cur < total

	b := itemBuilder{
		current: cur,
		opts:    opts,
		links: LinkBuilder{
			Query:    opts.Query,
			PageKey:  opts.PageKey,
			SizeKey:  opts.SizeKey,
			PageSize: state.PageSize,
		},
	}

	showFirstLast := opts.ShowFirstLast || total > maxPages

	if showFirstLast {
		b.jump(KindFirst, 1, opts.TextFirst, opts.SrTextFirst)
	}
	if opts.ShowPrevNext {
		b.jump(KindPrevious, plan.PrevPage, opts.TextPrevious, opts.SrTextPrevious)
	}

	var w Window
	if opts.ClampWindow {
		w = ComputeWindowClamped(cur, total, maxPages)
	} else {
		w = ComputeWindow(cur, total, maxPages)
	}
	plan.Window = &w

	if opts.ShowFirstNumberedPage &&
		!w.Contains(1) &&
		w.Start > gapSize &&
		total > maxPages &&
		cur >= maxPages {
		b.page(1)
		b.gap()
	}

	shown := Window{Start: w.Start, End: min(w.End, total)}
	for k := range shown.Len() {
		b.page(shown.Start + k)
	}

	if opts.ShowLastNumberedPage &&
		!w.Contains(total) &&
		total-w.End >= gapSize &&
		cur-gapSize <= total-maxPages {
		b.gap()
		b.page(total)
	}

	if opts.ShowPrevNext {
		b.jump(KindNext, plan.NextPage, opts.TextNext, opts.SrTextNext)
	}
	if showFirstLast {
		b.jump(KindLast, total, opts.TextLast, opts.SrTextLast)
	}

	plan.Items = b.items
	plan.Info = newInfo(state, total, opts)
	plan.PageSizeNav = newPageSizeNav(state, opts)

	return plan, nil
}

type itemBuilder struct {
	current int
	opts    Options
	links   LinkBuilder
	items   []Item
}

// jump appends a first/previous/next/last link. A jump pointing at the
// current page stays in the bar but is disabled.
func (b *itemBuilder) jump(kind ItemKind, target int, text, sr string) {
	it := Item{
		Kind:         kind,
		TargetPage:   target,
		Label:        text,
		ScreenReader: sr,
		Class:        b.opts.ClassPageItem,
	}
	if target == b.current {
		it.Disabled = true
		it.Class = twmerge.Merge(b.opts.ClassPageItem, b.opts.ClassDisabledJumpingButton)
	} else {
		it.Href = b.links.Href(target)
	}
	b.items = append(b.items, it)
}

func (b *itemBuilder) page(n int) {
	it := Item{
		Kind:       KindPage,
		TargetPage: n,
		Label:      strconv.Itoa(n),
		Class:      b.opts.ClassPageItem,
	}
	if n == b.current {
		it.Current = true
		it.Class = twmerge.Merge(b.opts.ClassPageItem, b.opts.ClassActivePage)
	} else {
		it.Href = b.links.Href(n)
	}
	b.items = append(b.items, it)
}

func (b *itemBuilder) gap() {
	b.items = append(b.items, Item{
		Kind:  KindGap,
		Label: b.opts.TextGap,
		Class: twmerge.Merge(b.opts.ClassPageItem, b.opts.ClassGap),
	})
}

func newInfo(state State, total int, opts Options) *Info {
	if !opts.ShowTotalPages && !opts.ShowTotalRecords {
		return nil
	}

	info := &Info{}
	if opts.ShowTotalPages {
		info.TotalPages = &InfoLabel{
			Text:  FormatCount(total, opts.TextTotalPages),
			Class: opts.ClassTotalPages,
		}
	}
	if opts.ShowTotalRecords {
		info.TotalRecords = &InfoLabel{
			Text:  FormatCount(state.TotalRecords, opts.TextTotalRecords),
			Class: opts.ClassTotalRecords,
		}
	}
	return info
}

func newPageSizeNav(state State, opts Options) *PageSizeNav {
	if !opts.ShowPageSizeNav {
		return nil
	}

	key := opts.SizeKey
	if key == "" {
		key = DefaultSizeKey
	}

	nav := &PageSizeNav{
		Label:    opts.TextPageSize,
		Method:   opts.PageSizeNavFormMethod,
		Key:      key,
		OnChange: opts.PageSizeNavOnChange,
		Options:  make([]PageSizeOption, 0, max(0, opts.PageSizeNavMaxItems)),
	}
	for i := 1; i <= opts.PageSizeNavMaxItems; i++ {
		size := i * opts.PageSizeNavBlockSize
		nav.Options = append(nav.Options, PageSizeOption{
			Size:     size,
			Selected: size == state.PageSize,
		})
	}
	return nav
}

// FormatCount renders n with English digit grouping followed by noun,
// e.g. "12,500 records".
func FormatCount(n int, noun string) string {
	p := message.NewPrinter(language.English)
	if noun == "" {
		return p.Sprintf("%d", n)
	}
	return p.Sprintf("%d %s", n, noun)
}
