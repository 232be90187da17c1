package settings

import (
	"github.com/DukeRupert/pagekit/internal/pagination"
)

// Profile keys.
const (
	KeyPageNo            = "page-no"
	KeyPageSize          = "page-size"
	KeyTotalRecords      = "total-records"
	KeyMaxDisplayedPages = "max-displayed-pages"
	KeyGapSize           = "gap-size"

	KeyQueryStringKeyPageNo   = "query-string-key-page-no"
	KeyQueryStringKeyPageSize = "query-string-key-page-size"
	KeyQueryStringValue       = "query-string-value"

	KeyShowFirstLast         = "show-first-last"
	KeyShowPrevNext          = "show-prev-next"
	KeyShowPageSizeNav       = "show-page-size-nav"
	KeyShowTotalPages        = "show-total-pages"
	KeyShowTotalRecords      = "show-total-records"
	KeyShowFirstNumberedPage = "show-first-numbered-page"
	KeyShowLastNumberedPage  = "show-last-numbered-page"
	KeyClampWindow           = "clamp-window"

	KeyTextPageSize     = "text-page-size"
	KeyTextFirst        = "text-first"
	KeyTextLast         = "text-last"
	KeyTextPrevious     = "text-previous"
	KeyTextNext         = "text-next"
	KeyTextGap          = "text-gap"
	KeyTextTotalPages   = "text-total-pages"
	KeyTextTotalRecords = "text-total-records"

	KeySrTextFirst    = "sr-text-first"
	KeySrTextLast     = "sr-text-last"
	KeySrTextPrevious = "sr-text-previous"
	KeySrTextNext     = "sr-text-next"

	KeyClassPageItem              = "class-page-item"
	KeyClassGap                   = "class-gap"
	KeyClassActivePage            = "class-active-page"
	KeyClassDisabledJumpingButton = "class-disabled-jumping-button"
	KeyClassTotalPages            = "class-total-pages"
	KeyClassTotalRecords          = "class-total-records"

	KeyPageSizeNavFormMethod = "page-size-nav-form-method"
	KeyPageSizeNavBlockSize  = "page-size-nav-block-size"
	KeyPageSizeNavMaxItems   = "page-size-nav-max-items"
	KeyPageSizeNavOnChange   = "page-size-nav-on-change"
)

// Fallbacks for the paging state.
const (
	FallbackPageNo            = 1
	FallbackPageSize          = 10
	FallbackTotalRecords      = 0
	FallbackMaxDisplayedPages = 10
	FallbackGapSize           = 3
)

// StateOption adjusts how ResolveState treats explicit values.
type StateOption func(*stateResolution)

type stateResolution struct {
	gapSet bool
}

// ExplicitGap marks the explicit gap size as set, so a gap of 0 is kept
// instead of being resolved from the profile.
func ExplicitGap() StateOption {
	return func(o *stateResolution) { o.gapSet = true }
}

// ResolveState fills every non-positive field of explicit from the profile
// and then from the fallbacks. A current page of 1 also counts as unset,
// so a profile may start lists on a later page.
func ResolveState(r Resolver, profile string, explicit pagination.State, opts ...StateOption) pagination.State {
	if profile == "" {
		profile = DefaultProfile
	}
	var res stateResolution
	for _, opt := range opts {
		opt(&res)
	}

	s := explicit
	if s.CurrentPage <= 1 {
		s.CurrentPage = Int(r, profile, KeyPageNo, FallbackPageNo)
	}
	if s.PageSize <= 0 {
		s.PageSize = Int(r, profile, KeyPageSize, FallbackPageSize)
	}
	if s.TotalRecords <= 0 {
		s.TotalRecords = Int(r, profile, KeyTotalRecords, FallbackTotalRecords)
	}
	if s.MaxDisplayedPages <= 0 {
		s.MaxDisplayedPages = Int(r, profile, KeyMaxDisplayedPages, FallbackMaxDisplayedPages)
	}
	if s.GapSize < 0 || (s.GapSize == 0 && !res.gapSet) {
		s.GapSize = Int(r, profile, KeyGapSize, FallbackGapSize)
	}
	return s
}

// Overrides carries values set explicitly by the caller. Empty strings,
// non-positive ints and nil flags are unset.
type Overrides struct {
	Query   string
	PageKey string
	SizeKey string

	ShowFirstLast         *bool
	ShowPrevNext          *bool
	ShowPageSizeNav       *bool
	ShowTotalPages        *bool
	ShowTotalRecords      *bool
	ShowFirstNumberedPage *bool
	ShowLastNumberedPage  *bool
	ClampWindow           *bool

	TextPageSize     string
	TextFirst        string
	TextLast         string
	TextPrevious     string
	TextNext         string
	TextGap          string
	TextTotalPages   string
	TextTotalRecords string

	SrTextFirst    string
	SrTextLast     string
	SrTextPrevious string
	SrTextNext     string

	ClassPageItem              string
	ClassGap                   string
	ClassActivePage            string
	ClassDisabledJumpingButton string
	ClassTotalPages            string
	ClassTotalRecords          string

	PageSizeNavFormMethod string
	PageSizeNavBlockSize  int
	PageSizeNavMaxItems   int
	PageSizeNavOnChange   string
}

// ResolveOptions builds the display options for a profile.
func ResolveOptions(r Resolver, profile string, o Overrides) pagination.Options {
	if profile == "" {
		profile = DefaultProfile
	}
	d := pagination.DefaultOptions()
	str := func(explicit, key, fallback string) string {
		if explicit != "" {
			return explicit
		}
		return String(r, profile, key, fallback)
	}
	flag := func(explicit *bool, key string, fallback bool) bool {
		if explicit != nil {
			return *explicit
		}
		return Bool(r, profile, key, fallback)
	}
	num := func(explicit int, key string, fallback int) int {
		if explicit > 0 {
			return explicit
		}
		return Int(r, profile, key, fallback)
	}

	return pagination.Options{
		Query:   str(o.Query, KeyQueryStringValue, d.Query),
		PageKey: str(o.PageKey, KeyQueryStringKeyPageNo, d.PageKey),
		SizeKey: str(o.SizeKey, KeyQueryStringKeyPageSize, d.SizeKey),

		ShowFirstLast:         flag(o.ShowFirstLast, KeyShowFirstLast, d.ShowFirstLast),
		ShowPrevNext:          flag(o.ShowPrevNext, KeyShowPrevNext, d.ShowPrevNext),
		ShowPageSizeNav:       flag(o.ShowPageSizeNav, KeyShowPageSizeNav, d.ShowPageSizeNav),
		ShowTotalPages:        flag(o.ShowTotalPages, KeyShowTotalPages, d.ShowTotalPages),
		ShowTotalRecords:      flag(o.ShowTotalRecords, KeyShowTotalRecords, d.ShowTotalRecords),
		ShowFirstNumberedPage: flag(o.ShowFirstNumberedPage, KeyShowFirstNumberedPage, d.ShowFirstNumberedPage),
		ShowLastNumberedPage:  flag(o.ShowLastNumberedPage, KeyShowLastNumberedPage, d.ShowLastNumberedPage),
		ClampWindow:           flag(o.ClampWindow, KeyClampWindow, d.ClampWindow),

		TextPageSize:     str(o.TextPageSize, KeyTextPageSize, d.TextPageSize),
		TextFirst:        str(o.TextFirst, KeyTextFirst, d.TextFirst),
		TextLast:         str(o.TextLast, KeyTextLast, d.TextLast),
		TextPrevious:     str(o.TextPrevious, KeyTextPrevious, d.TextPrevious),
		TextNext:         str(o.TextNext, KeyTextNext, d.TextNext),
		TextGap:          str(o.TextGap, KeyTextGap, d.TextGap),
		TextTotalPages:   str(o.TextTotalPages, KeyTextTotalPages, d.TextTotalPages),
		TextTotalRecords: str(o.TextTotalRecords, KeyTextTotalRecords, d.TextTotalRecords),

		SrTextFirst:    str(o.SrTextFirst, KeySrTextFirst, d.SrTextFirst),
		SrTextLast:     str(o.SrTextLast, KeySrTextLast, d.SrTextLast),
		SrTextPrevious: str(o.SrTextPrevious, KeySrTextPrevious, d.SrTextPrevious),
		SrTextNext:     str(o.SrTextNext, KeySrTextNext, d.SrTextNext),

		ClassPageItem:              str(o.ClassPageItem, KeyClassPageItem, d.ClassPageItem),
		ClassGap:                   str(o.ClassGap, KeyClassGap, d.ClassGap),
		ClassActivePage:            str(o.ClassActivePage, KeyClassActivePage, d.ClassActivePage),
		ClassDisabledJumpingButton: str(o.ClassDisabledJumpingButton, KeyClassDisabledJumpingButton, d.ClassDisabledJumpingButton),
		ClassTotalPages:            str(o.ClassTotalPages, KeyClassTotalPages, d.ClassTotalPages),
		ClassTotalRecords:          str(o.ClassTotalRecords, KeyClassTotalRecords, d.ClassTotalRecords),

		PageSizeNavFormMethod: str(o.PageSizeNavFormMethod, KeyPageSizeNavFormMethod, d.PageSizeNavFormMethod),
		PageSizeNavBlockSize:  num(o.PageSizeNavBlockSize, KeyPageSizeNavBlockSize, d.PageSizeNavBlockSize),
		PageSizeNavMaxItems:   num(o.PageSizeNavMaxItems, KeyPageSizeNavMaxItems, d.PageSizeNavMaxItems),
		PageSizeNavOnChange:   str(o.PageSizeNavOnChange, KeyPageSizeNavOnChange, d.PageSizeNavOnChange),
	}
}
