package pagination

// Options controls which navigation items a plan contains and how they are
// labelled. Use DefaultOptions as the base and override from there.
type Options struct {
	// Query is the current request's query string. Every generated link
	// preserves its unrelated parameters.
	Query   string
	PageKey string // e.g. "p"
	SizeKey string // e.g. "s"

	// ShowFirstLast is forced on when there are more pages than
	// MaxDisplayedPages.
	ShowFirstLast         bool
	ShowPrevNext          bool
	ShowFirstNumberedPage bool
	ShowLastNumberedPage  bool
	ShowTotalPages        bool
	ShowTotalRecords      bool
	ShowPageSizeNav       bool

	// ClampWindow caps the middle-branch window end at the total page count.
	ClampWindow bool

	TextFirst        string
	TextLast         string
	TextPrevious     string
	TextNext         string
	TextGap          string
	TextTotalPages   string
	TextTotalRecords string
	TextPageSize     string

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

// DefaultOptions returns the hard-coded fallbacks used when neither the
// caller nor a settings profile provides a value.
func DefaultOptions() Options {
	return Options{
		PageKey: DefaultPageKey,
		SizeKey: DefaultSizeKey,

		TextFirst:        "«",
		TextLast:         "»",
		TextPrevious:     "‹",
		TextNext:         "›",
		TextGap:          "…",
		TextTotalPages:   "pages",
		TextTotalRecords: "records",
		TextPageSize:     "Items per page",

		SrTextFirst:    "First",
		SrTextLast:     "Last",
		SrTextPrevious: "Previous",
		SrTextNext:     "Next",

		ClassPageItem:              "page-item",
		ClassGap:                   "border-0",
		ClassActivePage:            "active",
		ClassDisabledJumpingButton: "disabled",
		ClassTotalPages:            "badge badge-secondary",
		ClassTotalRecords:          "badge badge-info",

		PageSizeNavFormMethod: "get",
		PageSizeNavBlockSize:  10,
		PageSizeNavMaxItems:   3,
		PageSizeNavOnChange:   "this.form.submit();",
	}
}
