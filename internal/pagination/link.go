package pagination

import (
	"strconv"
	"strings"
)

// Default query string keys for the page number and page size.
const (
	DefaultPageKey = "p"
	DefaultSizeKey = "s"
)

// QueryParam is a single "&"-separated token of a raw query string.
// Tokens without "=" keep an empty Key and are carried through in Raw.
type QueryParam struct {
	Key   string
	Value string
	Raw   string
}

// QueryParams is an ordered list of query tokens.
type QueryParams []QueryParam

// ParseQuery splits a raw query string, with or without its leading "?",
// into tokens. Values are neither decoded nor validated. Empty tokens
// are dropped.
func ParseQuery(raw string) QueryParams {
	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, "&")
	params := make(QueryParams, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		param := QueryParam{Raw: part}
		if key, value, ok := strings.Cut(part, "="); ok {
			param.Key = key
			param.Value = value
		}
		params = append(params, param)
	}
	return params
}

// Encode joins the tokens back into a query string prefixed with "?".
func (q QueryParams) Encode() string {
	raws := make([]string, len(q))
	for i, p := range q {
		raws[i] = p.Raw
	}
	return "?" + strings.Join(raws, "&")
}

// Set replaces the first token with the given key in place and drops any
// later tokens with that key. When no token matches, key=value is appended.
func (q QueryParams) Set(key, value string) QueryParams {
	token := QueryParam{Key: key, Value: value, Raw: key + "=" + value}

	out := make(QueryParams, 0, len(q)+1)
	found := false
	for _, p := range q {
		if !hasKey(p, key) {
			out = append(out, p)
			continue
		}
		if !found {
			out = append(out, token)
			found = true
		}
	}
	if !found {
		out = append(out, token)
	}
	return out
}

// hasKey matches on the "key=" prefix of the raw token, case-sensitively.
func hasKey(p QueryParam, key string) bool {
	return strings.HasPrefix(p.Raw, key+"=")
}

// BuildLink rewrites existingQuery so it points at targetPage with the
// given pageSize. Every other token keeps its position and text; the page
// and size tokens are replaced in place or appended. Empty keys fall back
// to DefaultPageKey and DefaultSizeKey.
func BuildLink(targetPage, pageSize int, existingQuery, pageKey, sizeKey string) string {
	if pageKey == "" {
		pageKey = DefaultPageKey
	}
	if sizeKey == "" {
		sizeKey = DefaultSizeKey
	}

	params := ParseQuery(existingQuery).
		Set(pageKey, strconv.Itoa(targetPage)).
		Set(sizeKey, strconv.Itoa(pageSize))

	return params.Encode()
}

// LinkBuilder binds the query and keys shared by every link of one render.
type LinkBuilder struct {
	Query    string
	PageKey  string
	SizeKey  string
	PageSize int
}

// Href returns the query string pointing at page.
func (b LinkBuilder) Href(page int) string {
	return BuildLink(page, b.PageSize, b.Query, b.PageKey, b.SizeKey)
}
