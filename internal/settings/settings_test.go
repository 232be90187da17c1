package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DukeRupert/pagekit/internal/pagination"
)

const profilesDoc = `
profiles:
  default:
    page-size: 25
    max-displayed-pages: 7
    show-prev-next: true
    text-first: First page
  admin:
    page-size: 100
    gap-size: 2
    show-total-records: "true"
    page-size-nav-block-size: 50
    max-displayed-pages: not-a-number
`

func mustParse(t *testing.T) *YAMLSource {
	t.Helper()
	src, err := ParseYAML([]byte(profilesDoc))
	require.NoError(t, err)
	return src
}

func TestYAMLSource_Lookup(t *testing.T) {
	src := mustParse(t)

	v, ok := src.Lookup("default", "page-size")
	assert.True(t, ok)
	assert.Equal(t, "25", v)

	v, ok = src.Lookup("default", "show-prev-next")
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	_, ok = src.Lookup("default", "gap-size")
	assert.False(t, ok)

	_, ok = src.Lookup("missing", "page-size")
	assert.False(t, ok)

	assert.ElementsMatch(t, []string{"default", "admin"}, src.Profiles())
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ParseYAML([]byte("profiles: [not, a, map"))
	assert.Error(t, err)
}

func TestParseYAML_NoProfiles(t *testing.T) {
	src, err := ParseYAML([]byte("other: 1\n"))
	require.NoError(t, err)
	_, ok := src.Lookup("default", "page-size")
	assert.False(t, ok)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paging.yaml")
	require.NoError(t, os.WriteFile(path, []byte(profilesDoc), 0o600))

	src, err := LoadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, 100, Int(src, "admin", KeyPageSize, 0))

	_, err = LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvSource(t *testing.T) {
	env := map[string]string{
		"PAGING_DEFAULT_PAGE_SIZE":    "40",
		"PAGING_ADMIN_SHOW_PREV_NEXT": "false",
		"PAGING_DEFAULT_TEXT_NEXT":    "",
	}
	src := &EnvSource{Prefix: "paging", lookup: func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}}

	v, ok := src.Lookup("default", "page-size")
	assert.True(t, ok)
	assert.Equal(t, "40", v)

	assert.False(t, Bool(src, "admin", KeyShowPrevNext, true))

	_, ok = src.Lookup("default", "text-next")
	assert.False(t, ok, "empty variables are unset")
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "PAGING_DEFAULT_PAGE_SIZE", EnvName("paging", "default", "page-size"))
	assert.Equal(t, "ADMIN_GAP_SIZE", EnvName("", "admin", "gap-size"))
}

func TestChain_FirstHitWins(t *testing.T) {
	first := ResolverFunc(func(profile, key string) (string, bool) {
		if key == KeyPageSize {
			return "15", true
		}
		return "", false
	})
	chain := Chain{nil, first, mustParse(t)}

	assert.Equal(t, 15, Int(chain, "default", KeyPageSize, 0))
	assert.Equal(t, 7, Int(chain, "default", KeyMaxDisplayedPages, 0))
	assert.Equal(t, 3, Int(chain, "default", KeyGapSize, 3))
}

func TestTypedLookups_BadValuesFallBack(t *testing.T) {
	src := mustParse(t)

	assert.Equal(t, 10, Int(src, "admin", KeyMaxDisplayedPages, 10))
	assert.True(t, Bool(src, "admin", KeyShowTotalRecords, false))
	assert.Equal(t, "x", String(Empty, "admin", KeyTextFirst, "x"))
}

func TestResolveState(t *testing.T) {
	src := mustParse(t)

	tests := []struct {
		name     string
		profile  string
		explicit pagination.State
		want     pagination.State
	}{
		{
			name:    "profile fills unset fields",
			profile: "default",
			want:    pagination.State{CurrentPage: 1, PageSize: 25, TotalRecords: 0, MaxDisplayedPages: 7, GapSize: 3},
		},
		{
			name:    "empty profile name means default",
			profile: "",
			want:    pagination.State{CurrentPage: 1, PageSize: 25, TotalRecords: 0, MaxDisplayedPages: 7, GapSize: 3},
		},
		{
			name:     "explicit values win",
			profile:  "admin",
			explicit: pagination.State{CurrentPage: 4, PageSize: 5, TotalRecords: 80, MaxDisplayedPages: 3, GapSize: 1},
			want:     pagination.State{CurrentPage: 4, PageSize: 5, TotalRecords: 80, MaxDisplayedPages: 3, GapSize: 1},
		},
		{
			name:    "unparsable profile value falls back",
			profile: "admin",
			want:    pagination.State{CurrentPage: 1, PageSize: 100, TotalRecords: 0, MaxDisplayedPages: 10, GapSize: 2},
		},
		{
			name:    "unknown profile uses hard fallbacks",
			profile: "reports",
			want:    pagination.State{CurrentPage: 1, PageSize: 10, TotalRecords: 0, MaxDisplayedPages: 10, GapSize: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveState(src, tt.profile, tt.explicit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveState_ExplicitGap(t *testing.T) {
	src := mustParse(t)

	got := ResolveState(src, "default", pagination.State{GapSize: 0}, ExplicitGap())
	assert.Equal(t, 0, got.GapSize)

	got = ResolveState(src, "default", pagination.State{GapSize: 0})
	assert.Equal(t, 3, got.GapSize, "zero without ExplicitGap is unset")

	got = ResolveState(src, "default", pagination.State{GapSize: -2}, ExplicitGap())
	assert.Equal(t, 3, got.GapSize, "negative gap is never explicit")
}

func TestResolveOptions(t *testing.T) {
	src := mustParse(t)

	t.Run("profile values", func(t *testing.T) {
		opts := ResolveOptions(src, "default", Overrides{})
		assert.True(t, opts.ShowPrevNext)
		assert.Equal(t, "First page", opts.TextFirst)
		assert.Equal(t, "»", opts.TextLast)
		assert.Equal(t, "p", opts.PageKey)
		assert.Equal(t, "s", opts.SizeKey)
	})

	t.Run("explicit values win", func(t *testing.T) {
		off := false
		opts := ResolveOptions(src, "default", Overrides{
			ShowPrevNext: &off,
			TextFirst:    "<<",
			PageKey:      "page",
			Query:        "q=go",
		})
		assert.False(t, opts.ShowPrevNext)
		assert.Equal(t, "<<", opts.TextFirst)
		assert.Equal(t, "page", opts.PageKey)
		assert.Equal(t, "q=go", opts.Query)
	})

	t.Run("numeric nav settings", func(t *testing.T) {
		opts := ResolveOptions(src, "admin", Overrides{PageSizeNavMaxItems: 4})
		assert.Equal(t, 50, opts.PageSizeNavBlockSize)
		assert.Equal(t, 4, opts.PageSizeNavMaxItems)
		assert.True(t, opts.ShowTotalRecords)
	})

	t.Run("no profile matches the defaults", func(t *testing.T) {
		assert.Equal(t, pagination.DefaultOptions(), ResolveOptions(Empty, "", Overrides{}))
	})
}
