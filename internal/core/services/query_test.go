package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

func testCorpus() *domain.Corpus {
	return domain.NewCorpus([]domain.Article{
		{Title: "Hello World", URL: "/a", Content: "this is a test about cats and dogs"},
		{Title: "Go Concurrency", URL: "/b", Content: "Goroutines and channels make concurrent programs simple."},
		{Title: "Cat Care", URL: "/c", Content: "Feeding schedules and grooming tips."},
		{Title: "Untitled", URL: "/d", Content: ""},
	})
}

func TestQuery_BlankQuery(t *testing.T) {
	for _, q := range []string{"", " ", "\t\n", "   "} {
		resp := Query(testCorpus(), q)

		assert.Equal(t, domain.StatusEmptyQuery, resp.Status, "query %q", q)
		assert.NotNil(t, resp.Results)
		assert.Empty(t, resp.Results)
		assert.Equal(t, q, resp.Query)
	}
}

func TestQuery_EndToEnd(t *testing.T) {
	corpus := domain.NewCorpus([]domain.Article{
		{Title: "Hello World", URL: "/a", Content: "this is a test about cats and dogs"},
	})

	resp := Query(corpus, "cat")

	require.Equal(t, domain.StatusMatched, resp.Status)
	require.Len(t, resp.Results, 1)
	r := resp.Results[0]
	assert.Equal(t, "/a", r.URL)
	assert.Equal(t, "Hello World", r.Title)
	assert.Equal(t, "this is a test about cats and dogs", r.Snippet)
	assert.Equal(t, []domain.Span{{Start: 21, End: 24}}, r.SnippetHighlights)
	assert.Empty(t, r.TitleHighlights)
}

func TestQuery_EmptyCorpus(t *testing.T) {
	resp := Query(domain.NewCorpus(nil), "anything")

	assert.Equal(t, domain.StatusNoResults, resp.Status)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestQuery_NilCorpus(t *testing.T) {
	resp := Query(nil, "anything")

	assert.Equal(t, domain.StatusNoResults, resp.Status)
}

func TestQuery_CaseInsensitive(t *testing.T) {
	resp := Query(testCorpus(), "CAT")

	require.Len(t, resp.Results, 2)
	assert.Equal(t, "/a", resp.Results[0].URL)
	assert.Equal(t, "/c", resp.Results[1].URL)

	// Highlights cover the original casing.
	title := resp.Results[1].Title
	spans := resp.Results[1].TitleHighlights
	require.Len(t, spans, 1)
	assert.Equal(t, "Cat", title[spans[0].Start:spans[0].End])
}

func TestQuery_CorpusOrder(t *testing.T) {
	resp := Query(testCorpus(), "and")

	var urls []string
	for _, r := range resp.Results {
		urls = append(urls, r.URL)
	}
	assert.Equal(t, []string{"/a", "/b", "/c"}, urls)
}

// Every returned record matches and no matching record is dropped.
func TestQuery_SoundAndComplete(t *testing.T) {
	corpus := testCorpus()
	queries := []string{"a", "go", "cat", "zzz", "Care", "programs simple.", "world", "e"}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			var want []string
			for _, a := range corpus.All() {
				lq := strings.ToLower(q)
				if strings.Contains(strings.ToLower(a.Title), lq) || strings.Contains(strings.ToLower(a.Content), lq) {
					want = append(want, a.URL)
				}
			}

			resp := Query(corpus, q)
			var got []string
			for _, r := range resp.Results {
				got = append(got, r.URL)
			}

			assert.Equal(t, want, got)
			if len(want) == 0 {
				assert.Equal(t, domain.StatusNoResults, resp.Status)
			} else {
				assert.Equal(t, domain.StatusMatched, resp.Status)
			}
		})
	}
}

func TestQuery_TitleOnlyMatchUsesLeadingContent(t *testing.T) {
	long := strings.Repeat("x", 200)
	corpus := domain.NewCorpus([]domain.Article{
		{Title: "Needle", URL: "/long", Content: long},
		{Title: "Needle", URL: "/short", Content: "brief"},
		{Title: "Needle", URL: "/exact", Content: strings.Repeat("y", 120)},
		{Title: "Needle", URL: "/empty", Content: ""},
	})

	resp := Query(corpus, "needle")

	require.Len(t, resp.Results, 4)
	assert.Equal(t, strings.Repeat("x", 120)+Ellipsis, resp.Results[0].Snippet)
	assert.Equal(t, "brief", resp.Results[1].Snippet)
	assert.Equal(t, strings.Repeat("y", 120), resp.Results[2].Snippet)
	assert.Equal(t, "", resp.Results[3].Snippet)
	assert.Equal(t, []domain.Span{{Start: 0, End: 6}}, resp.Results[0].TitleHighlights)
}

func TestQuery_SnippetWindow(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "match near start",
			content: "0123456789" + "KEYWORD" + strings.Repeat("abcdefghij", 20),
			want:    ("0123456789" + "KEYWORD" + strings.Repeat("abcdefghij", 20))[:97] + Ellipsis,
		},
		{
			name:    "match in the middle",
			content: strings.Repeat("p", 100) + "KEYWORD" + strings.Repeat("s", 100),
			want:    Ellipsis + strings.Repeat("p", 40) + "KEYWORD" + strings.Repeat("s", 80) + Ellipsis,
		},
		{
			name:    "window reaches the end",
			content: strings.Repeat("p", 50) + "KEYWORD" + strings.Repeat("s", 10),
			want:    Ellipsis + strings.Repeat("p", 40) + "KEYWORD" + strings.Repeat("s", 10),
		},
		{
			name:    "window covers everything",
			content: "short KEYWORD text",
			want:    "short KEYWORD text",
		},
		{
			name:    "exactly at lead boundary",
			content: strings.Repeat("p", 40) + "KEYWORD" + strings.Repeat("s", 80),
			want:    strings.Repeat("p", 40) + "KEYWORD" + strings.Repeat("s", 80),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			corpus := domain.NewCorpus([]domain.Article{{Title: "t", URL: "/x", Content: tt.content}})

			resp := Query(corpus, "KEYWORD")

			require.Len(t, resp.Results, 1)
			assert.Equal(t, tt.want, resp.Results[0].Snippet)
		})
	}
}

func TestQuery_SnippetUsesFirstOccurrence(t *testing.T) {
	content := "cat" + strings.Repeat(" ", 200) + "cat"
	corpus := domain.NewCorpus([]domain.Article{{Title: "t", URL: "/x", Content: content}})

	resp := Query(corpus, "cat")

	require.Len(t, resp.Results, 1)
	assert.True(t, strings.HasPrefix(resp.Results[0].Snippet, "cat"))
	assert.True(t, strings.HasSuffix(resp.Results[0].Snippet, Ellipsis))
}

func TestQuery_SnippetCountsRunes(t *testing.T) {
	content := strings.Repeat("あ", 50) + "猫" + strings.Repeat("い", 100)
	corpus := domain.NewCorpus([]domain.Article{{Title: "日本語", URL: "/jp", Content: content}})

	resp := Query(corpus, "猫")

	require.Len(t, resp.Results, 1)
	snippet := resp.Results[0].Snippet
	assert.True(t, utf8.ValidString(snippet))
	assert.Equal(t, Ellipsis+strings.Repeat("あ", 40)+"猫"+strings.Repeat("い", 80)+Ellipsis, snippet)

	spans := resp.Results[0].SnippetHighlights
	require.Len(t, spans, 1)
	assert.Equal(t, "猫", snippet[spans[0].Start:spans[0].End])
}

func TestQuery_QueryNotTrimmedForMatching(t *testing.T) {
	corpus := domain.NewCorpus([]domain.Article{
		{Title: "a", URL: "/start", Content: "cats rule"},
		{Title: "b", URL: "/middle", Content: "the cats rule"},
	})

	resp := Query(corpus, " cat")

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "/middle", resp.Results[0].URL)
}

func TestQuery_MetacharactersAreLiteral(t *testing.T) {
	corpus := domain.NewCorpus([]domain.Article{
		{Title: "C++ tips", URL: "/cpp", Content: "I like c++ a lot"},
		{Title: "Cxx", URL: "/cxx", Content: "I like cxx"},
		{Title: "Regex", URL: "/re", Content: "match (a|b) with [abc]*"},
	})

	tests := []struct {
		query string
		want  []string
	}{
		{"c++", []string{"/cpp"}},
		{".*", nil},
		{"(a|b)", []string{"/re"}},
		{"[abc]*", []string{"/re"}},
		{"^I", nil},
		{"$", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp := Query(corpus, tt.query)

			var got []string
			for _, r := range resp.Results {
				got = append(got, r.URL)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuery_HighlightsEveryOccurrence(t *testing.T) {
	corpus := domain.NewCorpus([]domain.Article{{Title: "Go go GO", URL: "/go", Content: "go"}})

	resp := Query(corpus, "go")

	require.Len(t, resp.Results, 1)
	assert.Equal(t, []domain.Span{{Start: 0, End: 2}, {Start: 3, End: 5}, {Start: 6, End: 8}}, resp.Results[0].TitleHighlights)
	assert.Equal(t, []domain.Span{{Start: 0, End: 2}}, resp.Results[0].SnippetHighlights)
}

func TestQuery_FoldingMismatchMatchesWithoutSpan(t *testing.T) {
	corpus := domain.NewCorpus([]domain.Article{{Title: "İstanbul", URL: "/ist"}})

	resp := Query(corpus, "i")

	assert.Equal(t, domain.StatusMatched, resp.Status)
	require.Len(t, resp.Results, 1)
	assert.Empty(t, resp.Results[0].TitleHighlights)
}
