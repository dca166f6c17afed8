package connectors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// mockConnector implements driven.Connector for testing.
type mockConnector struct {
	name    string
	schemes []string
}

func (m *mockConnector) Schemes() []string {
	return m.schemes
}

func (m *mockConnector) Fetch(_ context.Context, uri string) (*domain.RawIndex, error) {
	return &domain.RawIndex{URI: uri, Metadata: map[string]any{"connector": m.name}}, nil
}

func TestScheme(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"https://blog.example.com/search.xml", "https"},
		{"HTTP://blog.example.com/search.xml", "http"},
		{"file:///srv/blog/public/search.xml", "file"},
		{"./public/search.xml", "file"},
		{"public/search.xml", "file"},
		{"/srv/blog/public/search.xml", "file"},
		{"github://owner/repo/search.xml", "github"},
		{"sqlite:///var/blog.db?table=posts", "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.want, Scheme(tt.uri))
		})
	}
}

func TestRegistry_Fetch(t *testing.T) {
	web := &mockConnector{name: "web", schemes: []string{"http", "https"}}
	fs := &mockConnector{name: "fs", schemes: []string{"file"}}
	r := NewRegistry(web, fs)
	ctx := context.Background()

	raw, err := r.Fetch(ctx, "https://blog.example.com/search.xml")
	require.NoError(t, err)
	assert.Equal(t, "web", raw.Metadata["connector"])

	raw, err = r.Fetch(ctx, "public/search.xml")
	require.NoError(t, err)
	assert.Equal(t, "fs", raw.Metadata["connector"])
}

func TestRegistry_UnknownScheme(t *testing.T) {
	r := NewRegistry(&mockConnector{schemes: []string{"https"}})

	_, err := r.Fetch(context.Background(), "ftp://blog.example.com/search.xml")

	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestRegistry_Schemes(t *testing.T) {
	r := NewRegistry(&mockConnector{schemes: []string{"http", "https"}})

	assert.ElementsMatch(t, []string{"http", "https"}, r.Schemes())
}

func TestMIMEFromPath(t *testing.T) {
	assert.Equal(t, "application/xml", MIMEFromPath("public/search.xml"))
	assert.Equal(t, "application/json", MIMEFromPath("/srv/SEARCH.JSON"))
	assert.Equal(t, "application/atom+xml", MIMEFromPath("feed.atom"))
	assert.Equal(t, "", MIMEFromPath("search"))
}
