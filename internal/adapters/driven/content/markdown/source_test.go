package markdown

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blogsearch/internal/core/ports/driven"
)

func writePost(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNewSource(t *testing.T) {
	s := NewSource("markdown:///srv/blog/_posts")

	assert.Equal(t, "/srv/blog/_posts", s.root)
	assert.Equal(t, "markdown:///srv/blog/_posts", s.URI())

	var _ driven.IndexSource = s
}

func TestRoot(t *testing.T) {
	assert.Equal(t, "/posts", Root("markdown:///posts"))
	assert.Equal(t, "/posts", Root("file:///posts"))
	assert.Equal(t, "source/_posts", Root("source/_posts"))
}

func TestIsPostDirectory(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "a.md", "x")

	assert.True(t, IsPostDirectory(dir))
	assert.True(t, IsPostDirectory("file://"+dir))
	assert.False(t, IsPostDirectory(filepath.Join(dir, "a.md")))
	assert.False(t, IsPostDirectory(filepath.Join(dir, "missing")))
}

func TestSource_Articles(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "2024-01-01-hello.md", `---
title: Hello World
permalink: /2024/01/01/hello/
tags: [misc]
---
This is a test about **cats** and dogs.
`)
	writePost(t, dir, "2024-02-01-draft.md", `---
title: Unfinished
draft: true
---
secret
`)
	writePost(t, dir, "notes/second-post.markdown", "# Heading\n\nNo front matter here.\n")
	writePost(t, dir, "readme.txt", "not a post")
	writePost(t, dir, ".hidden/skip.md", "hidden")

	articles, err := NewSource(dir).Articles(context.Background())

	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "Hello World", articles[0].Title)
	assert.Equal(t, "/2024/01/01/hello/", articles[0].URL)
	assert.Equal(t, "This is a test about cats and dogs.", articles[0].Content)

	assert.Equal(t, "second-post", articles[1].Title)
	assert.Equal(t, "/second-post/", articles[1].URL)
	assert.Contains(t, articles[1].Content, "Heading")
	assert.Contains(t, articles[1].Content, "No front matter here.")
	assert.NotContains(t, articles[1].Content, "#")
}

func TestSource_Articles_SlugFromTitle(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "post.md", "---\ntitle: Go Concurrency Patterns\n---\nbody\n")

	articles, err := NewSource(dir).Articles(context.Background())

	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "/go-concurrency-patterns/", articles[0].URL)
}

func TestSource_Articles_BadFrontMatterKeepsPost(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "broken.md", "---\ntitle: [unclosed\n---\nbody text\n")

	articles, err := NewSource(dir).Articles(context.Background())

	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "broken", articles[0].Title)
	assert.Equal(t, "body text", articles[0].Content)
}

func TestSource_Articles_MissingDirectory(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "missing")).Articles(context.Background())

	assert.Error(t, err)
}

func TestSource_Articles_ContextCanceled(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "a.md", "a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource(dir).Articles(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantHeader string
		wantBody   string
		wantOK     bool
	}{
		{"header and body", "---\ntitle: x\n---\nbody\n", "title: x\n", "body\n", true},
		{"no header", "body\n", "", "body\n", false},
		{"unclosed header", "---\ntitle: x\nbody\n", "", "---\ntitle: x\nbody\n", false},
		{"crlf", "---\r\ntitle: x\r\n---\r\nbody", "title: x\r\n", "body", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, body, ok := splitFrontMatter(tt.content)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantHeader, header)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

