package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// ErrEmptyURL is returned when a result has no URL to act on.
var ErrEmptyURL = errors.New("result has no url")

// Ensure ResultActionService implements the interface.
var _ driving.ResultActionService = (*ResultActionService)(nil)

// ResultActionService provides actions on search results.
// Article URLs in an index are usually site-relative, so they are resolved
// against the index source when that source is served over HTTP.
type ResultActionService struct {
	base   *url.URL
	open   func(string) error
	copier func(string) error
}

// NewResultActionService creates a result action service for an index
// fetched from indexSource.
func NewResultActionService(indexSource string) *ResultActionService {
	s := &ResultActionService{
		open:   openURL,
		copier: clipboard.WriteAll,
	}
	if u, err := url.Parse(indexSource); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		s.base = u
	}
	return s
}

// ResolveURL turns a result URL into an absolute URL when a web base is known.
// Without one the URL is returned unchanged.
func (s *ResultActionService) ResolveURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || s.base == nil {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return s.base.ResolveReference(ref).String()
}

// CopyURL copies the result's resolved URL to the system clipboard.
func (s *ResultActionService) CopyURL(_ context.Context, result domain.MatchResult) error {
	target := s.ResolveURL(result.URL)
	if target == "" {
		return ErrEmptyURL
	}
	if err := s.copier(target); err != nil {
		return fmt.Errorf("copy url: %w", err)
	}
	return nil
}

// OpenURL opens the result's resolved URL in the default browser.
func (s *ResultActionService) OpenURL(_ context.Context, result domain.MatchResult) error {
	target := s.ResolveURL(result.URL)
	if target == "" {
		return ErrEmptyURL
	}
	if err := s.open(target); err != nil {
		return fmt.Errorf("open url: %w", err)
	}
	return nil
}

// openURL opens a URL using the OS-specific launcher.
func openURL(target string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("open", target)
	case osLinux:
		cmd = exec.Command("xdg-open", target)
	case osWindows:
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
