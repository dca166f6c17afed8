package github

import (
	"fmt"
	"strings"
)

// Scheme is the URI scheme served by this package.
const Scheme = "github"

// Location identifies one file in a repository.
type Location struct {
	Owner string
	Repo  string
	Path  string
	Ref   string // empty means the default branch
}

// String formats the location back into a source URI.
func (l Location) String() string {
	s := fmt.Sprintf("%s://%s/%s/%s", Scheme, l.Owner, l.Repo, l.Path)
	if l.Ref != "" {
		s += "@" + l.Ref
	}
	return s
}

// ParseURI parses github://owner/repo/path[@ref].
func ParseURI(uri string) (Location, error) {
	rest, ok := strings.CutPrefix(uri, Scheme+"://")
	if !ok {
		return Location{}, fmt.Errorf("%w: %q lacks the %s:// prefix", ErrInvalidURI, uri, Scheme)
	}

	var loc Location
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		rest, loc.Ref = rest[:at], rest[at+1:]
		if loc.Ref == "" {
			return Location{}, fmt.Errorf("%w: %q has an empty ref", ErrInvalidURI, uri)
		}
	}

	parts := strings.SplitN(strings.Trim(rest, "/"), "/", 3)
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Location{}, fmt.Errorf("%w: %q, want %s://owner/repo/path", ErrInvalidURI, uri, Scheme)
	}
	loc.Owner, loc.Repo, loc.Path = parts[0], parts[1], parts[2]
	return loc, nil
}
