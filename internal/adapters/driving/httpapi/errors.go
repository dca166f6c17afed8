package httpapi

import "errors"

// ErrMissingSearchService is returned when no session can be created.
var ErrMissingSearchService = errors.New("httpapi: search service is required")
