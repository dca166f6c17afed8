// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/blogsearch/internal/core/domain"
)

// IndexLoaded reports the load state once the index load settles.
type IndexLoaded struct {
	State    domain.LoadState
	Articles int
}

// SearchCompleted carries a query's response back to the model.
type SearchCompleted struct {
	Response domain.SearchResponse
}

// ResultChosen is sent when the user opens a result.
type ResultChosen struct {
	URL string
}

// Closed is sent when the modal is dismissed.
type Closed struct{}

// ActionCompleted reports the outcome of an action on a result.
type ActionCompleted struct {
	Notice string
	Err    error
}
