// Package tui provides the interactive search modal for blogsearch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/blogsearch/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Search is the session the modal queries.
	Search driving.SearchService

	// Actions acts on the selected result. Optional.
	Actions driving.ResultActionService
}

// NewPorts creates a new Ports aggregate.
func NewPorts(search driving.SearchService, actions driving.ResultActionService) *Ports {
	return &Ports{Search: search, Actions: actions}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
