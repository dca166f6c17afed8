// Package render turns search responses into displayable output.
//
// HTML output follows the result markup contract: every text segment is
// escaped on its own and highlight spans are wrapped in <mark> elements,
// so a query can never inject markup. Terminal output styles the same
// spans with lipgloss.
package render
