// Package markup turns HTML fragments from an index document into the
// plain text that gets searched. Only text nodes are kept, the same as a
// browser's textContent: tags and comments go, entities are decoded and
// whitespace is left as found.
package markup
