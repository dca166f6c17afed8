// Package normalisers decodes raw index documents into articles.
//
// Each subpackage handles one index layout. The Registry picks one by
// sniffing the document and falls back to the declared MIME type.
package normalisers
