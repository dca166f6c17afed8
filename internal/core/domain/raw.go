package domain

// RawIndex is the serialized index document as fetched by a connector,
// before a normaliser turns it into articles.
type RawIndex struct {
	// URI is the location the bytes came from.
	URI string

	// MIMEType is the reported or inferred content type. May be empty.
	MIMEType string

	// Content is the raw document.
	Content []byte

	// Metadata contains connector-specific key-value pairs.
	Metadata map[string]any
}
