package connectors

import (
	"mime"
	"path"
	"strings"
)

// MIMEFromPath guesses a MIME type from a file extension. Unknown
// extensions yield "", leaving the normaliser registry to sniff.
func MIMEFromPath(p string) string {
	ext := strings.ToLower(path.Ext(p))
	switch ext {
	case "":
		return ""
	case ".xml":
		return "application/xml"
	case ".json":
		return "application/json"
	case ".rss":
		return "application/rss+xml"
	case ".atom":
		return "application/atom+xml"
	}
	mediaType, _, err := mime.ParseMediaType(mime.TypeByExtension(ext))
	if err != nil {
		return ""
	}
	return mediaType
}
