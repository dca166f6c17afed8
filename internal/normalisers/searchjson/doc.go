// Package searchjson decodes the search.json index: a JSON array of
// {title, url, content} objects.
package searchjson
