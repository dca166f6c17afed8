// Package file provides the TOML configuration file adapter.
//
// Keys are exposed in dot notation ("http.timeout"), matching the table
// layout written to disk:
//
//	[http]
//	timeout = "30s"
package file
