// Package connectors fetches raw index documents.
//
// Each subpackage serves one family of URI schemes. The Registry routes a
// source URI to the connector that owns its scheme.
package connectors
