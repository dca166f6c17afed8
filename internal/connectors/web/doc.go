// Package web fetches index documents over HTTP and HTTPS.
package web
