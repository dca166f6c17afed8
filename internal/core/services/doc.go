// Package services implements the driving port interfaces.
// Services contain the core logic of blogsearch: loading an index once per
// session and answering queries against it. They orchestrate calls to
// driven ports (connectors, normalisers, configuration).
package services
