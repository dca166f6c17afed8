// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and adapters implement them.
//
//   - IndexSource: Produces the articles of one index, from any backend
//   - Connector: Fetches a raw index document for a URI scheme
//   - Normaliser: Decodes a raw index document into articles
//   - NormaliserRegistry: Selects the normaliser for a raw document
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
