// Package driving defines the interfaces that front ends (CLI, TUI, HTTP API,
// MCP) use to reach the core: one search session per index, actions on a
// chosen result, and settings management.
//
// Implementations live in internal/core/services.
package driving
