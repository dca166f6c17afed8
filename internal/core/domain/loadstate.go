package domain

// LoadState is the lifecycle of a session's index.
//
//	NotLoaded -> Loading -> Loaded     (success)
//	NotLoaded -> Loading -> NotLoaded  (failure, retried on next demand)
type LoadState int

const (
	// NotLoaded means no corpus is available yet, or the last attempt failed.
	NotLoaded LoadState = iota

	// Loading means a fetch is in flight.
	Loading

	// Loaded means the corpus is settled for the rest of the session.
	Loaded
)

// String returns the wire name of the state.
func (s LoadState) String() string {
	switch s {
	case NotLoaded:
		return "not_loaded"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by its wire name.
func (s LoadState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IndexStats summarises a session for status displays.
type IndexStats struct {
	// SessionID identifies the session in logs.
	SessionID string `json:"session_id"`

	// State is the current load state.
	State LoadState `json:"state"`

	// Articles is the corpus size.
	Articles int `json:"articles"`

	// SourceURI is where the index is fetched from.
	SourceURI string `json:"source"`
}
