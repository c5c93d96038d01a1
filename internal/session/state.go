package session

// State is the validity of the session as seen by the client.
type State int

const (
	// Anonymous means no token is stored.
	Anonymous State = iota
	// Authenticated means a token is stored and has not been rejected yet.
	Authenticated
	// Expiring means a 401 was observed and teardown is running.
	Expiring
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	case Expiring:
		return "expiring"
	default:
		return "unknown"
	}
}
