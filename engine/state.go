package engine

// State is the game lifecycle state
// Uninitialized -> Initialized -> Running -> Terminated
type State uint8

const (
	StateUninitialized State = iota
	// StateInitialized accepts subsystem and entity registration
	StateInitialized
	// StateRunning is the main loop; subsystem order is locked
	StateRunning
	// StateTerminated allows no further updates, only teardown
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
